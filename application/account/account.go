package account

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/muhammadheryan/marketplace/cmd/config"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	accountrepo "github.com/muhammadheryan/marketplace/repository/account"
	contactrepo "github.com/muhammadheryan/marketplace/repository/contact"
	"github.com/muhammadheryan/marketplace/repository/dberr"
	redisrepo "github.com/muhammadheryan/marketplace/repository/redis"
	"github.com/muhammadheryan/marketplace/thirdparty/notification"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"github.com/muhammadheryan/marketplace/utils/metrics"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const registeredMessage = "Confirmation token sent to email."

type AccountApp interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error)
	IssueConfirmationToken(ctx context.Context, accountID uint64) (string, error)
	ConfirmAccount(ctx context.Context, req *model.ConfirmRequest) error
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	Logout(ctx context.Context, tokenString string) error
	Authenticate(ctx context.Context, tokenString string) (*model.Identity, error)
	GetAccount(ctx context.Context, accountID uint64) (*model.AccountResponse, error)
	UpdateAccount(ctx context.Context, accountID uint64, req *model.UpdateAccountRequest) error
}

type AccountAppImpl struct {
	config      *config.Config
	accountRepo accountrepo.AccountRepository
	contactRepo contactrepo.ContactRepository
	redisRepo   redisrepo.Repository
	sink        notification.Sink
}

func NewAccountApp(config *config.Config, accountRepo accountrepo.AccountRepository, contactRepo contactrepo.ContactRepository, redisRepo redisrepo.Repository, sink notification.Sink) AccountApp {
	return &AccountAppImpl{
		config:      config,
		accountRepo: accountRepo,
		contactRepo: contactRepo,
		redisRepo:   redisRepo,
		sink:        sink,
	}
}

// Register creates an inactive account and announces it so the notifier can
// mail the confirmation token.
func (s *AccountAppImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.RegisterResponse, error) {
	existing, err := s.accountRepo.Get(ctx, &model.AccountFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Register] err accountRepo.Get email", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if existing != nil {
		return nil, errors.SetCustomError(constant.ErrCredentialExists)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("[Register] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	accountType := constant.AccountTypeBuyer
	if req.Type != "" {
		accountType = constant.AccountType(req.Type)
	}

	entity, err := s.accountRepo.Create(ctx, &model.AccountEntity{
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Surname:      req.Surname,
		Position:     req.Position,
		AccountType:  accountType,
		IsActive:     false,
		CreatedAt:    time.Now().UTC(),
	})
	if err != nil {
		// a concurrent registration with the same email lost the race
		if dberr.IsConstraintViolation(err) {
			return nil, errors.SetCustomError(constant.ErrCredentialExists)
		}
		logger.Error("[Register] err accountRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.sink.AccountRegistered(ctx, entity.ID); err != nil {
		logger.Error("[Register] err sink.AccountRegistered", zap.String("error", err.Error()), zap.Uint64("account_id", entity.ID))
		metrics.Notifications.WithLabelValues(string(constant.EventAccountRegistered), metrics.ResultFailure).Inc()
	} else {
		metrics.Notifications.WithLabelValues(string(constant.EventAccountRegistered), metrics.ResultSuccess).Inc()
	}

	return &model.RegisterResponse{
		ID:      entity.ID,
		Email:   entity.Email,
		Message: registeredMessage,
	}, nil
}

func (s *AccountAppImpl) IssueConfirmationToken(ctx context.Context, accountID uint64) (string, error) {
	token := uuid.NewString()
	if err := s.redisRepo.SetConfirmationToken(ctx, token, accountID, s.config.Auth.ConfirmationTTL); err != nil {
		logger.Error("[IssueConfirmationToken] err SetConfirmationToken", zap.String("error", err.Error()))
		return "", errors.SetCustomError(constant.ErrInternal)
	}
	return token, nil
}

func (s *AccountAppImpl) ConfirmAccount(ctx context.Context, req *model.ConfirmRequest) error {
	accountID, err := s.redisRepo.GetConfirmationToken(ctx, req.Token)
	if err != nil {
		logger.Error("[ConfirmAccount] err GetConfirmationToken", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	account, err := s.accountRepo.Get(ctx, &model.AccountFilter{Email: req.Email})
	if err != nil {
		logger.Error("[ConfirmAccount] err accountRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if accountID == 0 || account == nil || account.ID != accountID {
		return errors.SetCustomErrorf(constant.ErrValidation, "Token or email error.")
	}

	if err := s.accountRepo.Activate(ctx, account.ID); err != nil {
		logger.Error("[ConfirmAccount] err accountRepo.Activate", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}

	if err := s.redisRepo.DeleteConfirmationToken(ctx, req.Token); err != nil {
		logger.Warn("[ConfirmAccount] err DeleteConfirmationToken", zap.String("error", err.Error()))
	}
	return nil
}

func (s *AccountAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	account, err := s.accountRepo.Get(ctx, &model.AccountFilter{Email: req.Email})
	if err != nil {
		logger.Error("[Login] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if account == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password))
	if err != nil {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	if !account.IsActive {
		return nil, errors.SetCustomError(constant.ErrAccountInactive)
	}

	token, jti, err := s.generateJWT(account.ID)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	err = s.redisRepo.SetSession(ctx, jti, account.ID, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Email: account.Email,
		Token: token,
	}, nil
}

func (s *AccountAppImpl) Logout(ctx context.Context, tokenString string) error {
	_, jti, err := s.parseJWT(tokenString)
	if err != nil {
		return errors.SetCustomError(constant.ErrUnauthorize)
	}
	if err := s.redisRepo.DeleteSession(ctx, jti); err != nil {
		logger.Error("[Logout] err DeleteSession", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// Authenticate resolves a bearer token to the caller's identity. The token
// must carry a live Redis session for the same account.
func (s *AccountAppImpl) Authenticate(ctx context.Context, tokenString string) (*model.Identity, error) {
	accountID, jti, err := s.parseJWT(tokenString)
	if err != nil {
		logger.Debug("[Authenticate] invalid token", zap.Error(err))
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	sessionAccountID, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil || sessionAccountID != accountID {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	account, err := s.accountRepo.Get(ctx, &model.AccountFilter{ID: accountID})
	if err != nil {
		logger.Error("[Authenticate] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if account == nil || !account.IsActive {
		return nil, errors.SetCustomError(constant.ErrUnauthorize)
	}

	return &model.Identity{
		AccountID:   account.ID,
		AccountType: account.AccountType,
		IsActive:    account.IsActive,
	}, nil
}

func (s *AccountAppImpl) GetAccount(ctx context.Context, accountID uint64) (*model.AccountResponse, error) {
	account, err := s.accountRepo.Get(ctx, &model.AccountFilter{ID: accountID})
	if err != nil {
		logger.Error("[GetAccount] err accountRepo.Get", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if account == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	contacts, err := s.contactRepo.List(ctx, accountID)
	if err != nil {
		logger.Error("[GetAccount] err contactRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.AccountResponse{
		ID:        account.ID,
		Email:     account.Email,
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Surname:   account.Surname,
		Position:  account.Position,
		Type:      account.AccountType,
		Contacts:  contacts,
	}, nil
}

func (s *AccountAppImpl) UpdateAccount(ctx context.Context, accountID uint64, req *model.UpdateAccountRequest) error {
	account, err := s.accountRepo.Get(ctx, &model.AccountFilter{ID: accountID})
	if err != nil {
		logger.Error("[UpdateAccount] err accountRepo.Get", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if account == nil {
		return errors.SetCustomError(constant.ErrNotFound)
	}

	if req.Password != "" {
		err = bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.OldPassword))
		if err != nil {
			return errors.SetCustomErrorf(constant.ErrInvalidPassword, "Old password is not correct.")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			logger.Error("[UpdateAccount] err bcrypt.GenerateFromPassword", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		account.PasswordHash = string(hashed)
	}

	if req.Email != nil && *req.Email != account.Email {
		taken, err := s.accountRepo.Get(ctx, &model.AccountFilter{Email: *req.Email})
		if err != nil {
			logger.Error("[UpdateAccount] err accountRepo.Get email", zap.String("error", err.Error()))
			return errors.SetCustomError(constant.ErrInternal)
		}
		if taken != nil {
			return errors.SetCustomError(constant.ErrCredentialExists)
		}
		account.Email = *req.Email
	}
	if req.FirstName != nil {
		account.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		account.LastName = *req.LastName
	}
	if req.Surname != nil {
		account.Surname = *req.Surname
	}
	if req.Position != nil {
		account.Position = *req.Position
	}

	if err := s.accountRepo.Update(ctx, account); err != nil {
		if dberr.IsConstraintViolation(err) {
			return errors.SetCustomError(constant.ErrCredentialExists)
		}
		logger.Error("[UpdateAccount] err accountRepo.Update", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	return nil
}

// generateJWT creates a JWT token for the account
func (s *AccountAppImpl) generateJWT(accountID uint64) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   fmt.Sprintf("%d", accountID),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}

// parseJWT returns the account id and session id carried by the token.
func (s *AccountAppImpl) parseJWT(tokenString string) (uint64, string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return 0, "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return 0, "", fmt.Errorf("invalid claims")
	}

	accountID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("invalid account id in token")
	}

	if claims.ID == "" {
		return 0, "", fmt.Errorf("token missing jti")
	}

	return accountID, claims.ID, nil
}
