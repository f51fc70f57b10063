package transport

import (
	"net/http"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	utilsContext "github.com/muhammadheryan/marketplace/utils/context"
	"github.com/muhammadheryan/marketplace/utils/errors"
	validatorx "github.com/muhammadheryan/marketplace/utils/validator"
)

// Register handler
// @Summary Register account
// @Description Register a new seller or buyer account. The account stays inactive until confirmed.
// @Tags Account
// @Accept json
// @Produce json
// @Param request body model.RegisterRequest true "Register Request"
// @Success 200 {object} model.RegisterResponse
// @Router /api/v1/account/register [post]
func (s *RestHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req model.RegisterRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorf(constant.ErrValidation, "%s", err.Error()))
		return
	}

	res, err := s.AccountApp.Register(ctx, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Confirm handler
// @Summary Confirm account
// @Description Activate an account with the mailed confirmation token
// @Tags Account
// @Accept json
// @Produce json
// @Param request body model.ConfirmRequest true "Confirm Request"
// @Router /api/v1/account/confirm [post]
func (s *RestHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	var req model.ConfirmRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	if err := s.AccountApp.ConfirmAccount(r.Context(), &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// Login handler
// @Summary Login
// @Description Login with email and password and receive JWT token
// @Tags Account
// @Accept json
// @Produce json
// @Param request body model.LoginRequest true "Login Request"
// @Success 200 {object} model.LoginResponse
// @Router /api/v1/account/login [post]
func (s *RestHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	res, err := s.AccountApp.Login(r.Context(), &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// Logout handler
// @Summary Logout
// @Tags Account
// @Security BearerAuth
// @Router /api/v1/account/logout [post]
func (s *RestHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token, ok := bearerToken(r)
	if !ok {
		writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
		return
	}

	if err := s.AccountApp.Logout(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// GetAccount handler
// @Summary Account details
// @Tags Account
// @Security BearerAuth
// @Produce json
// @Success 200 {object} model.AccountResponse
// @Router /api/v1/account [get]
func (s *RestHandler) GetAccount(w http.ResponseWriter, r *http.Request) {
	accountID, _ := utilsContext.GetAccountID(r.Context())

	res, err := s.AccountApp.GetAccount(r.Context(), accountID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateAccount handler
// @Summary Update account details
// @Description Changing the password requires old_password
// @Tags Account
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.UpdateAccountRequest true "Update Request"
// @Router /api/v1/account [patch]
func (s *RestHandler) UpdateAccount(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateAccountRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorf(constant.ErrValidation, "%s", err.Error()))
		return
	}

	accountID, _ := utilsContext.GetAccountID(r.Context())
	if err := s.AccountApp.UpdateAccount(r.Context(), accountID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
