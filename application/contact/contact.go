package contact

import (
	"context"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	contactrepo "github.com/muhammadheryan/marketplace/repository/contact"
	"github.com/muhammadheryan/marketplace/repository/dberr"
	"github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
)

type ContactApp interface {
	List(ctx context.Context, accountID uint64) ([]model.ContactEntity, error)
	Create(ctx context.Context, accountID uint64, req *model.CreateContactRequest) (*model.ContactEntity, error)
	Update(ctx context.Context, accountID uint64, req *model.UpdateContactRequest) error
	Delete(ctx context.Context, accountID, contactID uint64) error
}

type contactAppImpl struct {
	contactRepo contactrepo.ContactRepository
}

func NewContactApp(contactRepo contactrepo.ContactRepository) ContactApp {
	return &contactAppImpl{contactRepo: contactRepo}
}

func (s *contactAppImpl) List(ctx context.Context, accountID uint64) ([]model.ContactEntity, error) {
	contacts, err := s.contactRepo.List(ctx, accountID)
	if err != nil {
		logger.Error("[ListContacts] err contactRepo.List", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return contacts, nil
}

// Create adds a contact. An account holds at most one contact of each type.
func (s *contactAppImpl) Create(ctx context.Context, accountID uint64, req *model.CreateContactRequest) (*model.ContactEntity, error) {
	contactType := constant.ContactType(req.Type)

	count, err := s.contactRepo.CountByType(ctx, accountID, contactType)
	if err != nil {
		logger.Error("[CreateContact] err contactRepo.CountByType", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if count > 0 {
		return nil, errors.SetCustomErrorf(constant.ErrValidation, "User can only have 1 %s.", contactType)
	}

	contact, err := s.contactRepo.Create(ctx, &model.ContactEntity{
		AccountID: accountID,
		Type:      contactType,
		Value:     req.Value,
	})
	if err != nil {
		if dberr.IsConstraintViolation(err) {
			return nil, errors.SetCustomErrorf(constant.ErrValidation, "User can only have 1 %s.", contactType)
		}
		logger.Error("[CreateContact] err contactRepo.Create", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	return contact, nil
}

func (s *contactAppImpl) Update(ctx context.Context, accountID uint64, req *model.UpdateContactRequest) error {
	affected, err := s.contactRepo.UpdateValue(ctx, req.ID, accountID, req.Value)
	if err != nil {
		logger.Error("[UpdateContact] err contactRepo.UpdateValue", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}

func (s *contactAppImpl) Delete(ctx context.Context, accountID, contactID uint64) error {
	affected, err := s.contactRepo.Delete(ctx, contactID, accountID)
	if err != nil {
		logger.Error("[DeleteContact] err contactRepo.Delete", zap.String("error", err.Error()))
		return errors.SetCustomError(constant.ErrInternal)
	}
	if affected == 0 {
		return errors.SetCustomError(constant.ErrNotFound)
	}
	return nil
}
