package transport

import (
	"net/http"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	utilsContext "github.com/muhammadheryan/marketplace/utils/context"
	"github.com/muhammadheryan/marketplace/utils/errors"
	validatorx "github.com/muhammadheryan/marketplace/utils/validator"
)

// ListContacts handler
// @Summary List contacts
// @Tags Contacts
// @Security BearerAuth
// @Produce json
// @Success 200 {array} model.ContactEntity
// @Router /api/v1/contacts [get]
func (s *RestHandler) ListContacts(w http.ResponseWriter, r *http.Request) {
	accountID, _ := utilsContext.GetAccountID(r.Context())

	res, err := s.ContactApp.List(r.Context(), accountID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// CreateContact handler
// @Summary Add a phone or address
// @Tags Contacts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.CreateContactRequest true "Contact"
// @Success 200 {object} model.ContactEntity
// @Router /api/v1/contacts [post]
func (s *RestHandler) CreateContact(w http.ResponseWriter, r *http.Request) {
	var req model.CreateContactRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorf(constant.ErrValidation, "%s", err.Error()))
		return
	}

	accountID, _ := utilsContext.GetAccountID(r.Context())
	res, err := s.ContactApp.Create(r.Context(), accountID, &req)
	if err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, res)
}

// UpdateContact handler
// @Summary Change a contact value
// @Tags Contacts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.UpdateContactRequest true "Contact"
// @Router /api/v1/contacts [patch]
func (s *RestHandler) UpdateContact(w http.ResponseWriter, r *http.Request) {
	var req model.UpdateContactRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomErrorf(constant.ErrValidation, "%s", err.Error()))
		return
	}

	accountID, _ := utilsContext.GetAccountID(r.Context())
	if err := s.ContactApp.Update(r.Context(), accountID, &req); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}

// DeleteContact handler
// @Summary Delete a contact
// @Tags Contacts
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body model.DeleteContactRequest true "Contact"
// @Router /api/v1/contacts [delete]
func (s *RestHandler) DeleteContact(w http.ResponseWriter, r *http.Request) {
	var req model.DeleteContactRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if err := validatorx.ValidateStruct(&req); err != nil {
		writeError(w, errors.SetCustomError(constant.ErrInvalidRequest))
		return
	}

	accountID, _ := utilsContext.GetAccountID(r.Context())
	if err := s.ContactApp.Delete(r.Context(), accountID, req.ID); err != nil {
		writeError(w, err)
		return
	}

	writeSuccess(w, nil)
}
