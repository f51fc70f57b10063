package model

import "github.com/muhammadheryan/marketplace/constant"

type ContactEntity struct {
	ID        uint64               `db:"id" json:"id"`
	AccountID uint64               `db:"account_id" json:"-"`
	Type      constant.ContactType `db:"type" json:"type"`
	Value     string               `db:"value" json:"value"`
}

type CreateContactRequest struct {
	Type  string `json:"type" validate:"required,oneof=phone address"`
	Value string `json:"value" validate:"required,max=50"`
}

type UpdateContactRequest struct {
	ID    uint64 `json:"id" validate:"required"`
	Value string `json:"value" validate:"required,max=50"`
}

type DeleteContactRequest struct {
	ID uint64 `json:"id" validate:"required"`
}
