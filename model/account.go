package model

import (
	"time"

	"github.com/muhammadheryan/marketplace/constant"
)

// AccountEntity represents the account table entity
type AccountEntity struct {
	ID           uint64               `db:"id" json:"id"`
	Email        string               `db:"email" json:"email"`
	PasswordHash string               `db:"password_hash" json:"-"`
	FirstName    string               `db:"first_name" json:"first_name"`
	LastName     string               `db:"last_name" json:"last_name"`
	Surname      string               `db:"surname" json:"surname"`
	Position     string               `db:"position" json:"position"`
	AccountType  constant.AccountType `db:"account_type" json:"type_account"`
	IsActive     bool                 `db:"is_active" json:"-"`
	CreatedAt    time.Time            `db:"created_at" json:"created_at"`
}

// AccountFilter for querying accounts
type AccountFilter struct {
	ID    uint64
	Email string
}

// Identity is what the auth layer knows about the caller of a request.
type Identity struct {
	AccountID   uint64
	AccountType constant.AccountType
	IsActive    bool
}

func (i *Identity) Is(accountType constant.AccountType) bool {
	return i != nil && i.AccountType == accountType
}

// RegisterRequest for account registration
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required,max=100"`
	LastName  string `json:"last_name" validate:"required,max=100"`
	Surname   string `json:"surname" validate:"max=100"`
	Position  string `json:"position" validate:"max=100"`
	Type      string `json:"type_account" validate:"omitempty,oneof=seller buyer"`
}

type RegisterResponse struct {
	ID      uint64 `json:"id"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// ConfirmRequest activates an account with the token mailed after registration
type ConfirmRequest struct {
	Email string `json:"email" validate:"required,email"`
	Token string `json:"token" validate:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

// UpdateAccountRequest changes profile fields; nil fields are left as they are.
// Password changes require OldPassword.
type UpdateAccountRequest struct {
	Email       *string `json:"email" validate:"omitempty,email"`
	FirstName   *string `json:"first_name" validate:"omitempty,max=100"`
	LastName    *string `json:"last_name" validate:"omitempty,max=100"`
	Surname     *string `json:"surname" validate:"omitempty,max=100"`
	Position    *string `json:"position" validate:"omitempty,max=100"`
	Password    string  `json:"password" validate:"omitempty,min=8"`
	OldPassword string  `json:"old_password"`
}

type AccountResponse struct {
	ID        uint64               `json:"id"`
	Email     string               `json:"email"`
	FirstName string               `json:"first_name"`
	LastName  string               `json:"last_name"`
	Surname   string               `json:"surname"`
	Position  string               `json:"position"`
	Type      constant.AccountType `json:"type_account"`
	Contacts  []ContactEntity      `json:"contacts"`
}
