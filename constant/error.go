package constant

import "net/http"

type ErrorType int

const (
	Successful ErrorType = iota
	ErrInternal
	ErrNotFound
	ErrInvalidRequest
	ErrUnauthorize
	ErrForbidden
	ErrCredentialExists
	ErrInvalidPassword
	ErrAccountInactive
	ErrValidation
	ErrSchema
	ErrFetch
	ErrConstraintViolation
)

var ErrorTypeMessage = map[ErrorType]string{
	Successful:             "success",
	ErrInternal:            "error internal",
	ErrNotFound:            "There are no matches in the database. Data error.",
	ErrInvalidRequest:      "Wrong request format.",
	ErrUnauthorize:         "Error or missing authorization data.",
	ErrForbidden:           "access denied for this account type",
	ErrCredentialExists:    "email already exists",
	ErrInvalidPassword:     "password invalid",
	ErrAccountInactive:     "account is not active",
	ErrValidation:          "validation error",
	ErrSchema:              "price list schema error",
	ErrFetch:               "unable to fetch price list",
	ErrConstraintViolation: "integrity constraint violation",
}

var ErrorTypeHTTPCode = map[ErrorType]int{
	Successful:             http.StatusOK,
	ErrInternal:            http.StatusInternalServerError,
	ErrNotFound:            http.StatusNotFound,
	ErrInvalidRequest:      http.StatusBadRequest,
	ErrUnauthorize:         http.StatusUnauthorized,
	ErrForbidden:           http.StatusForbidden,
	ErrCredentialExists:    http.StatusBadRequest,
	ErrInvalidPassword:     http.StatusBadRequest,
	ErrAccountInactive:     http.StatusForbidden,
	ErrValidation:          http.StatusBadRequest,
	ErrSchema:              http.StatusUnprocessableEntity,
	ErrFetch:               http.StatusBadGateway,
	ErrConstraintViolation: http.StatusConflict,
}

var ErrorTypeCode = map[ErrorType]string{
	Successful:             "0000",
	ErrInternal:            "0001",
	ErrNotFound:            "0002",
	ErrInvalidRequest:      "0003",
	ErrUnauthorize:         "0004",
	ErrForbidden:           "0005",
	ErrCredentialExists:    "0006",
	ErrInvalidPassword:     "0007",
	ErrAccountInactive:     "0008",
	ErrValidation:          "0009",
	ErrSchema:              "0010",
	ErrFetch:               "0011",
	ErrConstraintViolation: "0012",
}
