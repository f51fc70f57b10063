package dberr

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/muhammadheryan/marketplace/constant"
	customerrors "github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"go.uber.org/zap"
	"modernc.org/sqlite"
)

const (
	mysqlDuplicateEntry     = 1062
	mysqlRowIsReferenced    = 1451
	mysqlNoReferencedRow    = 1452
	mysqlColumnCannotBeNull = 1048

	// primary result code, extended codes keep it in the low byte
	sqliteConstraint = 19
)

// IsConstraintViolation reports whether err is a uniqueness, foreign key or
// not-null failure raised by the store.
func IsConstraintViolation(err error) bool {
	if err == nil {
		return false
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDuplicateEntry, mysqlRowIsReferenced, mysqlNoReferencedRow, mysqlColumnCannotBeNull:
			return true
		}
		return false
	}

	var liteErr *sqlite.Error
	if errors.As(err, &liteErr) {
		return liteErr.Code()&0xff == sqliteConstraint
	}

	return false
}

// Classify turns a store error into the error returned to callers: integrity
// failures keep the driver message as ConstraintViolation, anything else is
// logged under method and reported as ErrInternal.
func Classify(method string, err error) error {
	if IsConstraintViolation(err) {
		logger.Warn(method+" constraint violation", zap.String("error", err.Error()))
		return customerrors.SetCustomErrorf(constant.ErrConstraintViolation, "%s", err.Error())
	}
	logger.Error(method, zap.String("error", err.Error()))
	return customerrors.SetCustomError(constant.ErrInternal)
}
