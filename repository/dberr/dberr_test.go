package dberr_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/repository/dberr"
	cerr "github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

func TestIsConstraintViolation_MySQL(t *testing.T) {
	assert.True(t, dberr.IsConstraintViolation(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry"}))
	assert.True(t, dberr.IsConstraintViolation(fmt.Errorf("insert: %w", &mysql.MySQLError{Number: 1452})))
	assert.False(t, dberr.IsConstraintViolation(&mysql.MySQLError{Number: 1146, Message: "Table doesn't exist"}))
}

func TestIsConstraintViolation_SQLite(t *testing.T) {
	db, err := sqlx.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`CREATE TABLE parameter (id INTEGER PRIMARY KEY, name TEXT NOT NULL UNIQUE)`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO parameter (name) VALUES ('color')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO parameter (name) VALUES ('color')`)
	require.Error(t, err)
	assert.True(t, dberr.IsConstraintViolation(err))

	_, err = db.Exec(`SELECT * FROM missing_table`)
	require.Error(t, err)
	assert.False(t, dberr.IsConstraintViolation(err))
}

func TestIsConstraintViolation_Other(t *testing.T) {
	assert.False(t, dberr.IsConstraintViolation(nil))
	assert.False(t, dberr.IsConstraintViolation(errors.New("boom")))
}

func TestClassify(t *testing.T) {
	err := dberr.Classify("[Test] insert", &mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'x'"})
	assert.True(t, cerr.IsType(err, constant.ErrConstraintViolation))
	assert.Contains(t, err.Error(), "Duplicate entry")

	err = dberr.Classify("[Test] insert", errors.New("connection reset"))
	assert.True(t, cerr.IsType(err, constant.ErrInternal))
	assert.NotContains(t, err.Error(), "connection reset")
}
