package account

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type AccountRepository interface {
	Create(ctx context.Context, req *model.AccountEntity) (*model.AccountEntity, error)
	Get(ctx context.Context, filter *model.AccountFilter) (*model.AccountEntity, error)
	Update(ctx context.Context, data *model.AccountEntity) error
	Activate(ctx context.Context, id uint64) error
}

func NewAccountRepository(conn *sqlx.DB) AccountRepository {
	return &SQL{conn: conn}
}

const (
	insertAccountQuery = `INSERT INTO account (email, password_hash, first_name, last_name, surname, position, account_type, is_active, created_at)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	getAccountBase     = `SELECT id, email, password_hash, first_name, last_name, surname, position, account_type, is_active, created_at FROM account WHERE 1 = 1`
	updateAccountQuery = `UPDATE account SET email = ?, password_hash = ?, first_name = ?, last_name = ?, surname = ?, position = ? WHERE id = ?`
	activateQuery      = `UPDATE account SET is_active = ? WHERE id = ?`
)

func (s *SQL) Create(ctx context.Context, data *model.AccountEntity) (*model.AccountEntity, error) {
	result, err := s.conn.ExecContext(ctx, insertAccountQuery,
		data.Email, data.PasswordHash, data.FirstName, data.LastName, data.Surname, data.Position,
		data.AccountType, data.IsActive, data.CreatedAt)
	if err != nil {
		return nil, err
	}

	lastID, err := result.LastInsertId()
	if err != nil {
		return nil, err
	}

	data.ID = uint64(lastID)
	return data, nil
}

func (s *SQL) Get(ctx context.Context, filter *model.AccountFilter) (*model.AccountEntity, error) {
	query := getAccountBase
	args := make([]any, 0, 2)

	if filter.ID != 0 {
		query += " AND id = ?"
		args = append(args, filter.ID)
	}
	if filter.Email != "" {
		query += " AND email = ?"
		args = append(args, filter.Email)
	}

	var entity model.AccountEntity
	if err := s.conn.QueryRowxContext(ctx, query, args...).StructScan(&entity); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &entity, nil
}

func (s *SQL) Update(ctx context.Context, data *model.AccountEntity) error {
	_, err := s.conn.ExecContext(ctx, updateAccountQuery,
		data.Email, data.PasswordHash, data.FirstName, data.LastName, data.Surname, data.Position, data.ID)
	return err
}

func (s *SQL) Activate(ctx context.Context, id uint64) error {
	_, err := s.conn.ExecContext(ctx, activateQuery, true, id)
	return err
}
