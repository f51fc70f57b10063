package contact

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
)

type SQL struct {
	conn *sqlx.DB
}

type ContactRepository interface {
	List(ctx context.Context, accountIDs ...uint64) ([]model.ContactEntity, error)
	CountByType(ctx context.Context, accountID uint64, contactType constant.ContactType) (int64, error)
	Create(ctx context.Context, data *model.ContactEntity) (*model.ContactEntity, error)
	UpdateValue(ctx context.Context, id, accountID uint64, value string) (int64, error)
	Delete(ctx context.Context, id, accountID uint64) (int64, error)
}

func NewContactRepository(conn *sqlx.DB) ContactRepository {
	return &SQL{conn: conn}
}

const (
	listContactsQuery  = `SELECT id, account_id, type, value FROM contact WHERE account_id IN (?) ORDER BY account_id, id`
	countByTypeQuery   = `SELECT COUNT(*) FROM contact WHERE account_id = ? AND type = ?`
	insertContactQuery = `INSERT INTO contact (account_id, type, value) VALUES (?, ?, ?)`
	updateContactQuery = `UPDATE contact SET value = ? WHERE id = ? AND account_id = ?`
	deleteContactQuery = `DELETE FROM contact WHERE id = ? AND account_id = ?`
)

func (s *SQL) List(ctx context.Context, accountIDs ...uint64) ([]model.ContactEntity, error) {
	contacts := make([]model.ContactEntity, 0)
	if len(accountIDs) == 0 {
		return contacts, nil
	}
	query, args, err := sqlx.In(listContactsQuery, accountIDs)
	if err != nil {
		return nil, err
	}
	if err := s.conn.SelectContext(ctx, &contacts, s.conn.Rebind(query), args...); err != nil {
		return nil, err
	}
	return contacts, nil
}

func (s *SQL) CountByType(ctx context.Context, accountID uint64, contactType constant.ContactType) (int64, error) {
	var n int64
	if err := s.conn.GetContext(ctx, &n, countByTypeQuery, accountID, contactType); err != nil {
		return 0, err
	}
	return n, nil
}

func (s *SQL) Create(ctx context.Context, data *model.ContactEntity) (*model.ContactEntity, error) {
	res, err := s.conn.ExecContext(ctx, insertContactQuery, data.AccountID, data.Type, data.Value)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	data.ID = uint64(id)
	return data, nil
}

func (s *SQL) UpdateValue(ctx context.Context, id, accountID uint64, value string) (int64, error) {
	res, err := s.conn.ExecContext(ctx, updateContactQuery, value, id, accountID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (s *SQL) Delete(ctx context.Context, id, accountID uint64) (int64, error) {
	res, err := s.conn.ExecContext(ctx, deleteContactQuery, id, accountID)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}
