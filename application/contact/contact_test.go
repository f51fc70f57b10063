package contact_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appcontact "github.com/muhammadheryan/marketplace/application/contact"
	"github.com/muhammadheryan/marketplace/constant"
	contactmocks "github.com/muhammadheryan/marketplace/mocks/repository/contact"
	"github.com/muhammadheryan/marketplace/model"
	contactrepo "github.com/muhammadheryan/marketplace/repository/contact"
	cerr "github.com/muhammadheryan/marketplace/utils/errors"
	"github.com/muhammadheryan/marketplace/utils/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestContactApp_Create(t *testing.T) {
	type args struct {
		accountID uint64
		req       *model.CreateContactRequest
	}
	tests := []struct {
		name     string
		args     args
		mockCall func(repo *contactmocks.ContactRepository)
		wantErr  bool
		errCode  constant.ErrorType
		errMsg   string
	}{
		{
			name: "success",
			args: args{accountID: 4, req: &model.CreateContactRequest{Type: "phone", Value: "+100200300"}},
			mockCall: func(repo *contactmocks.ContactRepository) {
				repo.On("CountByType", mock.Anything, uint64(4), constant.ContactTypePhone).Return(int64(0), nil).Once()
				repo.On("Create", mock.Anything, &model.ContactEntity{AccountID: 4, Type: constant.ContactTypePhone, Value: "+100200300"}).
					Return(&model.ContactEntity{ID: 1, AccountID: 4, Type: constant.ContactTypePhone, Value: "+100200300"}, nil).Once()
			},
		},
		{
			name: "error: second phone",
			args: args{accountID: 4, req: &model.CreateContactRequest{Type: "phone", Value: "+999"}},
			mockCall: func(repo *contactmocks.ContactRepository) {
				repo.On("CountByType", mock.Anything, uint64(4), constant.ContactTypePhone).Return(int64(1), nil).Once()
			},
			wantErr: true,
			errCode: constant.ErrValidation,
			errMsg:  "User can only have 1 phone.",
		},
		{
			name: "error: store failure",
			args: args{accountID: 4, req: &model.CreateContactRequest{Type: "address", Value: "Main st. 1"}},
			mockCall: func(repo *contactmocks.ContactRepository) {
				repo.On("CountByType", mock.Anything, uint64(4), constant.ContactTypeAddress).Return(int64(0), errors.New("db down")).Once()
			},
			wantErr: true,
			errCode: constant.ErrInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := contactmocks.NewContactRepository(t)
			tt.mockCall(repo)

			got, err := appcontact.NewContactApp(repo).Create(context.Background(), tt.args.accountID, tt.args.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Create() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrCode(t, err, tt.errCode)
				if tt.errMsg != "" {
					assert.Equal(t, tt.errMsg, err.Error())
				}
				return
			}
			assert.Equal(t, uint64(1), got.ID)
		})
	}
}

func TestContactApp_UpdateDelete(t *testing.T) {
	t.Run("update of someone else's contact", func(t *testing.T) {
		repo := contactmocks.NewContactRepository(t)
		repo.On("UpdateValue", mock.Anything, uint64(9), uint64(4), "new").Return(int64(0), nil).Once()

		err := appcontact.NewContactApp(repo).Update(context.Background(), 4, &model.UpdateContactRequest{ID: 9, Value: "new"})
		require.Error(t, err)
		assertErrCode(t, err, constant.ErrNotFound)
	})

	t.Run("delete own contact", func(t *testing.T) {
		repo := contactmocks.NewContactRepository(t)
		repo.On("Delete", mock.Anything, uint64(1), uint64(4)).Return(int64(1), nil).Once()

		require.NoError(t, appcontact.NewContactApp(repo).Delete(context.Background(), 4, 1))
	})

	t.Run("delete missing contact", func(t *testing.T) {
		repo := contactmocks.NewContactRepository(t)
		repo.On("Delete", mock.Anything, uint64(2), uint64(4)).Return(int64(0), nil).Once()

		err := appcontact.NewContactApp(repo).Delete(context.Background(), 4, 2)
		require.Error(t, err)
		assertErrCode(t, err, constant.ErrNotFound)
	})
}

func TestContactApp_OnePerType(t *testing.T) {
	db := testdb.New(t)
	accountID := uint64(testdb.Exec(t, db,
		`INSERT INTO account (email, password_hash, first_name, last_name, account_type, is_active, created_at) VALUES (?, ?, ?, ?, ?, ?, ?)`,
		"bea@example.com", "x", "Bea", "Buyer", "buyer", true, time.Now().UTC()))
	app := appcontact.NewContactApp(contactrepo.NewContactRepository(db))
	ctx := context.Background()

	_, err := app.Create(ctx, accountID, &model.CreateContactRequest{Type: "phone", Value: "+100200300"})
	require.NoError(t, err)
	_, err = app.Create(ctx, accountID, &model.CreateContactRequest{Type: "address", Value: "Main st. 1"})
	require.NoError(t, err)

	_, err = app.Create(ctx, accountID, &model.CreateContactRequest{Type: "phone", Value: "+999"})
	require.Error(t, err)
	assertErrCode(t, err, constant.ErrValidation)

	contacts, err := app.List(ctx, accountID)
	require.NoError(t, err)
	require.Len(t, contacts, 2)
	assert.Equal(t, "+100200300", contacts[0].Value)

	require.NoError(t, app.Update(ctx, accountID, &model.UpdateContactRequest{ID: contacts[0].ID, Value: "+111"}))
	err = app.Update(ctx, accountID+1, &model.UpdateContactRequest{ID: contacts[0].ID, Value: "+222"})
	assertErrCode(t, err, constant.ErrNotFound)

	contacts, err = app.List(ctx, accountID)
	require.NoError(t, err)
	assert.Equal(t, "+111", contacts[0].Value)
}

func assertErrCode(t *testing.T, err error, want constant.ErrorType) {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorCode() != constant.ErrorTypeCode[want] {
		t.Fatalf("error code = %s (%v), want %s", ce.ErrorCode(), err, constant.ErrorTypeCode[want])
	}
}
