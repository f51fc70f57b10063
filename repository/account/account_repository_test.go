package account_test

import (
	"context"
	"testing"
	"time"

	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	accountrepo "github.com/muhammadheryan/marketplace/repository/account"
	"github.com/muhammadheryan/marketplace/repository/dberr"
	"github.com/muhammadheryan/marketplace/utils/testdb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSQL_CreateGetActivate(t *testing.T) {
	repo := accountrepo.NewAccountRepository(testdb.New(t))
	ctx := context.Background()

	created, err := repo.Create(ctx, &model.AccountEntity{
		Email:        "bea@example.com",
		PasswordHash: "hash",
		FirstName:    "Bea",
		LastName:     "Buyer",
		AccountType:  constant.AccountTypeBuyer,
		CreatedAt:    time.Now().UTC(),
	})
	require.NoError(t, err)
	require.NotZero(t, created.ID)

	got, err := repo.Get(ctx, &model.AccountFilter{Email: "bea@example.com"})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.False(t, got.IsActive)

	require.NoError(t, repo.Activate(ctx, created.ID))
	got, err = repo.Get(ctx, &model.AccountFilter{ID: created.ID})
	require.NoError(t, err)
	assert.True(t, got.IsActive)

	missing, err := repo.Get(ctx, &model.AccountFilter{Email: "nobody@example.com"})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSQL_DuplicateEmail(t *testing.T) {
	repo := accountrepo.NewAccountRepository(testdb.New(t))
	ctx := context.Background()
	account := func() *model.AccountEntity {
		return &model.AccountEntity{Email: "sam@example.com", PasswordHash: "hash", FirstName: "Sam", LastName: "Seller", AccountType: constant.AccountTypeSeller, CreatedAt: time.Now().UTC()}
	}

	_, err := repo.Create(ctx, account())
	require.NoError(t, err)

	_, err = repo.Create(ctx, account())
	require.Error(t, err)
	assert.True(t, dberr.IsConstraintViolation(err), "err = %v", err)
}
