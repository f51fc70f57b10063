package notification_test

import (
	"context"
	"errors"
	"testing"
	"time"

	appnotification "github.com/muhammadheryan/marketplace/application/notification"
	"github.com/muhammadheryan/marketplace/constant"
	accountappmocks "github.com/muhammadheryan/marketplace/mocks/application/account"
	accountmocks "github.com/muhammadheryan/marketplace/mocks/repository/account"
	mailmocks "github.com/muhammadheryan/marketplace/mocks/thirdparty/mail"
	"github.com/muhammadheryan/marketplace/model"
	"github.com/muhammadheryan/marketplace/thirdparty/notification"
	"github.com/stretchr/testify/mock"
)

func TestDeliveryApp_Handle(t *testing.T) {
	type fields struct {
		accountRepo *accountmocks.AccountRepository
		accountApp  *accountappmocks.AccountApp
		mailer      *mailmocks.Sender
	}
	tests := []struct {
		name     string
		event    notification.Event
		mockCall func(f fields)
		wantErr  bool
	}{
		{
			name:  "success: new order mailed to buyer",
			event: notification.Event{Type: constant.EventNewOrder, AccountID: 7, OccurredAt: time.Now()},
			mockCall: func(f fields) {
				f.accountRepo.On("Get", mock.Anything, &model.AccountFilter{ID: 7}).
					Return(&model.AccountEntity{ID: 7, Email: "bea@example.com", IsActive: true}, nil).Once()
				f.mailer.On("Send", mock.Anything, "bea@example.com", "Order status update", "Your order has been placed.").Return(nil).Once()
			},
		},
		{
			name:  "success: registration token mailed",
			event: notification.Event{Type: constant.EventAccountRegistered, AccountID: 4},
			mockCall: func(f fields) {
				f.accountRepo.On("Get", mock.Anything, &model.AccountFilter{ID: 4}).
					Return(&model.AccountEntity{ID: 4, Email: "sam@example.com"}, nil).Once()
				f.accountApp.On("IssueConfirmationToken", mock.Anything, uint64(4)).Return("tok-123", nil).Once()
				f.mailer.On("Send", mock.Anything, "sam@example.com", "Registration confirmation", "tok-123").Return(nil).Once()
			},
		},
		{
			name:  "success: already active account is skipped",
			event: notification.Event{Type: constant.EventAccountRegistered, AccountID: 4},
			mockCall: func(f fields) {
				f.accountRepo.On("Get", mock.Anything, &model.AccountFilter{ID: 4}).
					Return(&model.AccountEntity{ID: 4, Email: "sam@example.com", IsActive: true}, nil).Once()
			},
		},
		{
			name:  "success: deleted account is dropped",
			event: notification.Event{Type: constant.EventNewOrder, AccountID: 99},
			mockCall: func(f fields) {
				f.accountRepo.On("Get", mock.Anything, &model.AccountFilter{ID: 99}).Return(nil, nil).Once()
			},
		},
		{
			name:  "error: mail server rejects",
			event: notification.Event{Type: constant.EventNewOrder, AccountID: 7},
			mockCall: func(f fields) {
				f.accountRepo.On("Get", mock.Anything, &model.AccountFilter{ID: 7}).
					Return(&model.AccountEntity{ID: 7, Email: "bea@example.com"}, nil).Once()
				f.mailer.On("Send", mock.Anything, "bea@example.com", mock.Anything, mock.Anything).Return(errors.New("421 try later")).Once()
			},
			wantErr: true,
		},
		{
			name:  "error: account lookup fails",
			event: notification.Event{Type: constant.EventNewOrder, AccountID: 7},
			mockCall: func(f fields) {
				f.accountRepo.On("Get", mock.Anything, &model.AccountFilter{ID: 7}).Return(nil, errors.New("db down")).Once()
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fields{
				accountRepo: accountmocks.NewAccountRepository(t),
				accountApp:  accountappmocks.NewAccountApp(t),
				mailer:      mailmocks.NewSender(t),
			}
			tt.mockCall(f)

			app := appnotification.NewDeliveryApp(f.accountRepo, f.accountApp, f.mailer)
			err := app.Handle(context.Background(), tt.event)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Handle() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
