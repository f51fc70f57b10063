package notification

import (
	"context"
	"fmt"

	accountapp "github.com/muhammadheryan/marketplace/application/account"
	"github.com/muhammadheryan/marketplace/constant"
	"github.com/muhammadheryan/marketplace/model"
	accountrepo "github.com/muhammadheryan/marketplace/repository/account"
	"github.com/muhammadheryan/marketplace/thirdparty/mail"
	"github.com/muhammadheryan/marketplace/thirdparty/notification"
	"github.com/muhammadheryan/marketplace/utils/logger"
	"github.com/muhammadheryan/marketplace/utils/metrics"
	"go.uber.org/zap"
)

const (
	subjectNewOrder     = "Order status update"
	bodyNewOrder        = "Your order has been placed."
	subjectConfirmation = "Registration confirmation"
)

// DeliveryApp turns notification events into e-mails.
type DeliveryApp struct {
	accountRepo accountrepo.AccountRepository
	accountApp  accountapp.AccountApp
	mailer      mail.Sender
}

var _ notification.Handler = (*DeliveryApp)(nil)

func NewDeliveryApp(accountRepo accountrepo.AccountRepository, accountApp accountapp.AccountApp, mailer mail.Sender) *DeliveryApp {
	return &DeliveryApp{accountRepo: accountRepo, accountApp: accountApp, mailer: mailer}
}

// Handle returns an error only for failures worth retrying. Events about
// accounts that no longer exist are dropped.
func (s *DeliveryApp) Handle(ctx context.Context, event notification.Event) (err error) {
	defer func() {
		result := metrics.ResultSuccess
		if err != nil {
			result = metrics.ResultFailure
		}
		metrics.Notifications.WithLabelValues("deliver_"+string(event.Type), result).Inc()
	}()

	account, err := s.accountRepo.Get(ctx, &model.AccountFilter{ID: event.AccountID})
	if err != nil {
		return fmt.Errorf("get account %d: %w", event.AccountID, err)
	}
	if account == nil {
		logger.Warn("[Handle] account not found, event dropped",
			zap.String("type", string(event.Type)),
			zap.Uint64("account_id", event.AccountID))
		return nil
	}

	switch event.Type {
	case constant.EventNewOrder:
		return s.mailer.Send(ctx, account.Email, subjectNewOrder, bodyNewOrder)
	case constant.EventAccountRegistered:
		if account.IsActive {
			return nil
		}
		token, err := s.accountApp.IssueConfirmationToken(ctx, account.ID)
		if err != nil {
			return fmt.Errorf("issue confirmation token: %w", err)
		}
		return s.mailer.Send(ctx, account.Email, subjectConfirmation, token)
	default:
		logger.Warn("[Handle] unknown event type", zap.String("type", string(event.Type)))
		return nil
	}
}
