package usecases

import (
	"context"

	"jstore/internal/application/order/paymentgateway"
	"jstore/internal/domain/order"
	"jstore/internal/domain/order/valueobjects"
	apperrors "jstore/internal/shared/errors"
	"jstore/internal/shared/lock"
	"jstore/internal/shared/logger"
)

// NotificationOutcome describes how a provider notification was handled.
type NotificationOutcome string

const (
	// OutcomeSkipped: the notification was not a payment event or carried
	// no payment id. Acknowledged without provider contact.
	OutcomeSkipped NotificationOutcome = "skipped"
	// OutcomeUnmapped: the provider reported a status the mapping does not
	// recognize. Acknowledged so the provider stops retrying.
	OutcomeUnmapped NotificationOutcome = "unmapped"
	// OutcomeApplied: the order status changed.
	OutcomeApplied NotificationOutcome = "applied"
	// OutcomeUnchanged: duplicate delivery, the order already had this status.
	OutcomeUnchanged NotificationOutcome = "unchanged"
	// OutcomeSuppressed: the order is final and the stale status was discarded.
	OutcomeSuppressed NotificationOutcome = "suppressed"
)

// NotificationCommand is a provider webhook delivery reduced to its trigger
// fields. The payload status is never used; it only tells us which payment
// to fetch.
type NotificationCommand struct {
	Type      string
	PaymentID string
}

type NotificationResult struct {
	Outcome NotificationOutcome
	OrderID string
}

// ReconcileConfig tunes reconciliation behavior.
type ReconcileConfig struct {
	// AllowStatusRegression lets a notification move a final order back to
	// an earlier status. Off by default: out-of-order deliveries must not
	// revoke an approval.
	AllowStatusRegression bool
}

// HandleNotificationUseCase reconciles provider payment notifications into
// orders. Deliveries are at least once and unordered, so the whole flow is
// idempotent: fetch the authoritative payment, correlate by external
// reference, apply under a per-order lock.
type HandleNotificationUseCase struct {
	orderRepo order.Repository
	gateway   paymentgateway.PaymentGateway
	txRunner  TransactionRunner
	locks     *lock.KeyedMutex
	cfg       ReconcileConfig
	logger    logger.Interface
}

func NewHandleNotificationUseCase(
	orderRepo order.Repository,
	gateway paymentgateway.PaymentGateway,
	txRunner TransactionRunner,
	locks *lock.KeyedMutex,
	cfg ReconcileConfig,
	logger logger.Interface,
) *HandleNotificationUseCase {
	return &HandleNotificationUseCase{
		orderRepo: orderRepo,
		gateway:   gateway,
		txRunner:  txRunner,
		locks:     locks,
		cfg:       cfg,
		logger:    logger,
	}
}

func (uc *HandleNotificationUseCase) Execute(ctx context.Context, cmd NotificationCommand) (*NotificationResult, error) {
	if cmd.Type != "payment" {
		uc.logger.Debugw("ignoring non-payment notification", "type", cmd.Type)
		return &NotificationResult{Outcome: OutcomeSkipped}, nil
	}
	if cmd.PaymentID == "" {
		uc.logger.Warnw("payment notification without payment id")
		return &NotificationResult{Outcome: OutcomeSkipped}, nil
	}

	// Status from the payload is untrusted; ask the provider.
	payment, err := uc.gateway.GetPayment(ctx, cmd.PaymentID)
	if err != nil {
		uc.logger.Errorw("failed to fetch payment from provider",
			"payment_id", cmd.PaymentID,
			"error", err,
		)
		return nil, apperrors.NewPaymentGatewayError("failed to fetch payment", err.Error())
	}

	if payment.ExternalReference == "" {
		uc.logger.Warnw("payment has no external reference, cannot correlate",
			"payment_id", payment.PaymentID,
		)
		return &NotificationResult{Outcome: OutcomeSkipped}, nil
	}

	nextStatus, mapped := valueobjects.OrderStatusFromProvider(payment.Status)
	if !mapped {
		uc.logger.Warnw("unmapped provider payment status",
			"payment_id", payment.PaymentID,
			"order_id", payment.ExternalReference,
			"provider_status", payment.Status,
		)
		return &NotificationResult{Outcome: OutcomeUnmapped, OrderID: payment.ExternalReference}, nil
	}

	// The lock is taken after the provider fetch so slow provider calls do
	// not serialize, only the read-modify-write section does.
	unlock := uc.locks.Lock(payment.ExternalReference)
	defer unlock()

	var application order.StatusApplication
	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := uc.orderRepo.GetBySID(txCtx, payment.ExternalReference)
		if err != nil {
			if apperrors.IsNotFoundError(err) {
				return apperrors.NewUnreconcilableError("no order matches external reference", payment.ExternalReference)
			}
			return apperrors.NewStorageError("failed to load order", err.Error())
		}

		previousPaymentID := existing.PaymentID()
		application, err = existing.ApplyPaymentStatus(nextStatus, payment.PaymentID, uc.cfg.AllowStatusRegression)
		if err != nil {
			return apperrors.NewInternalError("failed to apply payment status", err.Error())
		}

		if previousPaymentID != nil && *previousPaymentID != payment.PaymentID {
			uc.logger.Warnw("order payment reference overwritten",
				"order_id", existing.SID(),
				"previous_payment_id", *previousPaymentID,
				"payment_id", payment.PaymentID,
			)
		}

		if application == order.StatusSuppressed {
			return nil
		}
		if err := uc.orderRepo.Update(txCtx, existing); err != nil {
			return apperrors.NewStorageError("failed to persist order status", err.Error())
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	result := &NotificationResult{OrderID: payment.ExternalReference}
	switch application {
	case order.StatusApplied:
		result.Outcome = OutcomeApplied
		uc.logger.Infow("order status updated from payment notification",
			"order_id", payment.ExternalReference,
			"payment_id", payment.PaymentID,
			"status", nextStatus,
		)
	case order.StatusUnchanged:
		result.Outcome = OutcomeUnchanged
		uc.logger.Debugw("duplicate payment notification",
			"order_id", payment.ExternalReference,
			"payment_id", payment.PaymentID,
			"status", nextStatus,
		)
	case order.StatusSuppressed:
		result.Outcome = OutcomeSuppressed
		uc.logger.Infow("stale payment notification suppressed",
			"order_id", payment.ExternalReference,
			"payment_id", payment.PaymentID,
			"incoming_status", nextStatus,
		)
	}
	return result, nil
}
