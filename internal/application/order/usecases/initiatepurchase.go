package usecases

import (
	"context"
	"fmt"

	"jstore/internal/application/order/paymentgateway"
	"jstore/internal/domain/order"
	"jstore/internal/domain/order/valueobjects"
	apperrors "jstore/internal/shared/errors"
	"jstore/internal/shared/logger"
)

// TransactionRunner runs a function inside a storage transaction.
type TransactionRunner interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// PurchaseConfig is the catalog and URL configuration for checkout. The
// store sells a single product, so the catalog lives in configuration.
type PurchaseConfig struct {
	ProductName     string
	PriceCents      int64
	Currency        string
	FrontendBaseURL string
	NotifyURL       string
}

// InitiatePurchaseCommand starts a purchase for the configured product.
type InitiatePurchaseCommand struct {
	CustomerEmail string
}

// InitiatePurchaseResult carries the order identity and the provider
// checkout URL the buyer should be redirected to.
type InitiatePurchaseResult struct {
	OrderID     string
	RedirectURL string
}

// InitiatePurchaseUseCase creates a pending order and a matching checkout
// preference at the payment provider. Order insert and preference creation
// commit together: if the provider call fails the order row is rolled
// back, so no orphan pending orders are left behind.
type InitiatePurchaseUseCase struct {
	orderRepo order.Repository
	gateway   paymentgateway.PaymentGateway
	txRunner  TransactionRunner
	cfg       PurchaseConfig
	logger    logger.Interface
}

func NewInitiatePurchaseUseCase(
	orderRepo order.Repository,
	gateway paymentgateway.PaymentGateway,
	txRunner TransactionRunner,
	cfg PurchaseConfig,
	logger logger.Interface,
) *InitiatePurchaseUseCase {
	return &InitiatePurchaseUseCase{
		orderRepo: orderRepo,
		gateway:   gateway,
		txRunner:  txRunner,
		cfg:       cfg,
		logger:    logger,
	}
}

func (uc *InitiatePurchaseUseCase) Execute(ctx context.Context, cmd InitiatePurchaseCommand) (*InitiatePurchaseResult, error) {
	price, err := valueobjects.NewMoney(uc.cfg.PriceCents, uc.cfg.Currency)
	if err != nil {
		return nil, apperrors.NewInternalError("invalid product price configuration", err.Error())
	}

	var customerEmail *string
	if cmd.CustomerEmail != "" {
		customerEmail = &cmd.CustomerEmail
	}

	newOrder, err := order.NewOrder(uc.cfg.ProductName, price, customerEmail)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to create order", err.Error())
	}

	var redirectURL string
	err = uc.txRunner.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.orderRepo.Create(txCtx, newOrder); err != nil {
			return apperrors.NewStorageError("failed to persist order", err.Error())
		}

		pref, err := uc.gateway.CreatePreference(txCtx, paymentgateway.CreatePreferenceRequest{
			ExternalReference: newOrder.SID(),
			Title:             newOrder.ProductName(),
			Quantity:          1,
			UnitPriceCents:    price.AmountInCents(),
			Currency:          price.Currency(),
			PayerEmail:        cmd.CustomerEmail,
			BackURLs:          uc.backURLs(newOrder.SID()),
			NotificationURL:   uc.cfg.NotifyURL,
		})
		if err != nil {
			uc.logger.Errorw("payment preference creation failed",
				"order_id", newOrder.SID(),
				"error", err,
			)
			return apperrors.NewPaymentGatewayError("failed to create checkout preference", err.Error())
		}

		if err := newOrder.AttachPreference(pref.PreferenceID); err != nil {
			return apperrors.NewInternalError("failed to attach preference", err.Error())
		}
		if err := uc.orderRepo.Update(txCtx, newOrder); err != nil {
			return apperrors.NewStorageError("failed to persist preference", err.Error())
		}

		redirectURL = pref.RedirectURL
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("purchase initiated",
		"order_id", newOrder.SID(),
		"preference_id", *newOrder.PreferenceID(),
		"amount_cents", price.AmountInCents(),
	)

	return &InitiatePurchaseResult{
		OrderID:     newOrder.SID(),
		RedirectURL: redirectURL,
	}, nil
}

func (uc *InitiatePurchaseUseCase) backURLs(orderSID string) paymentgateway.BackURLs {
	return paymentgateway.BackURLs{
		Success: fmt.Sprintf("%s/success?status=approved&order_id=%s", uc.cfg.FrontendBaseURL, orderSID),
		Failure: fmt.Sprintf("%s/failure?status=rejected&order_id=%s", uc.cfg.FrontendBaseURL, orderSID),
		Pending: fmt.Sprintf("%s/pending?status=pending&order_id=%s", uc.cfg.FrontendBaseURL, orderSID),
	}
}
