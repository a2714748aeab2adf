package usecases

import (
	"context"

	"jstore/internal/domain/order"
	apperrors "jstore/internal/shared/errors"
	"jstore/internal/shared/logger"
)

// TutorialProvider supplies the rendered tutorial that ships with an
// approved purchase.
type TutorialProvider interface {
	Content(ctx context.Context) (string, error)
}

// DownloadConfig points at the deliverable.
type DownloadConfig struct {
	InstallerURL string
}

type GetDownloadCommand struct {
	OrderID string
}

type GetDownloadResult struct {
	OrderID      string
	InstallerURL string
	TutorialHTML string
}

// GetDownloadUseCase gates the product deliverable behind an approved
// order.
type GetDownloadUseCase struct {
	orderRepo order.Repository
	tutorial  TutorialProvider
	cfg       DownloadConfig
	logger    logger.Interface
}

func NewGetDownloadUseCase(
	orderRepo order.Repository,
	tutorial TutorialProvider,
	cfg DownloadConfig,
	logger logger.Interface,
) *GetDownloadUseCase {
	return &GetDownloadUseCase{
		orderRepo: orderRepo,
		tutorial:  tutorial,
		cfg:       cfg,
		logger:    logger,
	}
}

func (uc *GetDownloadUseCase) Execute(ctx context.Context, cmd GetDownloadCommand) (*GetDownloadResult, error) {
	if cmd.OrderID == "" {
		return nil, apperrors.NewValidationError("order id is required")
	}

	o, err := uc.orderRepo.GetBySID(ctx, cmd.OrderID)
	if err != nil {
		return nil, err
	}

	if !o.IsApproved() {
		uc.logger.Warnw("download denied for unapproved order",
			"order_id", o.SID(),
			"status", o.Status(),
		)
		return nil, apperrors.NewForbiddenError("order is not approved")
	}

	tutorialHTML, err := uc.tutorial.Content(ctx)
	if err != nil {
		return nil, apperrors.NewInternalError("failed to load tutorial content", err.Error())
	}

	uc.logger.Infow("download granted", "order_id", o.SID())

	return &GetDownloadResult{
		OrderID:      o.SID(),
		InstallerURL: uc.cfg.InstallerURL,
		TutorialHTML: tutorialHTML,
	}, nil
}
