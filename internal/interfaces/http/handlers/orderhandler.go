package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"jstore/internal/application/order/usecases"
	apperrors "jstore/internal/shared/errors"
	"jstore/internal/shared/logger"
	"jstore/internal/shared/utils"
)

type purchaseInitiator interface {
	Execute(ctx context.Context, cmd usecases.InitiatePurchaseCommand) (*usecases.InitiatePurchaseResult, error)
}

type orderStatusGetter interface {
	Execute(ctx context.Context, cmd usecases.GetOrderStatusCommand) (*usecases.GetOrderStatusResult, error)
}

type downloadGetter interface {
	Execute(ctx context.Context, cmd usecases.GetDownloadCommand) (*usecases.GetDownloadResult, error)
}

// OrderHandler serves the storefront-facing order endpoints.
type OrderHandler struct {
	initiatePurchase purchaseInitiator
	getOrderStatus   orderStatusGetter
	getDownload      downloadGetter
	logger           logger.Interface
}

func NewOrderHandler(
	initiatePurchase purchaseInitiator,
	getOrderStatus orderStatusGetter,
	getDownload downloadGetter,
	logger logger.Interface,
) *OrderHandler {
	return &OrderHandler{
		initiatePurchase: initiatePurchase,
		getOrderStatus:   getOrderStatus,
		getDownload:      getDownload,
		logger:           logger,
	}
}

type purchaseRequest struct {
	Email string `json:"email" binding:"omitempty,email"`
}

// InitiatePurchase handles POST /purchase
func (h *OrderHandler) InitiatePurchase(c *gin.Context) {
	// Body is optional; the storefront may start an anonymous checkout.
	var req purchaseRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponseWithError(c, apperrors.NewValidationError("invalid request body", err.Error()))
			return
		}
	}

	result, err := h.initiatePurchase.Execute(c.Request.Context(), usecases.InitiatePurchaseCommand{
		CustomerEmail: req.Email,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"order_id":     result.OrderID,
		"redirect_url": result.RedirectURL,
	}, "purchase initiated")
}

// GetOrderStatus handles GET /orders/:id/status
func (h *OrderHandler) GetOrderStatus(c *gin.Context) {
	result, err := h.getOrderStatus.Execute(c.Request.Context(), usecases.GetOrderStatusCommand{
		OrderID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"order_id":     result.OrderID,
		"status":       result.Status,
		"product_name": result.ProductName,
		"amount_cents": result.AmountCents,
		"currency":     result.Currency,
		"created_at":   result.CreatedAt,
		"updated_at":   result.UpdatedAt,
	})
}

// GetDownload handles GET /orders/:id/download
func (h *OrderHandler) GetDownload(c *gin.Context) {
	result, err := h.getDownload.Execute(c.Request.Context(), usecases.GetDownloadCommand{
		OrderID: c.Param("id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", gin.H{
		"order_id":      result.OrderID,
		"installer_url": result.InstallerURL,
		"tutorial_html": result.TutorialHTML,
	})
}

// Health handles GET /health
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
