package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"jstore/internal/application/order/usecases"
	"jstore/internal/shared/logger"
	"jstore/internal/shared/utils"
)

type notificationReconciler interface {
	Execute(ctx context.Context, cmd usecases.NotificationCommand) (*usecases.NotificationResult, error)
}

// NotificationHandler receives payment provider webhooks. The provider
// retries on non-2xx, so only retry-worthy failures return an error
// status; everything else is acknowledged.
type NotificationHandler struct {
	handleNotification notificationReconciler
	logger             logger.Interface
}

func NewNotificationHandler(handleNotification notificationReconciler, logger logger.Interface) *NotificationHandler {
	return &NotificationHandler{
		handleNotification: handleNotification,
		logger:             logger,
	}
}

// notificationPayload mirrors the provider webhook body. The id arrives as
// a JSON number or string depending on the notification flavor, so it is
// decoded as json.Number.
type notificationPayload struct {
	Type string `json:"type"`
	Data struct {
		ID json.Number `json:"id"`
	} `json:"data"`
}

// Receive handles POST /payment-notifications
func (h *NotificationHandler) Receive(c *gin.Context) {
	var payload notificationPayload
	// Malformed bodies are acknowledged: the provider would retry the same
	// unparseable payload forever.
	_ = c.ShouldBindJSON(&payload)

	notificationType := payload.Type
	if notificationType == "" {
		notificationType = c.Query("type")
	}
	if notificationType == "" {
		notificationType = c.Query("topic")
	}

	paymentID := payload.Data.ID.String()
	if paymentID == "" {
		paymentID = c.Query("data.id")
	}
	if paymentID == "" {
		paymentID = c.Query("id")
	}

	result, err := h.handleNotification.Execute(c.Request.Context(), usecases.NotificationCommand{
		Type:      notificationType,
		PaymentID: paymentID,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": string(result.Outcome)})
}
