package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"jstore/internal/application/order/paymentgateway"
	"jstore/internal/shared/config"
	"jstore/internal/shared/logger"
)

const defaultTimeout = 10 * time.Second

// MercadoPagoClient implements paymentgateway.PaymentGateway against the
// MercadoPago REST API.
type MercadoPagoClient struct {
	baseURL     string
	accessToken string
	httpClient  *http.Client
	logger      logger.Interface
}

func NewMercadoPagoClient(cfg *config.MercadoPagoConfig, logger logger.Interface) *MercadoPagoClient {
	timeout := defaultTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}

	return &MercadoPagoClient{
		baseURL:     cfg.BaseURL,
		accessToken: cfg.AccessToken,
		httpClient:  &http.Client{Timeout: timeout},
		logger:      logger,
	}
}

type preferenceItem struct {
	Title      string  `json:"title"`
	Quantity   int     `json:"quantity"`
	UnitPrice  float64 `json:"unit_price"`
	CurrencyID string  `json:"currency_id"`
}

type preferencePayer struct {
	Email string `json:"email,omitempty"`
}

type preferenceBackURLs struct {
	Success string `json:"success"`
	Failure string `json:"failure"`
	Pending string `json:"pending"`
}

type preferenceRequest struct {
	Items             []preferenceItem   `json:"items"`
	Payer             *preferencePayer   `json:"payer,omitempty"`
	ExternalReference string             `json:"external_reference"`
	BackURLs          preferenceBackURLs `json:"back_urls"`
	AutoReturn        string             `json:"auto_return"`
	NotificationURL   string             `json:"notification_url,omitempty"`
}

type preferenceResponse struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

// paymentResponse decodes the fields we need from the payment resource.
// The numeric payment id is decoded as json.Number so it survives as a
// string without float rounding.
type paymentResponse struct {
	ID                json.Number `json:"id"`
	Status            string      `json:"status"`
	ExternalReference string      `json:"external_reference"`
}

func (c *MercadoPagoClient) CreatePreference(ctx context.Context, req paymentgateway.CreatePreferenceRequest) (*paymentgateway.CreatePreferenceResponse, error) {
	body := preferenceRequest{
		Items: []preferenceItem{{
			Title:      req.Title,
			Quantity:   req.Quantity,
			UnitPrice:  float64(req.UnitPriceCents) / 100,
			CurrencyID: req.Currency,
		}},
		ExternalReference: req.ExternalReference,
		BackURLs: preferenceBackURLs{
			Success: req.BackURLs.Success,
			Failure: req.BackURLs.Failure,
			Pending: req.BackURLs.Pending,
		},
		AutoReturn:      "approved",
		NotificationURL: req.NotificationURL,
	}
	if req.PayerEmail != "" {
		body.Payer = &preferencePayer{Email: req.PayerEmail}
	}

	var resp preferenceResponse
	if err := c.do(ctx, http.MethodPost, "/checkout/preferences", body, &resp); err != nil {
		return nil, fmt.Errorf("create preference: %w", err)
	}
	if resp.ID == "" || resp.InitPoint == "" {
		return nil, fmt.Errorf("create preference: incomplete response from provider")
	}

	return &paymentgateway.CreatePreferenceResponse{
		PreferenceID: resp.ID,
		RedirectURL:  resp.InitPoint,
	}, nil
}

func (c *MercadoPagoClient) GetPayment(ctx context.Context, paymentID string) (*paymentgateway.PaymentInfo, error) {
	var resp paymentResponse
	if err := c.do(ctx, http.MethodGet, "/v1/payments/"+paymentID, nil, &resp); err != nil {
		return nil, fmt.Errorf("get payment %s: %w", paymentID, err)
	}

	return &paymentgateway.PaymentInfo{
		PaymentID:         resp.ID.String(),
		ExternalReference: resp.ExternalReference,
		Status:            resp.Status,
	}, nil
}

func (c *MercadoPagoClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("provider request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		c.logger.Warnw("provider returned non-success status",
			"method", method,
			"path", path,
			"status", resp.StatusCode,
			"body", string(respBody),
		)
		return fmt.Errorf("provider returned status %d", resp.StatusCode)
	}

	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	if err := decoder.Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}
