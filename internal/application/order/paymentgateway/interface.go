package paymentgateway

import "context"

// BackURLs are the storefront pages the provider redirects the buyer to
// after checkout.
type BackURLs struct {
	Success string
	Failure string
	Pending string
}

// CreatePreferenceRequest describes a single-item checkout preference.
type CreatePreferenceRequest struct {
	ExternalReference string
	Title             string
	Quantity          int
	UnitPriceCents    int64
	Currency          string
	PayerEmail        string
	BackURLs          BackURLs
	NotificationURL   string
}

type CreatePreferenceResponse struct {
	PreferenceID string
	RedirectURL  string
}

// PaymentInfo is the authoritative payment state fetched from the
// provider. Notification payloads are treated as triggers only; status
// always comes from here.
type PaymentInfo struct {
	PaymentID         string
	ExternalReference string
	Status            string
}

// PaymentGateway abstracts the payment provider API.
type PaymentGateway interface {
	CreatePreference(ctx context.Context, req CreatePreferenceRequest) (*CreatePreferenceResponse, error)
	GetPayment(ctx context.Context, paymentID string) (*PaymentInfo, error)
}
