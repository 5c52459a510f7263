package razorpay

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultBaseURL = "https://api.razorpay.com"

type Config struct {
	KeyID     string // public key, also the client-side checkout key
	KeySecret string // shared secret, signs callback payloads
	BaseURL   string // override for sandbox/testing
	Timeout   time.Duration
}

// Order is the gateway's view of a payment intent. Amount is in the
// gateway's smallest unit (paise).
type Order struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// OrderCreator is what the order service depends on; tests swap in a fake.
type OrderCreator interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string, notes map[string]string) (*Order, error)
}

type Client struct {
	http *resty.Client
}

func NewClient(cfg Config) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetBasicAuth(cfg.KeyID, cfg.KeySecret).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &Client{http: client}
}

type createOrderBody struct {
	Amount   int64             `json:"amount"`
	Currency string            `json:"currency"`
	Receipt  string            `json:"receipt"`
	Notes    map[string]string `json:"notes,omitempty"`
}

func (c *Client) CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string, notes map[string]string) (*Order, error) {
	var order Order

	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(createOrderBody{
			Amount:   amountMinor,
			Currency: currency,
			Receipt:  receipt,
			Notes:    notes,
		}).
		SetResult(&order).
		Post("/v1/orders")

	if err != nil {
		return nil, fmt.Errorf("razorpay create order: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("razorpay create order: status %d: %s", resp.StatusCode(), resp.String())
	}

	return &order, nil
}
