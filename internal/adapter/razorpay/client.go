package razorpay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/greencart/storefront/internal/domain/model"
)

// ErrSessionNotFound indicates the gateway doesn't know the order id.
var ErrSessionNotFound = errors.New("gateway session not found")

// Client exposes the payment gateway operations used by the storefront.
type Client interface {
	CreateSession(ctx context.Context, amount int64, currency, receipt string) (*model.GatewaySession, error)
	FetchSession(ctx context.Context, sessionID string) (*model.GatewaySession, error)
	SessionPayments(ctx context.Context, sessionID string) ([]model.GatewayPayment, error)
	VerifySignature(sessionID, paymentID, signature string) bool
	KeyID() string
}

// HTTPClient implements Client against the Razorpay Orders API.
type HTTPClient struct {
	baseURL    *url.URL
	keyID      string
	keySecret  string
	httpClient *http.Client
	logger     *slog.Logger
}

type sessionResponse struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

type paymentsResponse struct {
	Count int `json:"count"`
	Items []struct {
		ID     string `json:"id"`
		Status string `json:"status"`
		Amount int64  `json:"amount"`
	} `json:"items"`
}

type errorResponse struct {
	Error struct {
		Code        string `json:"code"`
		Description string `json:"description"`
	} `json:"error"`
}

// NewHTTPClient creates a gateway client with default timeout.
func NewHTTPClient(baseURL, keyID, keySecret string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse gateway url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("gateway url must be absolute")
	}
	return &HTTPClient{
		baseURL:   parsed,
		keyID:     keyID,
		keySecret: keySecret,
		logger:    logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// KeyID returns the public half of the gateway credentials for the
// client-side checkout widget.
func (c *HTTPClient) KeyID() string {
	return c.keyID
}

// CreateSession opens a gateway order for the given amount in the
// currency's smallest unit.
func (c *HTTPClient) CreateSession(ctx context.Context, amount int64, currency, receipt string) (*model.GatewaySession, error) {
	payload := map[string]any{
		"amount":   amount,
		"currency": currency,
		"receipt":  receipt,
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	var data sessionResponse
	if err := c.do(ctx, http.MethodPost, "/v1/orders", bytes.NewReader(body), &data); err != nil {
		return nil, err
	}
	return toSession(data), nil
}

// FetchSession queries the gateway for the current session state.
func (c *HTTPClient) FetchSession(ctx context.Context, sessionID string) (*model.GatewaySession, error) {
	var data sessionResponse
	if err := c.do(ctx, http.MethodGet, path.Join("/v1/orders", sessionID), nil, &data); err != nil {
		return nil, err
	}
	return toSession(data), nil
}

// SessionPayments lists payment attempts recorded against a session.
func (c *HTTPClient) SessionPayments(ctx context.Context, sessionID string) ([]model.GatewayPayment, error) {
	var data paymentsResponse
	if err := c.do(ctx, http.MethodGet, path.Join("/v1/orders", sessionID, "payments"), nil, &data); err != nil {
		return nil, err
	}
	payments := make([]model.GatewayPayment, 0, len(data.Items))
	for _, item := range data.Items {
		payments = append(payments, model.GatewayPayment{ID: item.ID, Status: item.Status, Amount: item.Amount})
	}
	return payments, nil
}

func (c *HTTPClient) do(ctx context.Context, method, endpointPath string, body io.Reader, out any) error {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, endpointPath)

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), body)
	if err != nil {
		return err
	}
	req.SetBasicAuth(c.keyID, c.keySecret)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return json.Unmarshal(raw, out)
	case resp.StatusCode == http.StatusNotFound:
		return ErrSessionNotFound
	default:
		var gatewayErr errorResponse
		if err := json.Unmarshal(raw, &gatewayErr); err == nil && gatewayErr.Error.Description != "" {
			c.logger.Error("gateway request failed",
				slog.Int("status", resp.StatusCode),
				slog.String("code", gatewayErr.Error.Code),
				slog.String("description", gatewayErr.Error.Description),
			)
			return fmt.Errorf("gateway error: %s", gatewayErr.Error.Description)
		}
		c.logger.Error("gateway request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(raw)))
		return fmt.Errorf("gateway error: %s", resp.Status)
	}
}

func toSession(data sessionResponse) *model.GatewaySession {
	return &model.GatewaySession{
		ID:       data.ID,
		Amount:   data.Amount,
		Currency: data.Currency,
		Receipt:  data.Receipt,
		Status:   model.GatewaySessionStatus(data.Status),
	}
}
