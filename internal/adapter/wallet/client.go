package wallet

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"lightning-voucher-service/config"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the external wallet backend that holds the issuing
// wallet's funds. It implements ports.PaymentBackend.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient HTTPClient
	log        zerolog.Logger
}

// NewClient creates a wallet backend client from configuration.
func NewClient(cfg config.WalletConfig, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
}

// NewClientWithHTTP creates a client with a caller-supplied HTTP client.
func NewClientWithHTTP(cfg config.WalletConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
		log:        log,
	}
}

type transferRequest struct {
	AmountSats  int64  `json:"amount_sats"`
	Destination string `json:"destination"`
}

type balanceResponse struct {
	BalanceSats int64 `json:"balance_sats"`
}

type errorResponse struct {
	Message string `json:"message"`
}

// Transfer asks the wallet backend to pay amountSats to destination.
// A non-2xx response is returned as an error carrying the backend's
// message so it can be persisted with the payout failure.
func (c *Client) Transfer(ctx context.Context, amountSats int64, destination string) error {
	body, err := json.Marshal(transferRequest{AmountSats: amountSats, Destination: destination})
	if err != nil {
		return fmt.Errorf("marshal transfer request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/transfer", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build transfer request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("wallet backend transfer: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("wallet backend transfer: %s", c.readError(resp))
	}

	c.log.Info().
		Int64("amount_sats", amountSats).
		Msg("wallet backend transfer completed")
	return nil
}

// WalletBalance reports the issuing wallet's spendable balance in sats.
func (c *Client) WalletBalance(ctx context.Context) (int64, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/balance", nil)
	if err != nil {
		return 0, fmt.Errorf("build balance request: %w", err)
	}
	req.Header.Set("X-API-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("wallet backend balance: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("wallet backend balance: %s", c.readError(resp))
	}

	var out balanceResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return 0, fmt.Errorf("decode balance response: %w", err)
	}
	return out.BalanceSats, nil
}

func (c *Client) readError(resp *http.Response) string {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	var out errorResponse
	if err := json.Unmarshal(raw, &out); err == nil && out.Message != "" {
		return fmt.Sprintf("status %d: %s", resp.StatusCode, out.Message)
	}
	return fmt.Sprintf("status %d", resp.StatusCode)
}
