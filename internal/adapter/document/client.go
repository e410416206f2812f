package document

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"lightning-voucher-service/config"
	"lightning-voucher-service/internal/core/ports"

	"github.com/rs/zerolog"
)

// HTTPClient interface for testability.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client talks to the external document service that renders printable
// voucher documents. It implements ports.DocumentGenerator.
type Client struct {
	baseURL    string
	httpClient HTTPClient
	branding   []byte
	log        zerolog.Logger
}

// NewClient creates a document service client. A configured branding image
// that cannot be read is logged and skipped; documents are still produced
// without it.
func NewClient(cfg config.DocumentConfig, log zerolog.Logger) *Client {
	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        log,
	}
	if cfg.BrandingPath != "" {
		branding, err := os.ReadFile(cfg.BrandingPath)
		if err != nil {
			log.Warn().Err(err).Str("path", cfg.BrandingPath).Msg("branding image unavailable, documents will omit it")
		} else {
			c.branding = branding
		}
	}
	return c
}

// NewClientWithHTTP creates a client with a caller-supplied HTTP client.
func NewClientWithHTTP(cfg config.DocumentConfig, httpClient HTTPClient, log zerolog.Logger) *Client {
	c := NewClient(cfg, log)
	c.httpClient = httpClient
	return c
}

type documentRequest struct {
	VoucherID       string  `json:"voucher_id"`
	ShortID         string  `json:"short_id"`
	AmountSats      int64   `json:"amount_sats"`
	DisplayAmount   string  `json:"display_amount"`
	DisplayCurrency string  `json:"display_currency"`
	ExpiresAt       *string `json:"expires_at,omitempty"`
	QRPNG           string  `json:"qr_png"`
	BrandingPNG     string  `json:"branding_png,omitempty"`
}

// Generate submits a render request and returns the binary document.
func (c *Client) Generate(ctx context.Context, req ports.DocumentRequest) ([]byte, error) {
	payload := documentRequest{
		VoucherID:       req.VoucherID.String(),
		ShortID:         req.ShortID,
		AmountSats:      req.AmountSats,
		DisplayAmount:   req.DisplayAmount.String(),
		DisplayCurrency: req.DisplayCurrency,
		QRPNG:           base64.StdEncoding.EncodeToString(req.QRPNG),
	}
	if req.ExpiresAt != nil {
		s := req.ExpiresAt.UTC().Format("2006-01-02 15:04 MST")
		payload.ExpiresAt = &s
	}
	branding := req.BrandingPNG
	if branding == nil {
		branding = c.branding
	}
	if branding != nil {
		payload.BrandingPNG = base64.StdEncoding.EncodeToString(branding)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal document request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/documents", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build document request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("document service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("document service: status %d", resp.StatusCode)
	}

	doc, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read document response: %w", err)
	}
	return doc, nil
}
