package document

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lightning-voucher-service/config"
	"lightning-voucher-service/internal/core/ports"
	"lightning-voucher-service/pkg/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDocumentConfig(url string) config.DocumentConfig {
	return config.DocumentConfig{
		BaseURL: url,
		Timeout: 5 * time.Second,
	}
}

func TestClient_Generate(t *testing.T) {
	var got documentRequest
	pdf := []byte("%PDF-1.7 fake")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/documents", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write(pdf)
	}))
	defer srv.Close()

	c := NewClient(testDocumentConfig(srv.URL), logger.New("error", false))
	id := uuid.New()
	expires := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	doc, err := c.Generate(context.Background(), ports.DocumentRequest{
		VoucherID:       id,
		ShortID:         id.String()[:8],
		AmountSats:      21000,
		DisplayAmount:   decimal.NewFromInt(21000),
		DisplayCurrency: "sats",
		ExpiresAt:       &expires,
		QRPNG:           []byte{0x89, 0x50, 0x4e, 0x47},
	})

	require.NoError(t, err)
	assert.Equal(t, pdf, doc)
	assert.Equal(t, id.String(), got.VoucherID)
	assert.Equal(t, "21000", got.DisplayAmount)
	require.NotNil(t, got.ExpiresAt)
	assert.Equal(t, "2026-03-01 12:00 UTC", *got.ExpiresAt)
	assert.Equal(t, base64.StdEncoding.EncodeToString([]byte{0x89, 0x50, 0x4e, 0x47}), got.QRPNG)
	assert.Empty(t, got.BrandingPNG)
}

func TestClient_Generate_ServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(testDocumentConfig(srv.URL), logger.New("error", false))
	_, err := c.Generate(context.Background(), ports.DocumentRequest{VoucherID: uuid.New()})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClient_MissingBrandingDegrades(t *testing.T) {
	cfg := testDocumentConfig("http://localhost:1")
	cfg.BrandingPath = "/nonexistent/branding.png"

	c := NewClient(cfg, logger.New("error", false))
	assert.Nil(t, c.branding)
}
