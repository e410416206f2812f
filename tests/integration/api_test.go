package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"lightning-voucher-service/config"
	"lightning-voucher-service/internal/adapter/artifact"
	httpHandler "lightning-voucher-service/internal/adapter/http/handler"
	redisStorage "lightning-voucher-service/internal/adapter/storage/redis"
	"lightning-voucher-service/internal/core/ports"
	"lightning-voucher-service/internal/service"
	"lightning-voucher-service/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds the full application stack on in-memory storage: miniredis
// behind the real Redis stores, in-memory repos behind the real services.
// This exercises the HTTP layer, middleware, handlers, and services
// end-to-end.

type testApp struct {
	server   *httptest.Server
	redis    *miniredis.Miniredis
	vouchers *inMemoryVoucherRepo
	failures *inMemoryPayoutFailureRepo
	backend  *stubBackend
	token    string
}

type stubDocs struct{}

func (stubDocs) Generate(ctx context.Context, req ports.DocumentRequest) ([]byte, error) {
	return []byte("%PDF-1.4 stub"), nil
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	log := logger.New("error", false)
	lnurlCfg := config.LnurlConfig{BaseURL: "https://vouchers.example.com", QRSize: 128}

	voucherRepo := newInMemoryVoucherRepo()
	failureRepo := newInMemoryPayoutFailureRepo()
	backend := &stubBackend{balance: 1_000_000}

	renderer := artifact.NewQRRenderer()
	notifier := redisStorage.NewClaimNotifier(rdb)
	rateLimitStore := redisStorage.NewRateLimitStore(rdb)

	tokenSvc := service.NewJWTTokenService("test-jwt-secret-key-32bytes!!", 24*time.Hour, "test-issuer")
	voucherSvc := service.NewVoucherService(voucherRepo, renderer, lnurlCfg, log)
	redemptionSvc := service.NewRedemptionService(voucherRepo, failureRepo, backend, notifier, lnurlCfg, log)
	listingSvc := service.NewListingService(voucherRepo, log)
	reissueSvc := service.NewReissueService(voucherRepo, renderer, stubDocs{}, lnurlCfg, log)
	statusSvc := service.NewStatusService(voucherRepo, notifier, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		VoucherSvc:     voucherSvc,
		RedemptionSvc:  redemptionSvc,
		ListingSvc:     listingSvc,
		ReissueSvc:     reissueSvc,
		StatusSvc:      statusSvc,
		PayoutFailures: failureRepo,
		Backend:        backend,
		TokenSvc:       tokenSvc,
		RateLimitStore: rateLimitStore,
		Logger:         log,
	})

	server := httptest.NewServer(router)
	t.Cleanup(func() {
		server.Close()
		_ = rdb.Close()
		mr.Close()
	})

	token, _, err := tokenSvc.Generate(uuid.New())
	require.NoError(t, err)

	return &testApp{
		server:   server,
		redis:    mr,
		vouchers: voucherRepo,
		failures: failureRepo,
		backend:  backend,
		token:    token,
	}
}

func (app *testApp) request(t *testing.T, method, path string, body any, authed bool) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, app.server.URL+path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if authed {
		req.Header.Set("Authorization", "Bearer "+app.token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (app *testApp) createVoucher(t *testing.T, amountSats int64) map[string]any {
	t.Helper()
	resp := app.request(t, http.MethodPost, "/api/v1/vouchers", map[string]any{
		"amount_sats":      amountSats,
		"display_amount":   fmt.Sprintf("%d", amountSats),
		"display_currency": "sats",
		"wallet_currency":  "BTC",
	}, true)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return decodeBody(t, resp)["data"].(map[string]any)
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp := app.request(t, http.MethodGet, "/health", nil, false)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthRequired(t *testing.T) {
	app := newTestApp(t)

	resp := app.request(t, http.MethodPost, "/api/v1/vouchers", map[string]any{
		"amount_sats": 1000,
	}, false)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestVoucherLifecycle_LnurlProtocol(t *testing.T) {
	app := newTestApp(t)

	issued := app.createVoucher(t, 21000)
	voucher := issued["voucher"].(map[string]any)
	id := voucher["id"].(string)
	require.NotEmpty(t, issued["lnurl"])
	require.NotEmpty(t, issued["qr_png"])

	// First LNURL step: the wallet fetches withdraw parameters.
	resp := app.request(t, http.MethodGet, "/voucher/lnurl/"+id+"/21000", nil, false)
	params := decodeBody(t, resp)
	assert.Equal(t, "withdrawRequest", params["tag"])
	assert.Equal(t, float64(21000000), params["minWithdrawable"])
	assert.Equal(t, params["minWithdrawable"], params["maxWithdrawable"])
	callback := params["callback"].(string)
	assert.Contains(t, callback, "/voucher/lnurl/"+id+"/21000/cb")

	// Second step: the wallet presents an invoice.
	resp = app.request(t, http.MethodGet, "/voucher/lnurl/"+id+"/21000/cb?pr=lnbc210u1fake", nil, false)
	cb := decodeBody(t, resp)
	assert.Equal(t, "OK", cb["status"])
	assert.Equal(t, 1, app.backend.transferCount())

	// Status now reports claimed.
	resp = app.request(t, http.MethodGet, "/api/v1/vouchers/"+id+"/status", nil, false)
	status := decodeBody(t, resp)["data"].(map[string]any)
	assert.Equal(t, true, status["claimed"])

	// Replaying the callback does not pay twice.
	resp = app.request(t, http.MethodGet, "/voucher/lnurl/"+id+"/21000/cb?pr=lnbc210u1fake", nil, false)
	cb = decodeBody(t, resp)
	assert.Equal(t, "ERROR", cb["status"])
	assert.Equal(t, "voucher already claimed", cb["reason"])
	assert.Equal(t, 1, app.backend.transferCount())
}

func TestLnurlWithdraw_ForgedAmount(t *testing.T) {
	app := newTestApp(t)

	issued := app.createVoucher(t, 21000)
	id := issued["voucher"].(map[string]any)["id"].(string)

	// A tampered amount in the URL must not consume the voucher.
	resp := app.request(t, http.MethodGet, "/voucher/lnurl/"+id+"/99999/cb?pr=lnbc1fake", nil, false)
	cb := decodeBody(t, resp)
	assert.Equal(t, "ERROR", cb["status"])
	assert.Equal(t, 0, app.backend.transferCount())

	// The genuine amount still works afterwards.
	resp = app.request(t, http.MethodGet, "/voucher/lnurl/"+id+"/21000/cb?pr=lnbc1fake", nil, false)
	cb = decodeBody(t, resp)
	assert.Equal(t, "OK", cb["status"])
}

func TestRedeemEndpoint(t *testing.T) {
	app := newTestApp(t)

	issued := app.createVoucher(t, 5000)
	lnurl := issued["lnurl"].(string)

	resp := app.request(t, http.MethodPost, "/api/v1/redeem", map[string]any{
		"lnurl":          lnurl,
		"payment_target": "claimant@wallet.example.com",
	}, false)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := decodeBody(t, resp)["data"].(map[string]any)
	assert.Equal(t, "CLAIMED", data["status"])
	assert.Equal(t, 1, app.backend.transferCount())
}

func TestCancelPreventsRedeem(t *testing.T) {
	app := newTestApp(t)

	issued := app.createVoucher(t, 5000)
	voucher := issued["voucher"].(map[string]any)
	id := voucher["id"].(string)
	lnurl := issued["lnurl"].(string)

	resp := app.request(t, http.MethodPost, "/api/v1/vouchers/"+id+"/cancel", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	resp = app.request(t, http.MethodPost, "/api/v1/redeem", map[string]any{
		"lnurl":          lnurl,
		"payment_target": "claimant@wallet.example.com",
	}, false)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusGone, resp.StatusCode)
	assert.Equal(t, 0, app.backend.transferCount())
}

func TestPayoutFailureRecorded(t *testing.T) {
	app := newTestApp(t)
	app.backend.failWith = errors.New("channel unavailable")

	issued := app.createVoucher(t, 5000)
	lnurl := issued["lnurl"].(string)

	resp := app.request(t, http.MethodPost, "/api/v1/redeem", map[string]any{
		"lnurl":          lnurl,
		"payment_target": "claimant@wallet.example.com",
	}, false)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)

	// The claim was consumed: the voucher stays claimed and the failed
	// payout is on the reconciliation list.
	id := issued["voucher"].(map[string]any)["id"].(string)
	statusResp := app.request(t, http.MethodGet, "/api/v1/vouchers/"+id+"/status", nil, false)
	status := decodeBody(t, statusResp)["data"].(map[string]any)
	assert.Equal(t, true, status["claimed"])

	listResp := app.request(t, http.MethodGet, "/api/v1/payout-failures", nil, true)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	failures := decodeBody(t, listResp)["data"].([]any)
	require.Len(t, failures, 1)
	failure := failures[0].(map[string]any)
	assert.Equal(t, id, failure["voucher_id"])
	assert.Contains(t, failure["reason"], "channel unavailable")
}

func TestListWithStats(t *testing.T) {
	app := newTestApp(t)

	app.createVoucher(t, 1000)
	issued := app.createVoucher(t, 2000)
	id := issued["voucher"].(map[string]any)["id"].(string)

	resp := app.request(t, http.MethodPost, "/api/v1/vouchers/"+id+"/cancel", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	listResp := app.request(t, http.MethodGet, "/api/v1/vouchers?status=active", nil, true)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	data := decodeBody(t, listResp)["data"].(map[string]any)

	items := data["items"].([]any)
	assert.Len(t, items, 1)
	stats := data["stats"].(map[string]any)
	assert.Equal(t, float64(2), stats["total"])
	assert.Equal(t, float64(1), stats["active"])
	assert.Equal(t, float64(1), stats["cancelled"])
}

func TestReissueKeepsOriginalLnurl(t *testing.T) {
	app := newTestApp(t)

	issued := app.createVoucher(t, 7000)
	id := issued["voucher"].(map[string]any)["id"].(string)

	resp := app.request(t, http.MethodPost, "/api/v1/vouchers/"+id+"/reissue", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := decodeBody(t, resp)["data"].(map[string]any)

	assert.Equal(t, issued["lnurl"], data["lnurl"])
	assert.NotEmpty(t, data["qr_png"])
	assert.NotEmpty(t, data["document"])
}

func TestWalletBalanceEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp := app.request(t, http.MethodGet, "/api/v1/wallet/balance", nil, true)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := decodeBody(t, resp)["data"].(map[string]any)
	assert.Equal(t, float64(1_000_000), data["balance_sats"])
}
