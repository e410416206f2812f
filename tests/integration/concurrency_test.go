package integration

import (
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConcurrentRedemptions verifies the at-most-once claim invariant under
// concurrent load: many wallets racing on the same withdraw callback produce
// exactly one payout.
func TestConcurrentRedemptions(t *testing.T) {
	app := newTestApp(t)

	issued := app.createVoucher(t, 21000)
	id := issued["voucher"].(map[string]any)["id"].(string)
	callbackPath := "/voucher/lnurl/" + id + "/21000/cb?pr=lnbc210u1fake"

	concurrency := 50

	var wg sync.WaitGroup
	var okCount atomic.Int64
	var errCount atomic.Int64

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			resp := app.request(t, http.MethodGet, callbackPath, nil, false)
			body := decodeBody(t, resp)
			switch body["status"] {
			case "OK":
				okCount.Add(1)
			case "ERROR":
				errCount.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), okCount.Load(), "exactly one claimant should win")
	assert.Equal(t, int64(concurrency-1), errCount.Load())
	assert.Equal(t, 1, app.backend.transferCount(), "the backend must pay exactly once")
}

// TestConcurrentRedeemViaAPI races the issuer-facing redeem endpoint the
// same way: one winner, the rest get a conflict.
func TestConcurrentRedeemViaAPI(t *testing.T) {
	app := newTestApp(t)

	issued := app.createVoucher(t, 5000)
	lnurl := issued["lnurl"].(string)

	concurrency := 20

	var wg sync.WaitGroup
	var okCount atomic.Int64

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			resp := app.request(t, http.MethodPost, "/api/v1/redeem", map[string]any{
				"lnurl":          lnurl,
				"payment_target": "claimant@wallet.example.com",
			}, false)
			defer resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				okCount.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int64(1), okCount.Load())
	assert.Equal(t, 1, app.backend.transferCount())
}

// TestConcurrentCancelAndRedeem races a cancel against a redemption. Either
// order is valid, but they must never both succeed: a cancelled voucher is
// never paid and a paid voucher is never cancelled.
func TestConcurrentCancelAndRedeem(t *testing.T) {
	app := newTestApp(t)

	for i := 0; i < 10; i++ {
		issued := app.createVoucher(t, 1000)
		id := issued["voucher"].(map[string]any)["id"].(string)
		lnurl := issued["lnurl"].(string)

		before := app.backend.transferCount()

		var wg sync.WaitGroup
		var cancelOK, redeemOK atomic.Bool

		wg.Add(2)
		go func() {
			defer wg.Done()
			resp := app.request(t, http.MethodPost, "/api/v1/vouchers/"+id+"/cancel", nil, true)
			defer resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				cancelOK.Store(true)
			}
		}()
		go func() {
			defer wg.Done()
			resp := app.request(t, http.MethodPost, "/api/v1/redeem", map[string]any{
				"lnurl":          lnurl,
				"payment_target": "claimant@wallet.example.com",
			}, false)
			defer resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				redeemOK.Store(true)
			}
		}()
		wg.Wait()

		require.True(t, cancelOK.Load() != redeemOK.Load(),
			"exactly one of cancel/redeem must win (iteration %d)", i)
		paid := app.backend.transferCount() - before
		if redeemOK.Load() {
			assert.Equal(t, 1, paid)
		} else {
			assert.Equal(t, 0, paid)
		}
	}
}

// TestAwaitClaimUnblocksOnRedeem verifies the long-poll status endpoint
// reports the claim promptly once a concurrent redemption lands.
func TestAwaitClaimUnblocksOnRedeem(t *testing.T) {
	app := newTestApp(t)

	issued := app.createVoucher(t, 3000)
	id := issued["voucher"].(map[string]any)["id"].(string)
	lnurl := issued["lnurl"].(string)

	type awaitResult struct {
		claimed bool
		status  int
	}
	done := make(chan awaitResult, 1)

	go func() {
		resp := app.request(t, http.MethodGet, "/api/v1/vouchers/"+id+"/await", nil, false)
		data := decodeBody(t, resp)["data"].(map[string]any)
		done <- awaitResult{claimed: data["claimed"].(bool), status: resp.StatusCode}
	}()

	// Give the long poll a moment to subscribe before redeeming.
	time.Sleep(100 * time.Millisecond)

	resp := app.request(t, http.MethodPost, "/api/v1/redeem", map[string]any{
		"lnurl":          lnurl,
		"payment_target": "claimant@wallet.example.com",
	}, false)
	resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	select {
	case res := <-done:
		assert.Equal(t, http.StatusOK, res.status)
		assert.True(t, res.claimed)
	case <-time.After(10 * time.Second):
		t.Fatal("await did not unblock after the voucher was claimed")
	}
}

// TestConcurrentReissues verifies reissuing is a pure read: parallel
// reissues all succeed and all return the original withdraw link.
func TestConcurrentReissues(t *testing.T) {
	app := newTestApp(t)

	issued := app.createVoucher(t, 9000)
	id := issued["voucher"].(map[string]any)["id"].(string)
	original := issued["lnurl"].(string)

	concurrency := 10

	var wg sync.WaitGroup
	results := make(chan string, concurrency)

	for i := 0; i < concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			resp := app.request(t, http.MethodPost, "/api/v1/vouchers/"+id+"/reissue", nil, true)
			if resp.StatusCode != http.StatusOK {
				resp.Body.Close()
				return
			}
			data := decodeBody(t, resp)["data"].(map[string]any)
			results <- data["lnurl"].(string)
		}()
	}
	wg.Wait()
	close(results)

	count := 0
	for lnurl := range results {
		assert.Equal(t, original, lnurl)
		count++
	}
	assert.Equal(t, concurrency, count)
}
