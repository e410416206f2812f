// Package lnurl implements the bech32 envelope used by LNURL-withdraw and
// the deterministic construction of voucher withdraw-request URLs.
package lnurl

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/google/uuid"
)

// ErrMalformedLnurl is returned when a string is not a valid LNURL:
// wrong human-readable prefix, failed checksum, or an over-long payload.
var ErrMalformedLnurl = errors.New("malformed lnurl")

const (
	// hrp is the human-readable prefix mandated by the LNURL spec.
	hrp = "lnurl"

	// maxLength raises bech32's usual 90-character ceiling. Withdraw URLs
	// carry a voucher id and amount, which do not fit in 90 characters.
	maxLength = 2000
)

// Encode wraps a plain URL into its bech32 LNURL form. The result is
// upper-cased so QR encoders can use the denser alphanumeric mode.
func Encode(url string) (string, error) {
	converted, err := bech32.ConvertBits([]byte(url), 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("converting url to 5-bit groups: %w", err)
	}
	encoded, err := bech32.Encode(hrp, converted)
	if err != nil {
		return "", fmt.Errorf("bech32 encoding: %w", err)
	}
	return strings.ToUpper(encoded), nil
}

// Decode is the inverse of Encode. It accepts either case but not mixed
// case, validates the checksum and prefix, and recovers the original URL.
func Decode(lnurl string) (string, error) {
	lnurl = strings.TrimSpace(lnurl)
	if len(lnurl) > maxLength {
		return "", ErrMalformedLnurl
	}
	prefix, data, err := bech32.DecodeNoLimit(strings.ToLower(lnurl))
	if err != nil {
		return "", ErrMalformedLnurl
	}
	if prefix != hrp {
		return "", ErrMalformedLnurl
	}
	converted, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return "", ErrMalformedLnurl
	}
	return string(converted), nil
}

// WithdrawURL builds the withdraw-request URL for a voucher. The amount is
// embedded in the URL so a claimant wallet can display it before contacting
// the server.
func WithdrawURL(base string, voucherID uuid.UUID, amountSats int64) string {
	return fmt.Sprintf("%s/voucher/lnurl/%s/%d", strings.TrimRight(base, "/"), voucherID, amountSats)
}

// ParseWithdrawURL extracts the voucher id and amount from a withdraw-request
// URL previously produced by WithdrawURL.
func ParseWithdrawURL(rawURL string) (uuid.UUID, int64, error) {
	idx := strings.Index(rawURL, "/voucher/lnurl/")
	if idx < 0 {
		return uuid.Nil, 0, ErrMalformedLnurl
	}
	rest := rawURL[idx+len("/voucher/lnurl/"):]
	parts := strings.Split(rest, "/")
	if len(parts) != 2 {
		return uuid.Nil, 0, ErrMalformedLnurl
	}

	id, err := uuid.Parse(parts[0])
	if err != nil {
		return uuid.Nil, 0, ErrMalformedLnurl
	}
	amount, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || amount <= 0 {
		return uuid.Nil, 0, ErrMalformedLnurl
	}
	return id, amount, nil
}
