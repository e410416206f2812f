package lnurl

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_IsUppercaseWithPrefix(t *testing.T) {
	encoded, err := Encode("https://pay.example.com/voucher/lnurl/9b9a2a06-4f0f-4c95-b2f7-83f9e01b2a6e/1000")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(encoded, "LNURL1"))
	assert.Equal(t, strings.ToUpper(encoded), encoded)
}

func TestRoundTrip(t *testing.T) {
	urls := []string{
		"https://pay.example.com/voucher/lnurl/9b9a2a06-4f0f-4c95-b2f7-83f9e01b2a6e/1000",
		"https://pay.example.com/voucher/lnurl/00000000-0000-0000-0000-000000000001/1",
		"https://voucher.shop.example.com:8443/voucher/lnurl/e2b0a0c1-7c4e-4a1b-9a3e-1f2d3c4b5a69/21000000",
		"https://x.y/a?b=c&d=e",
	}

	for _, u := range urls {
		encoded, err := Encode(u)
		require.NoError(t, err, u)

		decoded, err := Decode(encoded)
		require.NoError(t, err, u)
		assert.Equal(t, u, decoded)
	}
}

func TestRoundTrip_LongURL(t *testing.T) {
	// Well past bech32's default 90-character ceiling.
	u := "https://pay.example.com/voucher/lnurl/9b9a2a06-4f0f-4c95-b2f7-83f9e01b2a6e/1000?" + strings.Repeat("x=y&", 50)
	encoded, err := Encode(u)
	require.NoError(t, err)
	require.Greater(t, len(encoded), 90)

	decoded, err := Decode(encoded)
	require.NoError(t, err)
	assert.Equal(t, u, decoded)
}

func TestDecode_AcceptsLowercase(t *testing.T) {
	u := "https://pay.example.com/voucher/lnurl/9b9a2a06-4f0f-4c95-b2f7-83f9e01b2a6e/1000"
	encoded, err := Encode(u)
	require.NoError(t, err)

	decoded, err := Decode(strings.ToLower(encoded))
	require.NoError(t, err)
	assert.Equal(t, u, decoded)
}

func TestDecode_Malformed(t *testing.T) {
	cases := map[string]string{
		"empty":           "",
		"garbage":         "not an lnurl at all",
		"wrong prefix":    "LNBC1QQQSYQCYQ5RQWZQFQQQSYQCYQ5RQWZQFQQQSYQCYQ5RQWZQFQYPG3",
		"bad checksum":    "LNURL1DP68GURN8GHJ7UM9WFMXJCM99E3K7MF0V9CXJ0M385EKVCENXC6R2C35XVUKXEFCV5MKVV34X5EKZD3EV56NYD3HXQURZEPEXEJXXEPNXSCRVWFNV9NXZCN9XQ6XYEFHVGCXXCMYXYMNSERXFQ5FNS0",
		"over max length": "LNURL1" + strings.Repeat("Q", 2100),
	}

	for name, in := range cases {
		_, err := Decode(in)
		assert.ErrorIs(t, err, ErrMalformedLnurl, name)
	}
}

func TestWithdrawURL_RoundTrip(t *testing.T) {
	id := uuid.New()
	u := WithdrawURL("https://pay.example.com/", id, 21000)
	assert.Equal(t, fmt.Sprintf("https://pay.example.com/voucher/lnurl/%s/21000", id), u)

	gotID, gotAmount, err := ParseWithdrawURL(u)
	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.Equal(t, int64(21000), gotAmount)
}

func TestParseWithdrawURL_Invalid(t *testing.T) {
	cases := []string{
		"https://pay.example.com/other/path",
		"https://pay.example.com/voucher/lnurl/not-a-uuid/1000",
		fmt.Sprintf("https://pay.example.com/voucher/lnurl/%s/zero", uuid.New()),
		fmt.Sprintf("https://pay.example.com/voucher/lnurl/%s/-5", uuid.New()),
		fmt.Sprintf("https://pay.example.com/voucher/lnurl/%s", uuid.New()),
	}

	for _, in := range cases {
		_, _, err := ParseWithdrawURL(in)
		assert.ErrorIs(t, err, ErrMalformedLnurl, in)
	}
}
