package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"lightning-voucher-service/internal/adapter/http/dto"
	"lightning-voucher-service/internal/core/ports"
	"lightning-voucher-service/pkg/apperror"
	"lightning-voucher-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RedeemHandler handles claimant-facing redemption endpoints: the JSON
// redeem API plus the two LNURL-withdraw protocol endpoints that wallet
// apps speak.
type RedeemHandler struct {
	redemptionSvc ports.RedemptionService
}

// NewRedeemHandler creates a new RedeemHandler.
func NewRedeemHandler(redemptionSvc ports.RedemptionService) *RedeemHandler {
	return &RedeemHandler{redemptionSvc: redemptionSvc}
}

// Redeem handles POST /api/v1/redeem.
func (h *RedeemHandler) Redeem(c *gin.Context) {
	var req dto.RedeemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	v, err := h.redemptionSvc.Redeem(c.Request.Context(), ports.RedeemRequest{
		Lnurl:         req.Lnurl,
		PaymentTarget: req.PaymentTarget,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToVoucherResponse(v, time.Now().UTC()))
}

// LnurlWithdraw handles GET /voucher/lnurl/:id/:sats — the first step of
// the LNURL-withdraw flow. Wallets expect the protocol envelope here, not
// the API error format, and they expect HTTP 200 even for errors.
func (h *RedeemHandler) LnurlWithdraw(c *gin.Context) {
	id, sats, ok := parseWithdrawPath(c)
	if !ok {
		return
	}

	params, err := h.redemptionSvc.WithdrawParams(c.Request.Context(), id, sats)
	if err != nil {
		lnurlError(c, err)
		return
	}
	c.JSON(http.StatusOK, params)
}

// LnurlCallback handles GET /voucher/lnurl/:id/:sats/cb — the second step,
// where the wallet presents its invoice and the claim is consumed.
func (h *RedeemHandler) LnurlCallback(c *gin.Context) {
	id, sats, ok := parseWithdrawPath(c)
	if !ok {
		return
	}

	pr := c.Query("pr")
	if pr == "" {
		c.JSON(http.StatusOK, dto.LnurlError{Status: "ERROR", Reason: "missing invoice"})
		return
	}

	if _, err := h.redemptionSvc.RedeemWithdraw(c.Request.Context(), id, sats, pr); err != nil {
		lnurlError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.LnurlOK{Status: "OK"})
}

func parseWithdrawPath(c *gin.Context) (uuid.UUID, int64, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusOK, dto.LnurlError{Status: "ERROR", Reason: "malformed withdraw link"})
		return uuid.Nil, 0, false
	}
	sats, err := strconv.ParseInt(c.Param("sats"), 10, 64)
	if err != nil || sats <= 0 {
		c.JSON(http.StatusOK, dto.LnurlError{Status: "ERROR", Reason: "malformed withdraw link"})
		return uuid.Nil, 0, false
	}
	return id, sats, true
}

// lnurlError translates an application error into the LNURL protocol
// envelope without leaking internal detail.
func lnurlError(c *gin.Context, err error) {
	reason := "voucher unavailable"
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case apperror.ErrMalformedLnurl().Code:
			reason = "malformed withdraw link"
		case apperror.ErrVoucherNotFound().Code:
			reason = "voucher not found"
		case apperror.ErrAlreadyClaimed().Code:
			reason = "voucher already claimed"
		case apperror.ErrVoucherCancelled().Code:
			reason = "voucher cancelled"
		case apperror.ErrVoucherExpired().Code:
			reason = "voucher expired"
		case apperror.ErrPayoutFailedAfterClaim(nil).Code:
			reason = "payment failed, contact the voucher issuer"
		}
	}
	c.JSON(http.StatusOK, dto.LnurlError{Status: "ERROR", Reason: reason})
}
