package handler

import (
	"encoding/base64"
	"time"

	"lightning-voucher-service/internal/adapter/http/dto"
	"lightning-voucher-service/internal/core/domain"
	"lightning-voucher-service/internal/core/ports"
	"lightning-voucher-service/pkg/apperror"
	"lightning-voucher-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VoucherHandler handles issuer-facing voucher endpoints.
type VoucherHandler struct {
	voucherSvc ports.VoucherService
	listingSvc ports.ListingService
	reissueSvc ports.ReissueService
	failures   ports.PayoutFailureRepository
	backend    ports.PaymentBackend
}

// NewVoucherHandler creates a new VoucherHandler.
func NewVoucherHandler(
	voucherSvc ports.VoucherService,
	listingSvc ports.ListingService,
	reissueSvc ports.ReissueService,
	failures ports.PayoutFailureRepository,
	backend ports.PaymentBackend,
) *VoucherHandler {
	return &VoucherHandler{
		voucherSvc: voucherSvc,
		listingSvc: listingSvc,
		reissueSvc: reissueSvc,
		failures:   failures,
		backend:    backend,
	}
}

// Create handles POST /api/v1/vouchers.
func (h *VoucherHandler) Create(c *gin.Context) {
	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	dto.SanitizeStruct(&req)

	issued, err := h.voucherSvc.Create(c.Request.Context(), ports.CreateVoucherRequest{
		AmountSats:        req.AmountSats,
		DisplayAmount:     req.DisplayAmount,
		DisplayCurrency:   req.DisplayCurrency,
		WalletCurrency:    domain.WalletCurrency(req.WalletCurrency),
		UsdAmountCents:    req.UsdAmountCents,
		CommissionPercent: req.CommissionPercent,
		ExpiresAt:         req.ExpiresAt,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.IssuedVoucherResponse{
		Voucher:     dto.ToVoucherResponse(&issued.Voucher, time.Now().UTC()),
		WithdrawURL: issued.WithdrawURL,
		Lnurl:       issued.Lnurl,
	}
	if issued.QRPNG != nil {
		resp.QRPNGBase64 = base64.StdEncoding.EncodeToString(issued.QRPNG)
	}
	response.Created(c, resp)
}

// List handles GET /api/v1/vouchers.
func (h *VoucherHandler) List(c *gin.Context) {
	listing, err := h.listingSvc.List(c.Request.Context(), ports.VoucherListFilter{
		Currency: c.Query("currency"),
		Status:   c.Query("status"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	now := time.Now().UTC()
	resp := dto.VoucherListResponse{
		Items: make([]dto.VoucherResponse, 0, len(listing.Vouchers)),
		Stats: listing.Stats,
	}
	for i := range listing.Vouchers {
		resp.Items = append(resp.Items, dto.ToVoucherResponse(&listing.Vouchers[i], now))
	}
	response.OK(c, resp)
}

// Get handles GET /api/v1/vouchers/:id.
func (h *VoucherHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrVoucherNotFound())
		return
	}

	v, err := h.voucherSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToVoucherResponse(v, time.Now().UTC()))
}

// Cancel handles POST /api/v1/vouchers/:id/cancel.
func (h *VoucherHandler) Cancel(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrVoucherNotFound())
		return
	}

	v, err := h.voucherSvc.Cancel(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.ToVoucherResponse(v, time.Now().UTC()))
}

// Reissue handles POST /api/v1/vouchers/:id/reissue.
func (h *VoucherHandler) Reissue(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrVoucherNotFound())
		return
	}

	artifact, err := h.reissueSvc.Reissue(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := dto.ReissuedVoucherResponse{
		Voucher:     dto.ToVoucherResponse(&artifact.Voucher, time.Now().UTC()),
		Lnurl:       artifact.Lnurl,
		QRPNGBase64: base64.StdEncoding.EncodeToString(artifact.QRPNG),
	}
	if artifact.Document != nil {
		resp.DocumentBase64 = base64.StdEncoding.EncodeToString(artifact.Document)
	}
	response.OK(c, resp)
}

// ListPayoutFailures handles GET /api/v1/payout-failures.
func (h *VoucherHandler) ListPayoutFailures(c *gin.Context) {
	failures, err := h.failures.List(c.Request.Context())
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}

	items := make([]dto.PayoutFailureResponse, 0, len(failures))
	for i := range failures {
		items = append(items, dto.ToPayoutFailureResponse(&failures[i]))
	}
	response.OK(c, items)
}

// GetWalletBalance handles GET /api/v1/wallet/balance.
func (h *VoucherHandler) GetWalletBalance(c *gin.Context) {
	balance, err := h.backend.WalletBalance(c.Request.Context())
	if err != nil {
		response.Error(c, apperror.InternalError(err))
		return
	}
	response.OK(c, dto.WalletBalanceResponse{BalanceSats: balance})
}
