package handler

import (
	"context"
	"strconv"
	"time"

	"lightning-voucher-service/internal/adapter/http/dto"
	"lightning-voucher-service/internal/core/ports"
	"lightning-voucher-service/pkg/apperror"
	"lightning-voucher-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// awaitTimeout bounds a single long-poll; clients re-arm on a false
// result.
const awaitTimeout = 30 * time.Second

// StatusHandler serves redemption status to waiting point-of-sale clients.
type StatusHandler struct {
	statusSvc ports.StatusService
}

// NewStatusHandler creates a new StatusHandler.
func NewStatusHandler(statusSvc ports.StatusService) *StatusHandler {
	return &StatusHandler{statusSvc: statusSvc}
}

// GetStatus handles GET /api/v1/vouchers/:id/status.
func (h *StatusHandler) GetStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrVoucherNotFound())
		return
	}

	claimed, err := h.statusSvc.Claimed(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.VoucherStatusResponse{Claimed: claimed})
}

// Await handles GET /api/v1/vouchers/:id/await — a long poll that returns
// as soon as the voucher is claimed, or with claimed=false on timeout. An
// optional timeout query (seconds) shortens the wait, capped at the server
// maximum.
func (h *StatusHandler) Await(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, apperror.ErrVoucherNotFound())
		return
	}

	timeout := awaitTimeout
	if raw := c.Query("timeout"); raw != "" {
		if secs, err := strconv.Atoi(raw); err == nil && secs > 0 && time.Duration(secs)*time.Second < awaitTimeout {
			timeout = time.Duration(secs) * time.Second
		}
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
	defer cancel()

	claimed, err := h.statusSvc.AwaitClaim(ctx, id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.VoucherStatusResponse{Claimed: claimed})
}
