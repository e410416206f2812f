package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"lightning-voucher-service/internal/core/domain"
	"lightning-voucher-service/internal/core/ports"
	"lightning-voucher-service/internal/core/ports/mocks"
	"lightning-voucher-service/pkg/apperror"
	"lightning-voucher-service/pkg/lnurl"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type reissueTestDeps struct {
	svc      *ReissueServiceImpl
	repo     *mocks.MockVoucherRepository
	renderer *mocks.MockArtifactRenderer
	docs     *mocks.MockDocumentGenerator
	ctrl     *gomock.Controller
	sleeps   []time.Duration
}

func setupReissueService(t *testing.T) *reissueTestDeps {
	ctrl := gomock.NewController(t)
	d := &reissueTestDeps{
		repo:     mocks.NewMockVoucherRepository(ctrl),
		renderer: mocks.NewMockArtifactRenderer(ctrl),
		docs:     mocks.NewMockDocumentGenerator(ctrl),
		ctrl:     ctrl,
	}
	d.svc = NewReissueService(d.repo, d.renderer, d.docs, testLnurlConfig, zerolog.Nop())
	d.svc.sleep = func(dur time.Duration) { d.sleeps = append(d.sleeps, dur) }
	return d
}

func activeTestVoucher() *domain.Voucher {
	expires := time.Now().UTC().Add(48 * time.Hour)
	return &domain.Voucher{
		ID:              uuid.New(),
		AmountSats:      21000,
		DisplayAmount:   decimal.NewFromInt(21000),
		DisplayCurrency: "sats",
		WalletCurrency:  domain.WalletCurrencyBTC,
		Status:          domain.VoucherStatusActive,
		CreatedAt:       time.Now().UTC().Add(-time.Hour),
		ExpiresAt:       &expires,
	}
}

func TestReissueService_Reissue_Success(t *testing.T) {
	d := setupReissueService(t)
	defer d.ctrl.Finish()

	v := activeTestVoucher()
	qr := []byte{0x89, 0x50}
	pdf := []byte("%PDF")

	d.repo.EXPECT().GetByID(gomock.Any(), v.ID).Return(v, nil)
	d.renderer.EXPECT().RenderPNG(gomock.Any(), testLnurlConfig.QRSize).Return(qr, nil)
	d.docs.EXPECT().Generate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req ports.DocumentRequest) ([]byte, error) {
			assert.Equal(t, v.ID, req.VoucherID)
			assert.Equal(t, qr, req.QRPNG)
			return pdf, nil
		})

	artifact, err := d.svc.Reissue(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Equal(t, qr, artifact.QRPNG)
	assert.Equal(t, pdf, artifact.Document)

	// The reissued artifact must carry the original withdraw URL, not a
	// fresh one.
	decoded, err := lnurl.Decode(artifact.Lnurl)
	require.NoError(t, err)
	id, sats, err := lnurl.ParseWithdrawURL(decoded)
	require.NoError(t, err)
	assert.Equal(t, v.ID, id)
	assert.Equal(t, v.AmountSats, sats)
}

func TestReissueService_Reissue_NotActive(t *testing.T) {
	now := time.Now().UTC()
	past := now.Add(-time.Hour)

	cases := []struct {
		name   string
		stored *domain.Voucher
		want   *apperror.AppError
	}{
		{"not found", nil, apperror.ErrVoucherNotFound()},
		{"claimed", &domain.Voucher{Status: domain.VoucherStatusClaimed, ClaimedAt: &past}, apperror.ErrNotReissuable()},
		{"cancelled", &domain.Voucher{Status: domain.VoucherStatusCancelled, CancelledAt: &past}, apperror.ErrNotReissuable()},
		{"expired", &domain.Voucher{Status: domain.VoucherStatusActive, ExpiresAt: &past}, apperror.ErrNotReissuable()},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			d := setupReissueService(t)
			defer d.ctrl.Finish()

			id := uuid.New()
			d.repo.EXPECT().GetByID(gomock.Any(), id).Return(tc.stored, nil)

			_, err := d.svc.Reissue(context.Background(), id)
			assertAppErrorCode(t, err, tc.want)
		})
	}
}

func TestReissueService_Reissue_RendererRetriesThenSucceeds(t *testing.T) {
	d := setupReissueService(t)
	defer d.ctrl.Finish()

	v := activeTestVoucher()
	qr := []byte{1, 2, 3}

	d.repo.EXPECT().GetByID(gomock.Any(), v.ID).Return(v, nil)
	gomock.InOrder(
		d.renderer.EXPECT().RenderPNG(gomock.Any(), gomock.Any()).Return(nil, ports.ErrRendererNotReady),
		d.renderer.EXPECT().RenderPNG(gomock.Any(), gomock.Any()).Return(nil, ports.ErrRendererNotReady),
		d.renderer.EXPECT().RenderPNG(gomock.Any(), gomock.Any()).Return(qr, nil),
	)
	d.docs.EXPECT().Generate(gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil)

	artifact, err := d.svc.Reissue(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Equal(t, qr, artifact.QRPNG)
	assert.Len(t, d.sleeps, 2)
}

func TestReissueService_Reissue_RendererExhaustsRetries(t *testing.T) {
	d := setupReissueService(t)
	defer d.ctrl.Finish()

	v := activeTestVoucher()
	d.repo.EXPECT().GetByID(gomock.Any(), v.ID).Return(v, nil)
	d.renderer.EXPECT().RenderPNG(gomock.Any(), gomock.Any()).
		Return(nil, ports.ErrRendererNotReady).Times(renderAttempts)

	_, err := d.svc.Reissue(context.Background(), v.ID)
	assertAppErrorCode(t, err, apperror.ErrRenderingUnavailable(nil))
	assert.Len(t, d.sleeps, renderAttempts-1)
}

func TestReissueService_Reissue_NonTransientRenderErrorFailsFast(t *testing.T) {
	d := setupReissueService(t)
	defer d.ctrl.Finish()

	v := activeTestVoucher()
	d.repo.EXPECT().GetByID(gomock.Any(), v.ID).Return(v, nil)
	d.renderer.EXPECT().RenderPNG(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("content too large"))

	_, err := d.svc.Reissue(context.Background(), v.ID)
	assertAppErrorCode(t, err, apperror.ErrRenderingUnavailable(nil))
	assert.Empty(t, d.sleeps)
}

func TestReissueService_Reissue_DocumentFailureDegrades(t *testing.T) {
	d := setupReissueService(t)
	defer d.ctrl.Finish()

	v := activeTestVoucher()
	d.repo.EXPECT().GetByID(gomock.Any(), v.ID).Return(v, nil)
	d.renderer.EXPECT().RenderPNG(gomock.Any(), gomock.Any()).Return([]byte{1}, nil)
	d.docs.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(nil, errors.New("document service down"))

	artifact, err := d.svc.Reissue(context.Background(), v.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, artifact.QRPNG)
	assert.Nil(t, artifact.Document)
}
