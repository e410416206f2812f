package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"lightning-voucher-service/config"
	"lightning-voucher-service/internal/core/domain"
	"lightning-voucher-service/internal/core/ports"
	"lightning-voucher-service/pkg/apperror"
	"lightning-voucher-service/pkg/lnurl"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const (
	renderAttempts      = 3
	renderRetryInterval = 200 * time.Millisecond
)

// ReissueServiceImpl implements ports.ReissueService.
type ReissueServiceImpl struct {
	repo     ports.VoucherRepository
	renderer ports.ArtifactRenderer
	docs     ports.DocumentGenerator
	cfg      config.LnurlConfig
	log      zerolog.Logger
	now      func() time.Time
	sleep    func(time.Duration)
}

// NewReissueService creates a new ReissueServiceImpl.
func NewReissueService(
	repo ports.VoucherRepository,
	renderer ports.ArtifactRenderer,
	docs ports.DocumentGenerator,
	cfg config.LnurlConfig,
	log zerolog.Logger,
) *ReissueServiceImpl {
	return &ReissueServiceImpl{
		repo:     repo,
		renderer: renderer,
		docs:     docs,
		cfg:      cfg,
		log:      log,
		now:      time.Now,
		sleep:    time.Sleep,
	}
}

// Reissue regenerates the withdraw artifact and printable document for a
// still-active voucher. It is a pure read plus re-render: the voucher's id,
// amount and LNURL are exactly those of the original issuance, so reissuing
// never mints new value.
func (s *ReissueServiceImpl) Reissue(ctx context.Context, id uuid.UUID) (*ports.ReissuedArtifact, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("get voucher: %w", err))
	}
	if v == nil {
		return nil, apperror.ErrVoucherNotFound()
	}
	if v.EffectiveStatus(s.now().UTC()) != domain.VoucherStatusActive {
		return nil, apperror.ErrNotReissuable()
	}

	encoded, err := lnurl.Encode(lnurl.WithdrawURL(s.cfg.BaseURL, v.ID, v.AmountSats))
	if err != nil {
		return nil, apperror.InternalError(fmt.Errorf("encode lnurl: %w", err))
	}

	qr, err := s.renderWithRetry(encoded)
	if err != nil {
		return nil, apperror.ErrRenderingUnavailable(err)
	}

	artifact := &ports.ReissuedArtifact{
		Voucher: *v,
		Lnurl:   encoded,
		QRPNG:   qr,
	}

	doc, err := s.docs.Generate(ctx, ports.DocumentRequest{
		VoucherID:       v.ID,
		ShortID:         v.ShortID(),
		AmountSats:      v.AmountSats,
		DisplayAmount:   v.DisplayAmount,
		DisplayCurrency: v.DisplayCurrency,
		ExpiresAt:       v.ExpiresAt,
		QRPNG:           qr,
	})
	if err != nil {
		// The QR alone is enough to redeem; the printable document is a
		// nicety.
		s.log.Warn().Err(err).Str("voucher_id", v.ID.String()).Msg("document generation failed, reissuing without document")
	} else {
		artifact.Document = doc
	}

	s.log.Info().Str("voucher_id", v.ID.String()).Msg("voucher artifact reissued")
	return artifact, nil
}

// renderWithRetry retries transient renderer unavailability a few times
// before reporting the artifact as unavailable. Other render errors fail
// immediately.
func (s *ReissueServiceImpl) renderWithRetry(content string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= renderAttempts; attempt++ {
		qr, err := s.renderer.RenderPNG(content, s.cfg.QRSize)
		if err == nil {
			return qr, nil
		}
		lastErr = err
		if !errors.Is(err, ports.ErrRendererNotReady) {
			return nil, err
		}
		if attempt < renderAttempts {
			s.sleep(renderRetryInterval)
		}
	}
	return nil, lastErr
}
