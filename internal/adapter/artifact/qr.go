package artifact

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// QRRenderer rasterizes LNURL strings into PNG QR codes. It implements
// ports.ArtifactRenderer.
type QRRenderer struct{}

// NewQRRenderer creates a new QRRenderer.
func NewQRRenderer() *QRRenderer {
	return &QRRenderer{}
}

// RenderPNG encodes content into a size x size PNG. Medium error recovery
// keeps codes scannable on printed vouchers.
func (r *QRRenderer) RenderPNG(content string, size int) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("encode qr: %w", err)
	}
	return png, nil
}
