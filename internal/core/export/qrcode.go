package export

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

const qrPixels = 256

// encodeQR renders content as a PNG QR code
func encodeQR(content string) ([]byte, error) {
	png, err := qrcode.Encode(content, qrcode.Medium, qrPixels)
	if err != nil {
		return nil, fmt.Errorf("failed to encode dashboard QR code: %w", err)
	}
	return png, nil
}
