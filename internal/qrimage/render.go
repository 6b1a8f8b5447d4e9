// Package qrimage wraps the QR code renderer with the service's fixed
// visual configuration: 512px output, quiet-zone border, opaque black
// modules on white.
package qrimage

import (
	"context"
	"encoding/base64"
	"fmt"
	"image/color"

	"github.com/skip2/go-qrcode"
)

// PNGSize is the fixed pixel width and height of every rendered image.
const PNGSize = 512

// PNG renders content as a QR bitmap. The context is checked before
// the result is returned so a caller that has gone away never receives
// a late image.
func PNG(ctx context.Context, content string) ([]byte, error) {
	if content == "" {
		return nil, fmt.Errorf("empty QR content")
	}

	qr, err := qrcode.New(content, qrcode.Medium)
	if err != nil {
		return nil, fmt.Errorf("failed to generate QR code: %v", err)
	}
	qr.DisableBorder = false
	qr.ForegroundColor = color.Black
	qr.BackgroundColor = color.White

	png, err := qr.PNG(PNGSize)
	if err != nil {
		return nil, fmt.Errorf("failed to generate PNG: %v", err)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return png, nil
}

// DataURI renders content and wraps the PNG as an embeddable data URI.
func DataURI(ctx context.Context, content string) (string, error) {
	png, err := PNG(ctx, content)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}
