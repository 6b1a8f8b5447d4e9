package preview

import (
	"context"
	"errors"

	"contactqr/internal/app"
	"contactqr/internal/qrimage"
	"contactqr/internal/token"
)

// InvalidPayloadMessage is the fixed user-facing message for a missing
// or undecodable token.
const InvalidPayloadMessage = "Invalid or missing QR payload."

// ErrInvalidPayload signals that the p parameter was absent or did not
// decode to a payload.
var ErrInvalidPayload = errors.New("invalid or missing QR payload")

// Service resolves encoded tokens back into rendered QR images
type Service struct {
	app *app.App
}

// NewService creates a new preview service
func NewService(app *app.App) *Service {
	return &Service{app: app}
}

// View holds the decoded payload and its rendered image.
type View struct {
	Payload string
	QRCode  string
}

// Resolve decodes tok and renders the payload as a data URI.
func (s *Service) Resolve(ctx context.Context, tok string) (*View, error) {
	text := token.Decode(tok)
	if text == "" {
		return nil, ErrInvalidPayload
	}

	uri, err := qrimage.DataURI(ctx, text)
	if err != nil {
		return nil, err
	}

	return &View{Payload: text, QRCode: uri}, nil
}

// ResolvePNG decodes tok and renders the payload as raw PNG bytes for
// the download endpoint.
func (s *Service) ResolvePNG(ctx context.Context, tok string) ([]byte, error) {
	text := token.Decode(tok)
	if text == "" {
		return nil, ErrInvalidPayload
	}
	return qrimage.PNG(ctx, text)
}
