package generate

import (
	"context"

	"contactqr/internal/app"
	"contactqr/internal/config"
	"contactqr/internal/payload"
	"contactqr/internal/qrimage"
	"contactqr/internal/token"
)

// Service handles payload generation and rendering
type Service struct {
	app *app.App
	cfg *config.Config
}

// NewService creates a new generate service
func NewService(app *app.App, cfg *config.Config) *Service {
	return &Service{
		app: app,
		cfg: cfg,
	}
}

// Result ties the rendered image to the exact payload string behind
// the share link. The share URL is always derived from the same
// payload that was rendered, never recomputed from the form.
type Result struct {
	Payload  string
	QRCode   string
	ShareURL string
}

// Generate serializes the record, renders the QR image as a data URI
// and builds the matching share link.
func (s *Service) Generate(ctx context.Context, rec payload.ContactRecord) (*Result, error) {
	text := payload.Serialize(rec)

	uri, err := qrimage.DataURI(ctx, text)
	if err != nil {
		return nil, err
	}

	return &Result{
		Payload:  text,
		QRCode:   uri,
		ShareURL: s.cfg.ShareURL(token.Encode(text)),
	}, nil
}

// RenderPNG serializes the record and renders the raw PNG bytes for
// the download endpoint.
func (s *Service) RenderPNG(ctx context.Context, rec payload.ContactRecord) ([]byte, error) {
	return qrimage.PNG(ctx, payload.Serialize(rec))
}
