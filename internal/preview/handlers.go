package preview

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"contactqr/internal/app"
)

// Handlers contains HTTP handlers for the preview flow
type Handlers struct {
	app     *app.App
	service *Service
}

// NewHandlers creates a new preview handlers instance
func NewHandlers(app *app.App) *Handlers {
	return &Handlers{
		app:     app,
		service: NewService(app),
	}
}

// QRHandler handles GET /qr - decodes the p parameter and returns the
// re-rendered QR image as a data URI
func (h *Handlers) QRHandler(c *gin.Context) {
	view, err := h.service.Resolve(c.Request.Context(), c.Query("p"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"payload": view.Payload,
		"qrcode":  view.QRCode,
	})
}

// DownloadHandler handles GET /qr.png - streams the rendered image as
// an attachment named qr.png
func (h *Handlers) DownloadHandler(c *gin.Context) {
	png, err := h.service.ResolvePNG(c.Request.Context(), c.Query("p"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename=qr.png`)
	c.Data(http.StatusOK, "image/png", png)
}

func (h *Handlers) respondError(c *gin.Context, err error) {
	if errors.Is(err, ErrInvalidPayload) {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": InvalidPayloadMessage})
		return
	}

	// The caller is gone; drop the result instead of writing to a
	// connection nobody is reading.
	if c.Request.Context().Err() != nil {
		c.Abort()
		return
	}

	h.app.Logger.Printf("Preview render error: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
