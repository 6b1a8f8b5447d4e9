package generate

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"contactqr/internal/app"
	"contactqr/internal/config"
	"contactqr/internal/payload"
)

// Handlers contains HTTP handlers for the generator flow
type Handlers struct {
	app     *app.App
	service *Service
}

// NewHandlers creates a new generate handlers instance
func NewHandlers(app *app.App, cfg *config.Config) *Handlers {
	return &Handlers{
		app:     app,
		service: NewService(app, cfg),
	}
}

// GenerateHandler handles POST /generate - validates the contact form
// and produces the QR image plus share link
func (h *Handlers) GenerateHandler(c *gin.Context) {
	var req GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": fieldErrors(err),
		})
		return
	}

	res, err := h.service.Generate(c.Request.Context(), req.ToRecord())
	if err != nil {
		h.app.Logger.Printf("Generate error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     err.Error(),
			"generated": false,
		})
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{
		Payload:   res.Payload,
		QRCode:    res.QRCode,
		ShareURL:  res.ShareURL,
		Generated: true,
	})
}

// PrefillHandler handles GET /generate - echoes a form pre-filled from
// query parameters and, when all required fields are present, runs
// generation immediately so the caller gets the image in one round trip
func (h *Handlers) PrefillHandler(c *gin.Context) {
	rec := recordFromQuery(c)

	if rec.Name == "" || rec.Email == "" || rec.Phone == "" {
		c.JSON(http.StatusOK, PrefillResponse{
			Record:    NewRecordView(rec),
			Generated: false,
		})
		return
	}

	req := requestFromRecord(rec)
	if err := validateRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": fieldErrors(err),
			"record": NewRecordView(rec),
		})
		return
	}

	res, err := h.service.Generate(c.Request.Context(), rec)
	if err != nil {
		h.app.Logger.Printf("Prefill generate error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":     err.Error(),
			"generated": false,
		})
		return
	}

	c.JSON(http.StatusOK, PrefillGenerateResponse{
		Record: NewRecordView(rec),
		GenerateResponse: GenerateResponse{
			Payload:   res.Payload,
			QRCode:    res.QRCode,
			ShareURL:  res.ShareURL,
			Generated: true,
		},
	})
}

// DownloadHandler handles GET /generate/qr.png - streams the rendered
// image as an attachment named contact-qr.png
func (h *Handlers) DownloadHandler(c *gin.Context) {
	rec := recordFromQuery(c)

	if rec.Name == "" || rec.Email == "" || rec.Phone == "" {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Missing required contact fields"})
		return
	}

	req := requestFromRecord(rec)
	if err := validateRequest(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "Validation failed",
			"fields": fieldErrors(err),
		})
		return
	}

	png, err := h.service.RenderPNG(c.Request.Context(), rec)
	if err != nil {
		h.app.Logger.Printf("Download render error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("Content-Disposition", `attachment; filename=contact-qr.png`)
	c.Data(http.StatusOK, "image/png", png)
}

// recordFromQuery builds a ContactRecord from the pre-fill query
// contract. An absent or unknown format falls back to vcard.
func recordFromQuery(c *gin.Context) payload.ContactRecord {
	return payload.ContactRecord{
		Name:   strings.TrimSpace(c.Query("name")),
		Email:  strings.TrimSpace(c.Query("email")),
		Phone:  strings.TrimSpace(c.Query("phone")),
		Office: strings.TrimSpace(c.Query("office")),
		Format: payload.ParseFormat(c.Query("format")),
	}
}

func requestFromRecord(rec payload.ContactRecord) GenerateRequest {
	return GenerateRequest{
		Name:   rec.Name,
		Email:  rec.Email,
		Phone:  rec.Phone,
		Office: rec.Office,
		Format: string(rec.Format),
	}
}

// validate runs the same rules as gin's binding, using the binding
// tag so the POST and GET paths cannot drift apart.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	return v
}

func validateRequest(req *GenerateRequest) error {
	return validate.Struct(req)
}

// fieldErrors translates a binding error into per-field messages so
// the form can surface them inline.
func fieldErrors(err error) map[string]string {
	fields := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["request"] = "Invalid request body"
		return fields
	}

	for _, fe := range verrs {
		name := strings.ToLower(fe.Field())
		switch fe.Tag() {
		case "required":
			fields[name] = "This field is required"
		case "email":
			fields[name] = "Must be a valid email address"
		case "min":
			fields[name] = "Must be at least " + fe.Param() + " characters"
		case "max":
			fields[name] = "Must be at most " + fe.Param() + " characters"
		case "oneof":
			fields[name] = "Must be one of: " + fe.Param()
		default:
			fields[name] = "Invalid value"
		}
	}

	return fields
}
