package generate

import "contactqr/internal/payload"

// GenerateRequest represents a contact form submission
type GenerateRequest struct {
	Name   string `json:"name" form:"name" binding:"required,min=2"`
	Email  string `json:"email" form:"email" binding:"required,email"`
	Phone  string `json:"phone" form:"phone" binding:"required,min=5,max=13"`
	Office string `json:"office" form:"office"`
	Format string `json:"format" form:"format" binding:"omitempty,oneof=vcard text"`
}

// ToRecord converts the bound request into an immutable ContactRecord.
func (r GenerateRequest) ToRecord() payload.ContactRecord {
	return payload.ContactRecord{
		Name:   r.Name,
		Email:  r.Email,
		Phone:  r.Phone,
		Office: r.Office,
		Format: payload.ParseFormat(r.Format),
	}
}

// RecordView echoes the contact fields back to the client
type RecordView struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Office string `json:"office"`
	Format string `json:"format"`
}

// NewRecordView builds the echo view for a record.
func NewRecordView(rec payload.ContactRecord) RecordView {
	return RecordView{
		Name:   rec.Name,
		Email:  rec.Email,
		Phone:  rec.Phone,
		Office: rec.Office,
		Format: string(rec.Format),
	}
}

// GenerateResponse represents a successful generation
type GenerateResponse struct {
	Payload   string `json:"payload"`
	QRCode    string `json:"qrcode"`
	ShareURL  string `json:"share_url"`
	Generated bool   `json:"generated"`
}

// PrefillResponse is returned by the pre-fill endpoint when no
// generation was triggered.
type PrefillResponse struct {
	Record    RecordView `json:"record"`
	Generated bool       `json:"generated"`
}

// PrefillGenerateResponse is returned when a pre-fill request carried
// all required fields and generation ran automatically.
type PrefillGenerateResponse struct {
	Record RecordView `json:"record"`
	GenerateResponse
}
