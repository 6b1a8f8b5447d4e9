package payload

// Format selects how a ContactRecord is serialized into a payload.
type Format string

const (
	FormatVCard Format = "vcard"
	FormatText  Format = "text"
)

// ParseFormat maps a raw format value to a known Format.
// Unknown or empty values default to vcard.
func ParseFormat(s string) Format {
	if Format(s) == FormatText {
		return FormatText
	}
	return FormatVCard
}

// ContactRecord represents a validated contact form submission.
// It is passed by value between validation and serialization and is
// never mutated after it has been serialized.
type ContactRecord struct {
	Name   string
	Email  string
	Phone  string
	Office string
	Format Format
}
