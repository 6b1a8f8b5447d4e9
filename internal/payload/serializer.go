package payload

import "strings"

// Serialize turns a ContactRecord into its canonical payload string.
// It is a pure function of the record: identical input produces
// byte-identical output. Required fields are assumed to have been
// validated by the caller; no validation happens here.
func Serialize(r ContactRecord) string {
	if r.Format == FormatText {
		return serializeText(r)
	}
	return serializeVCard(r)
}

// splitName splits a trimmed full name into given and family parts.
// The last whitespace-separated token is the family name, the leading
// tokens joined by spaces are the given name. A single-token name
// falls back to the whole name for the given part. Multi-word family
// names are knowingly mishandled; the split is part of the contract of
// already-issued share links and must not change.
func splitName(name string) (given, family string) {
	parts := strings.Fields(name)
	if len(parts) <= 1 {
		return name, name
	}
	return strings.Join(parts[:len(parts)-1], " "), parts[len(parts)-1]
}

func serializeVCard(r ContactRecord) string {
	name := strings.TrimSpace(r.Name)
	given, family := splitName(name)
	lines := []string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:" + family + ";" + given + ";;;",
		"FN:" + name,
		"TEL;TYPE=CELL:" + strings.TrimSpace(r.Phone),
		"EMAIL;TYPE=INTERNET:" + strings.TrimSpace(r.Email),
		"ADR;TYPE=WORK:;;" + strings.TrimSpace(r.Office) + ";;;;",
		"END:VCARD",
	}
	return strings.Join(lines, "\n")
}

func serializeText(r ContactRecord) string {
	lines := []string{
		"Name: " + strings.TrimSpace(r.Name),
		"Email: " + strings.TrimSpace(r.Email),
		"Phone: " + strings.TrimSpace(r.Phone),
		"Office: " + strings.TrimSpace(r.Office),
		"Format: " + string(FormatText),
	}
	return strings.Join(lines, "\n")
}
