package payload

import (
	"strings"
	"testing"
)

func TestSerializeVCard(t *testing.T) {
	r := ContactRecord{
		Name:   "Amina Okoro",
		Email:  "amina@example.com",
		Phone:  "+254712345678",
		Office: "Nairobi HQ",
		Format: FormatVCard,
	}

	got := Serialize(r)
	want := strings.Join([]string{
		"BEGIN:VCARD",
		"VERSION:3.0",
		"N:Okoro;Amina;;;",
		"FN:Amina Okoro",
		"TEL;TYPE=CELL:+254712345678",
		"EMAIL;TYPE=INTERNET:amina@example.com",
		"ADR;TYPE=WORK:;;Nairobi HQ;;;;",
		"END:VCARD",
	}, "\n")

	if got != want {
		t.Errorf("vcard payload mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestSerializeVCardStructure(t *testing.T) {
	tests := []struct {
		name   string
		record ContactRecord
		nLine  string
		fnLine string
	}{
		{
			name:   "two tokens",
			record: ContactRecord{Name: "Jane Doe", Email: "jane@example.com", Phone: "12345"},
			nLine:  "N:Doe;Jane;;;",
			fnLine: "FN:Jane Doe",
		},
		{
			name:   "three tokens join leading as given",
			record: ContactRecord{Name: "Ana Maria Silva", Email: "ana@example.com", Phone: "12345"},
			nLine:  "N:Silva;Ana Maria;;;",
			fnLine: "FN:Ana Maria Silva",
		},
		{
			name:   "single token falls back to whole name",
			record: ContactRecord{Name: "Cher", Email: "cher@example.com", Phone: "12345"},
			nLine:  "N:Cher;Cher;;;",
			fnLine: "FN:Cher",
		},
		{
			name:   "surrounding whitespace trimmed",
			record: ContactRecord{Name: "  Jane Doe  ", Email: " jane@example.com ", Phone: " 12345 "},
			nLine:  "N:Doe;Jane;;;",
			fnLine: "FN:Jane Doe",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Serialize(tt.record)
			lines := strings.Split(got, "\n")

			if len(lines) != 8 {
				t.Fatalf("line count = %d, want 8", len(lines))
			}
			if lines[0] != "BEGIN:VCARD" {
				t.Errorf("first line = %q, want BEGIN:VCARD", lines[0])
			}
			if lines[7] != "END:VCARD" {
				t.Errorf("last line = %q, want END:VCARD", lines[7])
			}
			if lines[2] != tt.nLine {
				t.Errorf("N line = %q, want %q", lines[2], tt.nLine)
			}
			if lines[3] != tt.fnLine {
				t.Errorf("FN line = %q, want %q", lines[3], tt.fnLine)
			}
			if strings.Count(got, "FN:") != 1 {
				t.Errorf("payload contains %d FN lines, want 1", strings.Count(got, "FN:"))
			}
		})
	}
}

func TestSerializeText(t *testing.T) {
	r := ContactRecord{
		Name:   " Amina Okoro ",
		Email:  "amina@example.com",
		Phone:  "+254712345678",
		Office: "Nairobi HQ",
		Format: FormatText,
	}

	got := Serialize(r)
	lines := strings.Split(got, "\n")

	want := []string{
		"Name: Amina Okoro",
		"Email: amina@example.com",
		"Phone: +254712345678",
		"Office: Nairobi HQ",
		"Format: text",
	}

	if len(lines) != len(want) {
		t.Fatalf("line count = %d, want %d", len(lines), len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestSerializeTextEmptyOffice(t *testing.T) {
	r := ContactRecord{Name: "Jane Doe", Email: "jane@example.com", Phone: "12345", Format: FormatText}
	lines := strings.Split(Serialize(r), "\n")
	if lines[3] != "Office: " {
		t.Errorf("office line = %q, want %q", lines[3], "Office: ")
	}
}

func TestSerializeDeterministic(t *testing.T) {
	r := ContactRecord{
		Name:   "Søren Ångström",
		Email:  "soren@example.com",
		Phone:  "+4512345678",
		Office: "København",
		Format: FormatVCard,
	}

	first := Serialize(r)
	second := Serialize(r)
	if first != second {
		t.Errorf("serialization is not deterministic:\nfirst:\n%s\nsecond:\n%s", first, second)
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"vcard", FormatVCard},
		{"text", FormatText},
		{"", FormatVCard},
		{"pdf", FormatVCard},
		{"TEXT", FormatVCard},
	}

	for _, tt := range tests {
		if got := ParseFormat(tt.input); got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}
