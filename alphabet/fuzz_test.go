package alphabet

import (
	"testing"
)

// FuzzEncodeDecode checks that any text accepted by Encode decodes to its normalized form.
func FuzzEncodeDecode(f *testing.F) {
	f.Add("HOLA UAT.")
	f.Add("Mañana")
	f.Add("AÑO")
	f.Add("x,y")
	f.Add("")

	f.Fuzz(func(t *testing.T, text string) {
		codes, err := Default.Encode(text)
		if err != nil {
			return
		}
		normalized, err := Default.Normalize(text)
		if err != nil {
			t.Fatalf("Encode accepted %q but Normalize failed: %v", text, err)
		}
		decoded, err := Default.Decode(codes)
		if err != nil {
			t.Fatalf("Decode failed for codes of %q: %v", text, err)
		}
		if decoded != normalized {
			t.Fatalf("round trip mismatch: %q != %q", decoded, normalized)
		}
	})
}
