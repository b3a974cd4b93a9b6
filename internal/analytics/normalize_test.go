package analytics

import "testing"

func TestNormalizeString(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    float64
		numeric bool
	}{
		{"plain integer", "42", 42, true},
		{"plain float", "3.14", 3.14, true},
		{"billion suffix", "4.35 billion", 4.35e9, true},
		{"million suffix", "2 million", 2e6, true},
		{"k suffix", "120k", 120000, true},
		{"currency prefix stripped by leading-number match", "4.35 billion USD", 4.35e9, true},
		{"uppercase magnitude", "1.5 BILLION", 1.5e9, true},
		{"whitespace padding", "  100  ", 100, true},
		{"empty string", "", 0, false},
		{"qualitative word", "positive", 0, false},
		{"double dotted", "1.2.3", 0, false},
		{"magnitude without number", "billion", 0, false},
		{"number with trailing junk", "99 units", 99, true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := NormalizeString(tc.in)
			if ok != tc.numeric {
				t.Fatalf("NormalizeString(%q) numeric = %v, want %v", tc.in, ok, tc.numeric)
			}
			if got != tc.want {
				t.Fatalf("NormalizeString(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalize_NilPointer(t *testing.T) {
	got, ok := Normalize(nil)
	if ok || got != 0 {
		t.Fatalf("Normalize(nil) = (%v, %v), want (0, false)", got, ok)
	}
}

func TestNormalize_Pointer(t *testing.T) {
	v := "7.5 million"
	got, ok := Normalize(&v)
	if !ok || got != 7.5e6 {
		t.Fatalf("Normalize(&%q) = (%v, %v), want (7.5e6, true)", v, got, ok)
	}
}

// Larger magnitudes are matched first, so a value naming both never
// double-applies the smaller one.
func TestNormalizeString_MagnitudePriority(t *testing.T) {
	got, ok := NormalizeString("2 million pack")
	if !ok || got != 2e6 {
		t.Fatalf("got (%v, %v), want (2e6, true)", got, ok)
	}
}
