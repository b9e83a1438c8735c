package domain

import "testing"

func floatPtr(v float64) *float64 { return &v }

func TestFormatRating(t *testing.T) {
	if got := FormatRating(floatPtr(4.25)); got != "4.2" {
		t.Fatalf("FormatRating(4.25) = %q, want %q", got, "4.2")
	}
	if got := FormatRating(floatPtr(5)); got != "5.0" {
		t.Fatalf("FormatRating(5) = %q, want %q", got, "5.0")
	}
	if got := FormatRating(nil); got != NotAvailable {
		t.Fatalf("FormatRating(nil) = %q, want %q", got, NotAvailable)
	}
}

func TestPriceGlyphs(t *testing.T) {
	tests := []struct {
		level int
		want  string
	}{
		{0, NotAvailable},
		{1, "$"},
		{3, "$$$"},
		{4, "$$$$"},
	}
	for _, tc := range tests {
		if got := PriceGlyphs(tc.level); got != tc.want {
			t.Fatalf("PriceGlyphs(%d) = %q, want %q", tc.level, got, tc.want)
		}
	}
}

func TestJoinTypes(t *testing.T) {
	if got := JoinTypes([]string{"cafe", "bakery"}); got != "cafe, bakery" {
		t.Fatalf("JoinTypes = %q, want %q", got, "cafe, bakery")
	}
	if got := JoinTypes(nil); got != NotAvailable {
		t.Fatalf("JoinTypes(nil) = %q, want %q", got, NotAvailable)
	}
}
