package pricing

import (
	"errors"
	"testing"
)

func TestCleanPrice(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want float64
	}{
		{"plain price", "$5.99", 5.99},
		{"surrounding hyphens", "-$12.50-", 12.50},
		{"thousands separator", "$1,234.56", 1234.56},
		{"two concatenated prices", "$1,234.56-$999-", 1234.56},
		{"embedded newlines", "\n$3.00\n", 3.00},
		{"escaped newlines", "\\n$3.00\\n", 3.00},
		{"plus sign noise", "$7.25 +", 7.25},
		{"not available", "N/A", 0},
		{"not available with glyph", "$N/A", 0},
		{"empty cell", "", 0},
		{"whitespace only", "   ", 0},
		{"zero price", "$0.00", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CleanPrice(tt.raw)
			if err != nil {
				t.Fatalf("CleanPrice(%q) returned error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("CleanPrice(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCleanPriceMalformed(t *testing.T) {
	for _, raw := range []string{"$abc", "$12.3.4", "Xsold out"} {
		_, err := CleanPrice(raw)
		if !errors.Is(err, ErrMalformedPrice) {
			t.Errorf("CleanPrice(%q) error = %v, want ErrMalformedPrice", raw, err)
		}
	}
}

func TestCleanPriceDeterministic(t *testing.T) {
	inputs := []string{"-$12.50-", "N/A", "$1,234.56-$999-", "", "$abc"}
	for _, raw := range inputs {
		first, firstErr := CleanPrice(raw)
		for i := 0; i < 10; i++ {
			got, err := CleanPrice(raw)
			if got != first || (err == nil) != (firstErr == nil) {
				t.Errorf("CleanPrice(%q) not deterministic: (%v, %v) then (%v, %v)",
					raw, first, firstErr, got, err)
			}
		}
	}
}
