package pricing

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedPrice reports price-cell text that survived stripping but is
// not a number or a recognized placeholder. Callers log it and degrade to a
// sentinel; it never aborts a batch.
var ErrMalformedPrice = errors.New("malformed price text")

var noiseReplacer = strings.NewReplacer(
	"\\n", "",
	"\n", "",
	" ", "",
	"-", "",
	"+", "",
	",", "",
)

// CleanPrice normalizes raw price-cell text into a non-negative price.
// It returns 0 when the source explicitly lists no price ("N/A" variants or
// an empty cell) and ErrMalformedPrice for anything else unparseable.
//
// The source format always prefixes a currency glyph, so the first character
// after stripping is dropped unconditionally. Two price fields are sometimes
// concatenated with no separator; only the first is wanted, so the remainder
// is truncated at a second "$" when one is present.
func CleanPrice(raw string) (float64, error) {
	s := noiseReplacer.Replace(raw)

	if len(s) > 0 {
		s = s[1:]
	}
	if i := strings.IndexByte(s, '$'); i >= 0 {
		s = s[:i]
	}

	if s == "" {
		return 0, nil
	}

	price, err := strconv.ParseFloat(s, 64)
	if err != nil {
		// "N/A" loses its leading character with the currency glyph when
		// the cell carries no "$", so both spellings show up here.
		if s == "N/A" || s == "/A" {
			return 0, nil
		}
		return 0, fmt.Errorf("%w: %q", ErrMalformedPrice, s)
	}

	return price, nil
}
