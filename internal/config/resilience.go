package config

import (
	"time"

	"card_valuation/internal/retry"
)

// ResilienceConfig holds the retry profiles for each external touchpoint of
// a valuation run.
type ResilienceConfig struct {
	PageFetch   retry.Config
	SheetExport retry.Config
	Notify      retry.Config
}

// Default keeps page fetches snappy (many per run, failures degrade to a
// sentinel anyway) and is more patient with the one-off sheet export.
var Default = ResilienceConfig{
	PageFetch: retry.Config{
		MaxRetries: 2,
		BaseDelay:  1 * time.Second,
		MaxDelay:   10 * time.Second,
		Timeout:    15 * time.Second,
	},
	SheetExport: retry.Config{
		MaxRetries: 3,
		BaseDelay:  2 * time.Second,
		MaxDelay:   30 * time.Second,
		Timeout:    15 * time.Second,
	},
	Notify: retry.Config{
		MaxRetries: 3,
		BaseDelay:  1 * time.Second,
		MaxDelay:   15 * time.Second,
		Timeout:    10 * time.Second,
	},
}
