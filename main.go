package main

import (
	"context"
	"os"
	"path/filepath"

	"card_valuation/internal/cards"
	"card_valuation/internal/fetch"
	"card_valuation/internal/ingest"
	"card_valuation/internal/notifications"
	"card_valuation/internal/pricecharting"
	"card_valuation/internal/pricing"
	"card_valuation/internal/report"
	"card_valuation/internal/sheets"

	"github.com/rs/zerolog/log"
)

func main() {
	setupEnvironment()

	if len(os.Args) < 2 {
		log.Fatal().Msg("Not enough args. Try: card_valuation collection.csv")
	}
	inputPath := os.Args[1]

	requests, err := ingest.ReadRequests(inputPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", inputPath).Msg("Failed to read input file")
	}
	if len(requests) == 0 {
		log.Fatal().Str("path", inputPath).Msg("Input file holds no valid rows")
	}

	log.Info().
		Int("cards", len(requests)).
		Str("path", inputPath).
		Msg("Starting valuation run")

	ctx := context.Background()
	client := pricecharting.NewClient()

	pool := fetch.NewPool(getEnvInt("FETCH_WORKERS", 0))
	results := pool.Run(ctx, requests, func(ctx context.Context, req cards.ItemRequest) (cards.PriceQuote, error) {
		return client.GetQuote(ctx, req.SetID, req.CardID)
	})

	valuations := make([]cards.Valuation, 0, len(results))
	for _, result := range results {
		valuations = append(valuations, pricing.Evaluate(result.Request, result.Quote, result.Err))
	}

	rep := report.Build(valuations)

	outputPath := outputPathFor(inputPath)
	if err := report.WriteCSV(outputPath, rep); err != nil {
		log.Fatal().Err(err).Str("path", outputPath).Msg("Failed to write report file")
	}

	report.Summarize(rep)
	log.Info().
		Int64("page_requests", client.GetRequestCount()).
		Str("output", outputPath).
		Msg("Valuation run complete")

	exportReport(ctx, rep)
	notifyRunSummary(ctx, rep)
}

// outputPathFor places the report beside the input file as prices_<name>.
func outputPathFor(inputPath string) string {
	dir, name := filepath.Split(inputPath)
	return filepath.Join(dir, "prices_"+name)
}

// exportReport appends the report to a Google Sheet when SPREADSHEET_ID is
// configured. Export trouble never fails the run; the CSV is already on disk.
func exportReport(ctx context.Context, rep report.Report) {
	spreadsheetID := os.Getenv("SPREADSHEET_ID")
	if spreadsheetID == "" {
		log.Debug().Msg("SPREADSHEET_ID not set, skipping sheet export")
		return
	}

	sheetsClient, err := sheets.NewClient(ctx, "credentials.json")
	if err != nil {
		log.Error().Err(err).Msg("Failed to create sheets client, skipping sheet export")
		return
	}

	sheetRange := getEnvWithDefault("SPREADSHEET_RANGE", "Valuations!A1")
	if err := sheets.ExportReport(ctx, sheetsClient, spreadsheetID, sheetRange, rep); err != nil {
		log.Error().Err(err).Msg("Failed to export report to sheet")
	}
}

func notifyRunSummary(ctx context.Context, rep report.Report) {
	enabled := getEnvWithDefault("NTFY_ENABLED", "false") == "true"
	baseURL := getEnvWithDefault("NTFY_URL", "https://ntfy.sh")
	topic := getEnvWithDefault("NTFY_TOPIC", "card-valuation")

	client := notifications.NewClient(baseURL, topic, enabled)
	client.NotifyRunSummary(ctx, rep)
}
