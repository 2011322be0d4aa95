package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/gilerojas/orden-compra-app/internal/common"
	"github.com/gilerojas/orden-compra-app/internal/extract"
	"github.com/gilerojas/orden-compra-app/internal/fingerprint"
	"github.com/gilerojas/orden-compra-app/internal/source"
)

// oc-hash prints the content fingerprint of a captured order, for comparing
// against the Hash_OC column of already-uploaded rows.
func main() {
	_ = godotenv.Load()
	cfg := common.LoadConfig()

	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "oc-hash <pages.json>")
		os.Exit(2)
	}

	src := source.NewDumpSource(os.Args[1], logger)
	pages, err := src.Pages(context.Background())
	if err != nil {
		logger.Error("load page dump", "path", os.Args[1], "error", err)
		os.Exit(1)
	}

	parser := extract.NewParser(logger, extract.Config{Decimals: cfg.Extractor.Decimals})
	records, err := parser.ParseDocument(pages)
	if err != nil && !errors.Is(err, common.ErrNoOrder) {
		logger.Error("extraction failed", "error", err)
		os.Exit(1)
	}

	// An empty order hashes to the all-zero sentinel, same as the uploader.
	fmt.Println(fingerprint.Compute(records))
}
