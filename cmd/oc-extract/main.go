package main

import (
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/gilerojas/orden-compra-app/internal/common"
	"github.com/gilerojas/orden-compra-app/internal/export"
	"github.com/gilerojas/orden-compra-app/internal/extract"
	"github.com/gilerojas/orden-compra-app/internal/fingerprint"
	"github.com/gilerojas/orden-compra-app/internal/source"
)

func main() {
	_ = godotenv.Load()
	cfg := common.LoadConfig()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(logger)

	var (
		xlsxOut = flag.String("xlsx", "", "write the order workbook to this path")
		jsonOut = flag.String("json", "", "write the extracted records as JSON to this path")
	)
	flag.Parse()
	if flag.NArg() != 1 {
		logger.Error("usage", "cmd", "oc-extract [-xlsx out.xlsx] [-json out.json] <pages.json>")
		os.Exit(2)
	}

	ctx := context.Background()
	src := source.NewDumpSource(flag.Arg(0), logger)
	pages, err := src.Pages(ctx)
	if err != nil {
		logger.Error("load page dump", "path", flag.Arg(0), "error", err)
		os.Exit(1)
	}

	parser := extract.NewParser(logger, extract.Config{Decimals: cfg.Extractor.Decimals})

	start := time.Now()
	records, err := parser.ParseDocument(pages)
	if err != nil {
		logger.Error("extraction failed",
			"path", flag.Arg(0), "pages", len(pages), "error", err)
		os.Exit(1)
	}

	first := records[0]
	logger.Info("extraction OK",
		"order", deref(first.Metadata.OrderNumber),
		"vendor", deref(first.Metadata.Vendor),
		"records", len(records),
		"total", first.Totals.Total,
		"fingerprint", fingerprint.Compute(records),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if *jsonOut != "" {
		data, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			logger.Error("encode records", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*jsonOut, data, 0o644); err != nil {
			logger.Error("write json", "path", *jsonOut, "error", err)
			os.Exit(1)
		}
	}

	if *xlsxOut != "" {
		svc := export.NewService(logger)
		data, err := svc.OrderXLSX(records, time.Now())
		if err != nil {
			logger.Error("build workbook", "error", err)
			os.Exit(1)
		}
		if err := os.WriteFile(*xlsxOut, data, 0o644); err != nil {
			logger.Error("write workbook", "path", *xlsxOut, "error", err)
			os.Exit(1)
		}
	}
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
