package extract

import "log/slog"

// Config holds behavior knobs for the parser.
type Config struct {
	Decimals int // precision of derived per-line amounts, default 3
}

// Parser turns raw extractor pages into purchase-order records. It is
// stateless across calls; parsing the same page twice yields identical
// results.
type Parser struct {
	logger   *slog.Logger
	decimals int
}

func NewParser(logger *slog.Logger, cfg Config) *Parser {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Decimals <= 0 {
		cfg.Decimals = 3
	}
	return &Parser{logger: logger, decimals: cfg.Decimals}
}
