package source

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/gilerojas/orden-compra-app/internal/common"
	"github.com/gilerojas/orden-compra-app/internal/entity"
)

// Dump is a captured extractor run: one entry per page, in page order, plus
// the table settings the capture was made with.
type Dump struct {
	Settings *TableSettings   `json:"table_settings,omitempty"`
	Pages    []entity.RawPage `json:"pages"`
}

// DumpSource reads pages from a JSON page-dump file. Payloads are validated
// against the dump schema before decoding.
type DumpSource struct {
	path   string
	logger *slog.Logger
}

func NewDumpSource(path string, logger *slog.Logger) *DumpSource {
	if logger == nil {
		logger = slog.Default()
	}
	return &DumpSource{path: path, logger: logger}
}

func (s *DumpSource) Pages(ctx context.Context) ([]entity.RawPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read page dump: %w", err)
	}
	if err := ValidateDump(data); err != nil {
		return nil, fmt.Errorf("%w: page dump %s: %v", common.ErrInvalidInput, s.path, err)
	}

	var d Dump
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("decode page dump: %w", err)
	}

	s.logger.Debug("source.dump.loaded", "path", s.path, "pages", len(d.Pages))
	return d.Pages, nil
}
