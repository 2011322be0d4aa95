package common

import (
	"errors"
	"fmt"
)

// Sentinel errors shared across packages.
var (
	// ErrNoOrder is the only document-level failure the extraction core
	// reports: no page yielded a single usable record.
	ErrNoOrder = errors.New("no extractable order")

	// ErrInvalidInput marks payloads rejected before parsing (bad page dump).
	ErrInvalidInput = errors.New("invalid input")
)

func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
