// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"standmatch/internal/domain/entity"
	"standmatch/internal/importer"
)

// ImportUsecase defines the interface for the CSV bulk-import operations.
type ImportUsecase interface {
	// ImportCSV runs the full pipeline on one uploaded file: parse,
	// validate, transform, persist. When validation fails the returned
	// result carries the per-field errors alongside the error value.
	ImportCSV(ctx context.Context, input *ImportCSVInput) (*ImportResult, error)

	// Template returns the downloadable CSV template with sample rows.
	Template() (filename string, content string)
}

// --- Input DTOs ---

// ImportCSVInput describes one uploaded CSV file.
type ImportCSVInput struct {
	Filename string
	Content  string
}

// --- Output DTOs ---

// ImportResult summarises one import run.
type ImportResult struct {
	Created    int                      `json:"created"`
	Duplicates int                      `json:"duplicates"`
	Builders   []*entity.BuilderProfile `json:"builders,omitempty"`
	Errors     []importer.FieldError    `json:"errors,omitempty"`
}
