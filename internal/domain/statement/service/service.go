// Package service orchestrates statement parsing: it detects the file
// format, dispatches the matching reconstructor, attaches file-derived
// account-type defaults, and aggregates per-file results across a batch.
package service

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/FACorreiaa/statement-parser/internal/domain/statement"
	"github.com/FACorreiaa/statement-parser/internal/domain/statement/detect"
	"github.com/FACorreiaa/statement-parser/internal/domain/statement/normalizer"
	"github.com/FACorreiaa/statement-parser/internal/domain/statement/parser"
)

// Options carries caller overrides for a parse.
type Options struct {
	// AccountType overrides the file-name inference when non-empty.
	AccountType statement.AccountType
	// MaxConcurrency bounds the number of files parsed in parallel by
	// ParseStatementFiles. Zero or negative means unbounded.
	MaxConcurrency int
}

// Service runs statement files through the ingestion pipeline.
type Service struct {
	logger *slog.Logger
}

// New creates a statement parsing service.
func New(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ParseStatementFile parses one file end to end. Structural and row-level
// problems come back as warnings alongside whatever transactions were
// recoverable; only files the pipeline could not process at all return an
// error.
func (s *Service) ParseStatementFile(ctx context.Context, file statement.File, opts Options) (*statement.FileResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	format := detect.Format(file)
	accountType := opts.AccountType
	if accountType == "" {
		accountType = detect.InferAccountType(file.Name)
	}

	normOpts := normalizer.Options{FileName: file.Name, AccountType: accountType}

	var (
		transactions []statement.Transaction
		warnings     []statement.ParseWarning
		err          error
	)

	switch format {
	case statement.FormatCSV:
		transactions, warnings, err = parser.ParseCSV(file, normOpts)
	case statement.FormatExcel:
		transactions, warnings, err = parser.ParseExcel(file, normOpts)
	case statement.FormatPDF:
		transactions, warnings, err = parser.ParsePDF(file, normOpts)
	default:
		warnings = []statement.ParseWarning{{Message: "Unsupported file format."}}
	}
	if err != nil {
		return nil, err
	}

	result := &statement.FileResult{
		ParseResult: statement.ParseResult{
			Transactions: transactions,
			Warnings:     warnings,
			Metadata:     statement.DeriveMetadata(transactions, accountType),
		},
		Format:   format,
		FileName: file.Name,
	}

	s.logger.Info("parsed statement file",
		"file", file.Name,
		"format", format,
		"transactions", len(transactions),
		"warnings", len(warnings))

	return result, nil
}

// ParseStatementFiles parses a batch concurrently and returns results in
// input order regardless of completion order. A hard failure in any file's
// parse rejects the whole batch; callers wanting per-file isolation wrap
// individual ParseStatementFile calls instead.
func (s *Service) ParseStatementFiles(ctx context.Context, files []statement.File, opts Options) ([]*statement.FileResult, error) {
	results := make([]*statement.FileResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	if opts.MaxConcurrency > 0 {
		g.SetLimit(opts.MaxConcurrency)
	}
	for i, file := range files {
		g.Go(func() error {
			result, err := s.ParseStatementFile(ctx, file, opts)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
