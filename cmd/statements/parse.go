package main

import (
	"fmt"
	"io"
	"mime"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/FACorreiaa/statement-parser/internal/domain/categorization"
	"github.com/FACorreiaa/statement-parser/internal/domain/export"
	"github.com/FACorreiaa/statement-parser/internal/domain/insights"
	"github.com/FACorreiaa/statement-parser/internal/domain/statement"
	"github.com/FACorreiaa/statement-parser/internal/domain/statement/service"
)

var (
	accountType  string
	outputFormat string
	outputPath   string
)

var parseCmd = &cobra.Command{
	Use:   "parse <file>...",
	Short: "Parse statement files into normalized transactions",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runParse,
}

func init() {
	parseCmd.Flags().StringVar(&accountType, "account-type", "", "override account type inference (bank or credit-card)")
	parseCmd.Flags().StringVarP(&outputFormat, "format", "f", "", "output format: csv, excel or json")
	parseCmd.Flags().StringVarP(&outputPath, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if accountType != "" {
		if accountType != "bank" && accountType != "credit-card" {
			return fmt.Errorf("invalid account type %q: must be bank or credit-card", accountType)
		}
		cfg.Parsing.DefaultAccountType = accountType
	}
	if outputFormat != "" {
		cfg.Output.Format = outputFormat
	}
	if outputPath != "" {
		cfg.Output.Path = outputPath
	}

	logger := newLogger(cfg)

	files := make([]statement.File, 0, len(args))
	for _, path := range args {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		files = append(files, statement.File{
			Name:        filepath.Base(path),
			ContentType: mime.TypeByExtension(filepath.Ext(path)),
			Data:        data,
		})
	}

	svc := service.New(logger)
	results, err := svc.ParseStatementFiles(cmd.Context(), files, service.Options{
		AccountType:    statement.AccountType(cfg.Parsing.DefaultAccountType),
		MaxConcurrency: cfg.Parsing.MaxConcurrency,
	})
	if err != nil {
		return err
	}

	var transactions []statement.Transaction
	for _, result := range results {
		for _, warning := range result.Warnings {
			logger.Warn(warning.Message, "file", result.FileName, "context", warning.Context)
		}
		transactions = append(transactions, result.Transactions...)
	}

	if cfg.Rules.Path != "" {
		data, err := os.ReadFile(cfg.Rules.Path)
		if err != nil {
			return fmt.Errorf("read rules file: %w", err)
		}
		rules, err := categorization.LoadRules(data)
		if err != nil {
			return err
		}
		engine := categorization.NewEngine(rules)
		for i, app := range engine.ApplyAll(transactions) {
			transactions[i] = app.Transaction
		}
	}

	transactions, _ = insights.Annotate(transactions)

	out := cmd.OutOrStdout()
	if cfg.Output.Path != "" {
		f, err := os.Create(cfg.Output.Path)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer f.Close()
		out = f
	}

	if err := writeOutput(out, cfg.Output.Format, transactions); err != nil {
		return err
	}

	logger.Info("parse complete", "files", len(files), "transactions", len(transactions))
	return nil
}

func writeOutput(w io.Writer, format string, transactions []statement.Transaction) error {
	switch format {
	case "csv":
		return export.WriteCSV(w, transactions)
	case "excel":
		return export.WriteExcel(w, transactions)
	case "json":
		return export.WriteJSON(w, transactions)
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
}
