package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/hollisb/penny/internal/cli"
	"github.com/hollisb/penny/internal/common"
	"github.com/hollisb/penny/internal/ingest"
	"github.com/hollisb/penny/internal/model"
	"github.com/hollisb/penny/internal/normalize"
	"github.com/hollisb/penny/internal/source"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [files...]",
		Short: "Import statement exports into the ledger",
		Long: `Import one or more statement export files. Each file is normalized,
fingerprinted, and inserted with exact-once semantics: re-importing a
file (or overlapping exports) skips rows already in the ledger.

Examples:
  # Checking account activity export (CSV or TSV)
  penny import --source bank --institution "Santander" checking.tsv

  # Credit card export
  penny import --source card --institution "Capital One" --name "Chase Visa" credit.csv

  # OFX/QFX downloads, many at once
  penny import --source ofx --institution "Chase" ~/Downloads/*.qfx`,
		Args: cobra.MinimumNArgs(1),
		RunE: runImport,
	}

	cmd.Flags().StringP("source", "s", "", "source format: bank, card, or ofx (required)")
	cmd.Flags().StringP("institution", "i", "", "institution name recorded on the account")
	cmd.Flags().StringP("name", "n", "", "account display name (card imports)")
	cmd.Flags().StringP("account", "a", "", "override the account identifier parsed from the files")
	cmd.Flags().StringP("type", "t", "", "override the account type: debit or credit")
	cmd.Flags().BoolP("dry-run", "d", false, "parse files without writing to the ledger")
	_ = cmd.MarkFlagRequired("source")

	return cmd
}

func runImport(cmd *cobra.Command, args []string) error {
	sourceKind, _ := cmd.Flags().GetString("source")
	institution, _ := cmd.Flags().GetString("institution")
	accountName, _ := cmd.Flags().GetString("name")
	accountID, _ := cmd.Flags().GetString("account")
	rawType, _ := cmd.Flags().GetString("type")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	typeOverride, err := parseTypeOverride(rawType)
	if err != nil {
		return err
	}

	adapter, err := newAdapter(sourceKind, institution, accountName)
	if err != nil {
		return err
	}

	files, err := expandGlobs(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no files found to import")
	}

	slog.Info("🪙 Importing statement files...",
		"source", sourceKind,
		"file_count", len(files),
		"dry_run", dryRun)

	ctx := cmd.Context()

	var engine *ingest.Engine
	if !dryRun {
		store, storeErr := initStorage(ctx)
		if storeErr != nil {
			return storeErr
		}
		defer func() { _ = store.Close() }()

		cleaner := normalize.NewCleaner(viper.GetStringSlice("ledger.noise_words"))
		engine = ingest.New(store, cleaner, viper.GetString("ledger.currency"))
	}

	bar := progressbar.Default(int64(len(files)), "importing")
	var total model.RunSummary

	for _, filePath := range files {
		statements, parseErr := parseFile(ctx, adapter, filePath)
		if parseErr != nil {
			return common.NewUserError(
				fmt.Sprintf("failed to parse %s", filepath.Base(filePath)), parseErr)
		}

		for _, stmt := range statements {
			applyOverrides(&stmt, accountID, typeOverride)

			if dryRun {
				fmt.Println(cli.RenderRunSummary(
					fmt.Sprintf("%s (%s) — dry run, %d rows parsed", filepath.Base(filePath), stmt.Account.ID, len(stmt.Rows)),
					model.RunSummary{}))
				continue
			}

			summary, runErr := engine.Run(ctx, stmt.Account, stmt.Rows)
			if runErr != nil {
				return common.NewUserError(
					fmt.Sprintf("import of %s failed", filepath.Base(filePath)), runErr)
			}

			total.Inserted += summary.Inserted
			total.Skipped += summary.Skipped
			fmt.Println(cli.RenderRunSummary(
				fmt.Sprintf("%s (%s)", filepath.Base(filePath), stmt.Account.ID), summary))
		}

		_ = bar.Add(1)
	}

	if !dryRun {
		fmt.Println(cli.FormatSuccess(fmt.Sprintf(
			"Done: %d inserted, %d skipped as duplicates across %d file(s)",
			total.Inserted, total.Skipped, len(files))))
	}

	return nil
}

// parseTypeOverride validates the --type flag value. An empty value
// means no override.
func parseTypeOverride(raw string) (model.AccountType, error) {
	if raw == "" {
		return "", nil
	}
	accountType := model.AccountType(raw)
	if err := accountType.Validate(); err != nil {
		return "", common.NewUserError("invalid --type", err)
	}
	return accountType, nil
}

// applyOverrides replaces the account identity parsed from a file with
// the operator-supplied flag values. Row account IDs move with the
// registration so fingerprints stay consistent.
func applyOverrides(stmt *source.Statement, accountID string, accountType model.AccountType) {
	if accountID != "" {
		stmt.Account.ID = accountID
		for i := range stmt.Rows {
			stmt.Rows[i].AccountID = accountID
		}
	}
	if accountType != "" {
		stmt.Account.Type = accountType
	}
}

// newAdapter selects the source adapter for the requested format.
func newAdapter(kind, institution, accountName string) (source.Adapter, error) {
	if institution == "" {
		return nil, common.NewUserError("missing --institution",
			fmt.Errorf("%w: --institution is required for imports", common.ErrMissingConfig))
	}
	switch kind {
	case "bank":
		return source.NewBankActivityAdapter(institution), nil
	case "card":
		if accountName == "" {
			accountName = "Card"
		}
		return source.NewCardAdapter(institution, accountName), nil
	case "ofx":
		return source.NewOFXAdapter(institution), nil
	default:
		return nil, fmt.Errorf("unknown source format %q (expected bank, card, or ofx)", kind)
	}
}

func parseFile(ctx context.Context, adapter source.Adapter, filePath string) ([]source.Statement, error) {
	f, err := os.Open(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return adapter.Parse(ctx, f)
}

// expandGlobs resolves glob patterns, passing through direct paths.
func expandGlobs(patterns []string) ([]string, error) {
	var files []string
	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}
		if len(matches) == 0 {
			if _, statErr := os.Stat(pattern); statErr == nil {
				files = append(files, pattern)
			} else {
				fmt.Println(cli.FormatWarning(fmt.Sprintf("no files match %s", pattern)))
			}
			continue
		}
		files = append(files, matches...)
	}
	return files, nil
}
