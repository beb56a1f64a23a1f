package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HuyTapCode05/quanlythuchi/internal/exchange"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func exportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export USER_ID",
		Short: "Export the categories and transactions of a user as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, _ := cmd.Flags().GetString("output")

			closeDB, err := connectDatabase()
			if err != nil {
				return err
			}
			defer closeDB()

			doc, err := exchange.Export(args[0], time.Now())
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}

			data, err := json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}

			if output == "" {
				_, err = cmd.OutOrStdout().Write(append(data, '\n'))
				return err
			}

			if err := os.WriteFile(output, data, 0o600); err != nil {
				return fmt.Errorf("could not write %s: %w", output, err)
			}

			log.Info().Str("file", output).Int("categories", len(doc.Categories)).Int("transactions", len(doc.Transactions)).Msg("exported")
			return nil
		},
	}

	cmd.Flags().StringP("output", "o", "", "file to write to instead of stdout")

	return cmd
}

func importCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import USER_ID FILE...",
		Short: "Import JSON export documents and OFX/QFX statements for a user",
		Long: `Import files for a user. The format is chosen by the file suffix:
.json files must be export documents, .ofx and .qfx files are bank
statements. Patterns are expanded, so "statements/*.qfx" works.

Entries that already exist are overwritten for documents and kept
for statements.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			userID := args[0]

			files, err := expand(args[1:])
			if err != nil {
				return err
			}

			closeDB, err := connectDatabase()
			if err != nil {
				return err
			}
			defer closeDB()

			for _, file := range files {
				if err := importFile(userID, file); err != nil {
					return fmt.Errorf("%s: %w", file, err)
				}
			}

			return nil
		},
	}
}

// expand resolves the patterns to files. Patterns without match are
// used as plain paths.
func expand(patterns []string) ([]string, error) {
	var files []string

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %s: %w", pattern, err)
		}

		if len(matches) == 0 {
			if _, err := os.Stat(pattern); err != nil {
				return nil, fmt.Errorf("no files found matching %s", pattern)
			}
			matches = []string{pattern}
		}

		files = append(files, matches...)
	}

	return files, nil
}

func importFile(userID, file string) error {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".json":
		data, err := os.ReadFile(file)
		if err != nil {
			return err
		}

		summary, err := exchange.ImportJSON(userID, data, time.Now())
		if err != nil {
			return err
		}

		for _, skipped := range summary.Skipped {
			log.Warn().Str("file", file).Int("index", skipped.Index).Err(skipped.Err).Msg("skipped entry")
		}
		if len(summary.Conflicts) > 0 {
			log.Warn().Str("file", file).Strs("ids", summary.Conflicts).Msg("entries belong to another user and were not imported")
		}
		log.Info().Str("file", file).Int("categories", summary.Categories).Int("transactions", summary.Transactions).Msg("imported document")

	case ".ofx", ".qfx":
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()

		parsed, created, err := exchange.ImportOFX(f, userID)
		if err != nil {
			return err
		}
		log.Info().Str("file", file).Int("parsed", parsed).Int64("created", created).Msg("imported statement")

	default:
		return fmt.Errorf("unsupported file type, use .json, .ofx or .qfx")
	}

	return nil
}
