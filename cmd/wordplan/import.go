package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/wordplan/internal/content"
)

func newImportCommand() *cobra.Command {
	var name string
	var level string
	var sheet string

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import a wordbook from an Excel, CSV or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}
			defer func() {
				_ = app.Close()
			}()

			path := args[0]
			if _, err := os.Stat(path); err != nil {
				// Bare file names refer to the configured sources directory.
				path = filepath.Join(app.cfg.Wordbooks.SourcesDirectory, args[0])
			}

			opts := content.DefaultImportOptions()
			if sheet != "" {
				opts.SheetName = sheet
			}

			importer := content.NewImporter(app.contents)
			result, err := importer.Import(cmd.Context(), path, name, level, opts)
			if err != nil {
				return fmt.Errorf("importer.Import > %w", err)
			}

			fmt.Printf("Imported wordbook %q (ID %d): %d words imported, %d rows skipped.\n",
				result.Name, result.WordbookID, result.Imported, result.Skipped)
			for _, importError := range result.Errors {
				fmt.Printf("  warning: %s\n", importError)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", "", "Wordbook name (defaults to the file's own name)")
	cmd.Flags().StringVar(&level, "level", "", "Wordbook level label")
	cmd.Flags().StringVar(&sheet, "sheet", "", "Excel sheet name to read")

	return cmd
}
