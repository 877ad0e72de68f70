package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/gubicoo/lens/internal/catalog"
	"github.com/gubicoo/lens/internal/cli"
)

func catalogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "catalog",
		Short: "Inspect the catalog dataset",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "check",
		Short: "Validate the catalog dataset",
		Long: `Walk every record in the dataset and report how many would be
skipped by listings because of missing identity fields.`,
		RunE: runCatalogCheck,
	})

	return cmd
}

func runCatalogCheck(cmd *cobra.Command, _ []string) error {
	c, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	total := len(c.Categories) + len(c.Tools)
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Checking catalog...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(os.Stderr); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)

	for range c.Categories {
		_ = bar.Add(1)
	}
	for range c.Tools {
		_ = bar.Add(1)
	}

	chk := catalog.Inspect(c)
	fmt.Printf("Categories: %d (%d skipped)\n", chk.Categories, chk.SkippedCategories)
	fmt.Printf("Tools:      %d (%d skipped)\n", chk.Tools, chk.SkippedTools)

	if chk.SkippedCategories == 0 && chk.SkippedTools == 0 {
		fmt.Println(cli.FormatSuccess("Catalog is clean."))
	} else {
		fmt.Println(cli.FormatWarning("Some records are missing identity fields and will be skipped."))
	}
	return nil
}
