package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gubicoo/lens/internal/cli"
	"github.com/gubicoo/lens/internal/compare"
)

func compareCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare <tool-id> <tool-id> [tool-id...]",
		Short: "Compare tools side by side",
		Long: `Compare between 2 and 5 tools feature by feature. Use --category to
compare every tool in a category instead, or --category all for the
whole catalog.`,
		RunE: runCompare,
	}

	cmd.Flags().String("category", "", "compare every tool in this category (or 'all')")

	return cmd
}

func runCompare(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	category, _ := cmd.Flags().GetString("category")

	var m compare.Matrix
	if category != "" {
		m = compare.ByCategory(c, category)
	} else {
		m, err = compare.Select(c, args)
		if err != nil {
			return err
		}
	}

	fmt.Println(cli.TitleStyle.Render("Comparison"))
	cli.RenderMatrix(os.Stdout, m)
	return nil
}
