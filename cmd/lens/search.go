package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gubicoo/lens/internal/cli"
	"github.com/gubicoo/lens/internal/search"
)

func searchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "search <query>",
		Short: "Search the catalog by keyword",
		Long: `Search tool names, descriptions, categories, and ids for the given
keyword. Results are ordered by rating and capped at the top 10.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runSearch,
	}
}

func runSearch(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	query := strings.Join(args, " ")
	results := search.Keyword(c, query)

	if len(results) == 0 {
		fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("No tools matched %q.", query)))
		return nil
	}

	fmt.Println(cli.TitleStyle.Render(fmt.Sprintf("Results for %q", query)))
	cli.RenderToolList(os.Stdout, c, results)
	return nil
}
