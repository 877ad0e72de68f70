package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gubicoo/lens/internal/cli"
	"github.com/gubicoo/lens/internal/search"
)

func categoriesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List catalog categories",
		RunE:  runCategories,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "tools <category-id>",
		Short: "List every tool in a category",
		Args:  cobra.ExactArgs(1),
		RunE:  runCategoryTools,
	})

	return cmd
}

func runCategories(cmd *cobra.Command, _ []string) error {
	c, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Println(cli.TitleStyle.Render(cli.CategoryIcon + " Categories"))
	cli.RenderCategories(os.Stdout, c)
	return nil
}

func runCategoryTools(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	tools := search.ByCategory(c, args[0])
	if len(tools) == 0 {
		fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("No tools in category %q.", args[0])))
		return nil
	}

	name := c.CategoryName(args[0])
	if name == "" {
		name = args[0]
	}
	fmt.Println(cli.TitleStyle.Render(name))
	cli.RenderToolList(os.Stdout, c, tools)
	return nil
}
