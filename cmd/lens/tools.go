package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gubicoo/lens/internal/cli"
	"github.com/gubicoo/lens/internal/common"
	"github.com/gubicoo/lens/internal/model"
	"github.com/gubicoo/lens/internal/search"
)

func toolsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tools",
		Short: "List and inspect catalog tools",
		RunE:  runToolsList,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show <tool-id>",
		Short: "Show the full detail view of a tool",
		Args:  cobra.ExactArgs(1),
		RunE:  runToolShow,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "trending",
		Short: "Show the top rated tools",
		RunE:  runToolsTrending,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "featured",
		Short: "Show the featured tools",
		RunE:  runToolsFeatured,
	})

	return cmd
}

func runToolsList(cmd *cobra.Command, _ []string) error {
	c, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Println(cli.TitleStyle.Render("All tools"))
	cli.RenderToolList(os.Stdout, c, search.All(c))
	return nil
}

func runToolShow(cmd *cobra.Command, args []string) error {
	c, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	t, ok := c.ToolByID(args[0])
	if !ok {
		return common.NewUserError(
			fmt.Sprintf("No tool with id %q in the catalog.", args[0]),
			common.ErrToolNotFound)
	}

	saved := false
	store := tryStorage()
	defer closeStorage(store)
	if store != nil {
		saved, err = store.IsToolSaved(cmd.Context(), t.ID)
		if err != nil {
			return err
		}
	}

	cli.RenderToolDetail(os.Stdout, c, t, saved)
	return nil
}

func runToolsTrending(cmd *cobra.Command, _ []string) error {
	return runTopList(cmd.Context(), "Trending now", search.Trending)
}

func runToolsFeatured(cmd *cobra.Command, _ []string) error {
	return runTopList(cmd.Context(), "Featured tools", search.Featured)
}

func runTopList(ctx context.Context, title string, pick func(c *model.Catalog) []model.Tool) error {
	c, err := loadCatalog(ctx)
	if err != nil {
		return err
	}

	fmt.Println(cli.TitleStyle.Render(title))
	cli.RenderToolList(os.Stdout, c, pick(c))
	return nil
}
