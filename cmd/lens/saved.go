package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gubicoo/lens/internal/cli"
	"github.com/gubicoo/lens/internal/common"
)

func savedCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "saved",
		Short: "Manage your saved tools",
		RunE:  runSavedList,
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "add <tool-id>",
		Short: "Save a tool to favorites",
		Args:  cobra.ExactArgs(1),
		RunE:  runSavedAdd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "remove <tool-id>",
		Short: "Remove a tool from favorites",
		Args:  cobra.ExactArgs(1),
		RunE:  runSavedRemove,
	})

	return cmd
}

func runSavedList(cmd *cobra.Command, _ []string) error {
	c, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	store, err := initStorage()
	if err != nil {
		return err
	}
	defer closeStorage(store)

	tools, err := store.SavedTools(cmd.Context(), c)
	if err != nil {
		return err
	}

	if len(tools) == 0 {
		fmt.Println(cli.InfoStyle.Render("No saved tools yet. Use 'lens saved add <tool-id>'."))
		return nil
	}

	fmt.Println(cli.TitleStyle.Render(cli.SavedIcon + " Saved tools"))
	cli.RenderToolList(os.Stdout, c, tools)
	return nil
}

func runSavedAdd(cmd *cobra.Command, args []string) error {
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

	store, err := initStorage()
	if err != nil {
		return err
	}
	defer closeStorage(store)

	if err := store.SaveTool(cmd.Context(), t.ID); err != nil {
		return err
	}
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Saved %s.", t.Name)))
	return nil
}

func runSavedRemove(cmd *cobra.Command, args []string) error {
	store, err := initStorage()
	if err != nil {
		return err
	}
	defer closeStorage(store)

	if err := store.RemoveTool(cmd.Context(), args[0]); err != nil {
		return err
	}
	fmt.Println(cli.FormatSuccess(fmt.Sprintf("Removed %s from favorites.", args[0])))
	return nil
}
