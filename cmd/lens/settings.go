package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/gubicoo/lens/internal/cli"
	"github.com/gubicoo/lens/internal/common"
)

func settingsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "settings",
		Short: "Show and change preferences",
		RunE:  runSettingsShow,
	}

	set := &cobra.Command{
		Use:   "set",
		Short: "Change a preference",
		Long: `Change stored preferences. Currency is always USD and cannot be
changed.`,
		RunE: runSettingsSet,
	}
	set.Flags().String("theme", "", "color theme (light, dark)")
	set.Flags().String("language", "", "interface language code")
	set.Flags().String("region", "", "content region")
	cmd.AddCommand(set)

	return cmd
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	store, err := initStorage()
	if err != nil {
		return err
	}
	defer closeStorage(store)

	settings, err := store.GetSettings(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Println(cli.TitleStyle.Render("Settings"))
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "Theme\t%s\n", settings.Theme)
	fmt.Fprintf(w, "Language\t%s\n", settings.Language)
	fmt.Fprintf(w, "Currency\t%s\n", settings.Currency)
	fmt.Fprintf(w, "Region\t%s\n", settings.Region)
	return w.Flush()
}

func runSettingsSet(cmd *cobra.Command, _ []string) error {
	store, err := initStorage()
	if err != nil {
		return err
	}
	defer closeStorage(store)

	settings, err := store.GetSettings(cmd.Context())
	if err != nil {
		return err
	}

	changed := false
	if theme, _ := cmd.Flags().GetString("theme"); theme != "" {
		if theme != "light" && theme != "dark" {
			return common.NewUserError(
				fmt.Sprintf("Unknown theme %q, want light or dark.", theme),
				common.ErrInvalidConfig)
		}
		settings.Theme = theme
		changed = true
	}
	if language, _ := cmd.Flags().GetString("language"); language != "" {
		settings.Language = language
		changed = true
	}
	if region, _ := cmd.Flags().GetString("region"); region != "" {
		settings.Region = region
		changed = true
	}

	if !changed {
		return fmt.Errorf("nothing to change; pass --theme, --language, or --region")
	}

	if err := store.SaveSettings(cmd.Context(), settings); err != nil {
		return err
	}
	fmt.Println(cli.FormatSuccess("Settings saved."))
	return nil
}
