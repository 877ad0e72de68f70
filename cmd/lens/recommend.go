package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/gubicoo/lens/internal/cli"
	"github.com/gubicoo/lens/internal/recommend"
	"github.com/gubicoo/lens/internal/tui"
	"github.com/gubicoo/lens/internal/wizard"
)

func recommendCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Get ranked tool recommendations",
		Long: `Answer a few questions and get up to five tools ranked for your
situation. By default an interactive wizard runs; pass answers as flags
to skip it.

Quick mode needs --user-type and --use-case. Guided mode needs
--org-type plus --need, and optionally --industry, --budget, and
--ai-level.`,
		RunE: runRecommend,
	}

	cmd.Flags().String("user-type", "", "quick mode: who the tools are for (personal, startup, enterprise, developer, creator, analyst)")
	cmd.Flags().StringSlice("use-case", nil, "quick mode: what you want to do (writing, coding, design, video, automation, research, marketing, support)")
	cmd.Flags().String("org-type", "", "guided mode: organisation size (individual, startup-0-10, startup-10-50, sme-50-200, enterprise-200)")
	cmd.Flags().StringSlice("need", nil, "guided mode: what you need help with")
	cmd.Flags().String("industry", "", "guided mode: your industry")
	cmd.Flags().String("budget", "", "guided mode: monthly budget (free, low, medium, high)")
	cmd.Flags().String("ai-level", "", "guided mode: AI experience (beginner, intermediate, advanced)")

	return cmd
}

func runRecommend(cmd *cobra.Command, _ []string) error {
	c, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	userType, _ := cmd.Flags().GetString("user-type")
	useCases, _ := cmd.Flags().GetStringSlice("use-case")
	orgType, _ := cmd.Flags().GetString("org-type")
	needs, _ := cmd.Flags().GetStringSlice("need")

	switch {
	case userType != "" && len(useCases) > 0:
		result := recommend.Quick(c, wizard.QuickAnswers{
			UserType: userType,
			UseCases: useCases,
		})
		cli.RenderRecommendation(os.Stdout, c, result.Recommendation, result.Verdict)
		return nil

	case orgType != "" && len(needs) > 0:
		industry, _ := cmd.Flags().GetString("industry")
		budget, _ := cmd.Flags().GetString("budget")
		aiLevel, _ := cmd.Flags().GetString("ai-level")

		result := recommend.Guided(c, wizard.GuidedAnswers{
			OrgType:  orgType,
			Industry: industry,
			Needs:    needs,
			Budget:   budget,
			AILevel:  aiLevel,
		})
		cli.RenderRecommendation(os.Stdout, c, result.Recommendation, result.Verdict)
		return nil

	case userType != "" || len(useCases) > 0 || orgType != "" || len(needs) > 0:
		return fmt.Errorf("quick mode needs --user-type and --use-case; guided mode needs --org-type and --need")
	}

	// No flags: run the interactive wizard.
	program := tea.NewProgram(tui.New(c))
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("wizard failed: %w", err)
	}
	return nil
}
