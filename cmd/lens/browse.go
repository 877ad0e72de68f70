package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gubicoo/lens/internal/browse"
	"github.com/gubicoo/lens/internal/cli"
	"github.com/gubicoo/lens/internal/common"
	"github.com/gubicoo/lens/internal/facets"
)

func browseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse tools by persona or curated question",
	}

	persona := &cobra.Command{
		Use:   "persona [persona-id]",
		Short: "Browse top tools for a predefined persona",
		Long: `Browse the top tools matched to a persona profile. With no argument
the available personas are listed. Use --help-with to widen the result
set with additional needs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runBrowsePersona,
	}
	persona.Flags().StringSlice("help-with", nil, "additional needs (writing, coding, design, video, automation, research, teaching)")
	cmd.AddCommand(persona)

	question := &cobra.Command{
		Use:   "question [text]",
		Short: "Browse top tools for a curated question",
		Long: `Browse the top tools for one of the curated questions. With no
argument the question catalog is listed by group.`,
		RunE: runBrowseQuestion,
	}
	cmd.AddCommand(question)

	return cmd
}

func runBrowsePersona(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		fmt.Println(cli.TitleStyle.Render("Personas"))
		for _, p := range facets.Personas {
			fmt.Printf("  %s  %s\n", cli.BoldStyle.Render(p.ID),
				cli.SubtleStyle.Render(p.Title+" · "+p.Helper))
		}
		return nil
	}

	p, ok := facets.PersonaByID(args[0])
	if !ok {
		return common.NewUserError(
			fmt.Sprintf("Unknown persona %q. Run 'lens browse persona' to list them.", args[0]),
			common.ErrInvalidConfig)
	}

	helpIDs, _ := cmd.Flags().GetStringSlice("help-with")
	var helpWith []facets.HelpWith
	for _, id := range helpIDs {
		h, ok := facets.HelpWithByID(id)
		if !ok {
			return common.NewUserError(
				fmt.Sprintf("Unknown help-with option %q.", id),
				common.ErrInvalidConfig)
		}
		helpWith = append(helpWith, h)
	}

	c, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	tools := browse.ForPersona(c, p, helpWith)
	fmt.Println(cli.TitleStyle.Render("Top tools for " + p.Title))
	cli.RenderToolList(os.Stdout, c, tools)
	return nil
}

func runBrowseQuestion(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		for _, g := range facets.QuestionGroups {
			fmt.Println(cli.TitleStyle.Render(g.Title))
			for _, q := range g.Questions {
				fmt.Println("  " + q.Text)
			}
		}
		return nil
	}

	text := strings.Join(args, " ")
	q, ok := facets.FindQuestion(text)
	if !ok {
		return common.NewUserError(
			fmt.Sprintf("Unknown question %q. Run 'lens browse question' to list them.", text),
			common.ErrInvalidConfig)
	}

	c, err := loadCatalog(cmd.Context())
	if err != nil {
		return err
	}

	tools := browse.ForQuestion(c, q)
	fmt.Println(cli.TitleStyle.Render(q.Text))
	cli.RenderToolList(os.Stdout, c, tools)
	return nil
}
