// Package recommend orchestrates the quick and guided recommendation
// flows: answer mapping, scoring, ranking with backfill, and the
// should-you-pay verdict.
package recommend

import (
	"log/slog"

	"github.com/gubicoo/lens/internal/facets"
	"github.com/gubicoo/lens/internal/model"
	"github.com/gubicoo/lens/internal/normalize"
	"github.com/gubicoo/lens/internal/rank"
	"github.com/gubicoo/lens/internal/score"
	"github.com/gubicoo/lens/internal/wizard"
)

const (
	defaultBudget  = "free"
	defaultAILevel = "beginner"
)

// Result is a completed recommendation run.
type Result struct {
	Recommendation rank.Recommendation
	// UserType is the canonical user type the answers mapped to.
	UserType string
	// Verdict is the should-you-pay summary for the result set.
	Verdict string
}

// Quick produces recommendations from the two-question flow. Use-case
// answers are mapped onto catalog categories for the initial scoring
// pass; the backfill re-score widens to the union of mapped and raw
// answers.
func Quick(c *model.Catalog, answers wizard.QuickAnswers) Result {
	userType := facets.MapUserType(facets.QuickUserTypes, answers.UserType)
	mapped := facets.MapUseCases(facets.QuickUseCases, answers.UseCases)
	combined := facets.Union(mapped, answers.UseCases)

	crit := score.Criteria{
		UserType: userType,
		UseCases: mapped,
		Budget:   defaultBudget,
	}
	if len(mapped) > 0 {
		crit.PrimaryCategory = mapped[0]
	}

	rescoreCrit := crit
	rescoreCrit.UseCases = combined

	return run(c, crit, rescoreCrit, userType)
}

// Guided produces recommendations from the five-question flow. Needs are
// mapped onto catalog categories and both scoring passes use the union
// of mapped and raw answers. Unanswered budget and experience level fall
// back to defaults.
func Guided(c *model.Catalog, answers wizard.GuidedAnswers) Result {
	userType := facets.MapUserType(facets.GuidedOrgTypes, answers.OrgType)
	mapped := facets.MapUseCases(facets.GuidedNeeds, answers.Needs)
	combined := facets.Union(mapped, answers.Needs)

	budget := answers.Budget
	if budget == "" {
		budget = defaultBudget
	}
	aiLevel := answers.AILevel
	if aiLevel == "" {
		aiLevel = defaultAILevel
	}

	crit := score.Criteria{
		UserType: userType,
		UseCases: combined,
		Budget:   budget,
		Industry: answers.Industry,
		AILevel:  aiLevel,
	}
	if len(mapped) > 0 {
		crit.PrimaryCategory = mapped[0]
	}

	return run(c, crit, crit, userType)
}

func run(c *model.Catalog, crit, rescoreCrit score.Criteria, userType string) Result {
	scored := make([]rank.Scored, 0, len(c.Tools))
	for _, t := range c.ValidTools() {
		s := score.Score(t, c, crit)
		if s <= 0 {
			continue
		}
		scored = append(scored, rank.Scored{Tool: t, Score: s})
	}
	rank.SortScored(scored)

	slog.Debug("scored recommendation candidates",
		"candidates", len(scored),
		"user_type", userType,
	)

	rec := rank.TopWithBackfill(scored, c, func(t model.Tool) float64 {
		return score.Score(t, c, rescoreCrit)
	})

	return Result{
		Recommendation: rec,
		UserType:       userType,
		Verdict:        Verdict(userType, rec.Primary, c),
	}
}

// Verdict returns the canned should-you-pay summary for the mapped user
// type. Personal users with a free-tier tool among the primary picks are
// told to hold off.
func Verdict(userType string, primary []model.Tool, c *model.Catalog) string {
	hasFree := false
	for _, t := range primary {
		if normalize.NewView(t, c).IsFreemium {
			hasFree = true
			break
		}
	}

	switch {
	case userType == "personal" && hasFree:
		return "Not yet. Start with free tools. Upgrade only when you're using AI tools regularly (weekly or more)."
	case userType == "startup":
		return "Yes, but selectively. Pay for tools that directly impact revenue (like ChatGPT for content, Cursor for coding). Avoid expensive tools until you have 50+ customers."
	case userType == "enterprise":
		return "Yes. For teams, paid tools provide better collaboration, support, and reliability. The ROI is clear for established organizations."
	default:
		return "Consider it. If you use AI tools regularly, paid plans offer better features and limits. Start with one tool and expand as needed."
	}
}
