// Package score implements the weighted multi-criteria scorer behind the
// recommendation flows.
package score

import (
	"strings"

	"github.com/gubicoo/lens/internal/model"
	"github.com/gubicoo/lens/internal/normalize"
)

// Scoring weights. The values are empirically chosen for behavioral
// compatibility; do not rebalance them without product input.
const (
	weightGeneralPurpose = 4
	weightUseCase        = 5
	weightUserType       = 3
	weightBudget         = 2
	weightBudgetPartial  = 1
	weightCategory       = 2
	weightIndustry       = 1
	weightAILevel        = 1

	// lowBudgetCeiling is the monthly price up to which a tool still
	// counts as a "low" budget match.
	lowBudgetCeiling = 20
)

// GeneralPurposeIDs is the fixed allowlist of always-useful assistants.
// These receive a flat scoring bonus and back-fill sparse result sets.
var GeneralPurposeIDs = []string{"chatgpt", "claude", "perplexity"}

// IsGeneralPurpose reports whether the id is on the allowlist.
func IsGeneralPurpose(id string) bool {
	id = strings.ToLower(id)
	for _, g := range GeneralPurposeIDs {
		if g == id {
			return true
		}
	}
	return false
}

// Criteria captures a user's intent collected by the wizard flows.
// Zero-valued fields do not participate in scoring.
type Criteria struct {
	UserType        string
	UseCases        []string
	Budget          string
	PrimaryCategory string
	Industry        string
	AILevel         string
}

// Score computes the additive weighted score of a tool against the
// criteria. Every rule is evaluated independently; there is no early
// exit. Tools missing identity fields score 0 unconditionally.
func Score(t model.Tool, c *model.Catalog, crit Criteria) float64 {
	if !t.Valid() {
		return 0
	}

	v := normalize.NewView(t, c)
	score := t.Rating

	if IsGeneralPurpose(t.ID) {
		score += weightGeneralPurpose
	}

	if len(crit.UseCases) > 0 && anyUseCaseMatch(t, crit.UseCases) {
		score += weightUseCase
	}

	if crit.UserType != "" && contains(recommendedUserTypes(t), crit.UserType) {
		score += weightUserType
	}

	score += budgetScore(t, v, crit.Budget)

	if crit.PrimaryCategory != "" && t.Category == crit.PrimaryCategory {
		score += weightCategory
	}

	if crit.Industry != "" && contains(t.Industries(), crit.Industry) {
		score += weightIndustry
	}

	if crit.AILevel != "" && contains(recommendedAILevels(t), crit.AILevel) {
		score += weightAILevel
	}

	return score
}

// anyUseCaseMatch awards the use-case bonus at most once: the first
// requested use case that matches through any of the four paths (direct
// metadata membership, exact category equality, the category synonym
// table, or substring presence in descriptive text) is enough.
func anyUseCaseMatch(t model.Tool, useCases []string) bool {
	toolUseCases := t.UseCases()
	descriptive := strings.ToLower(t.Summary())
	name := strings.ToLower(t.Name)

	for _, uc := range useCases {
		ucLower := strings.ToLower(uc)

		for _, tuc := range toolUseCases {
			if strings.ToLower(tuc) == ucLower {
				return true
			}
		}

		if t.Category != "" && t.Category == uc {
			return true
		}

		if t.Category != "" && categoryMatchesUseCase(t.Category, ucLower) {
			return true
		}

		if ucLower != "" && (strings.Contains(descriptive, ucLower) || strings.Contains(name, ucLower)) {
			return true
		}
	}
	return false
}

// budgetScore awards the budget bonus from explicit metadata first, then
// falls back to pricing heuristics.
func budgetScore(t model.Tool, v normalize.View, budget string) float64 {
	if budget == "" {
		return 0
	}
	if t.RecommendedFor != nil && contains(t.RecommendedFor.Budget, budget) {
		return weightBudget
	}
	switch budget {
	case "free":
		if v.IsFree {
			return weightBudget
		}
	case "low":
		if v.MonthlyPrice > 0 && v.MonthlyPrice <= lowBudgetCeiling {
			return weightBudget
		}
	case "flexible":
		if v.MonthlyPrice > 0 {
			return weightBudgetPartial
		}
	}
	return 0
}

func recommendedUserTypes(t model.Tool) []string {
	if t.RecommendedFor == nil {
		return nil
	}
	return t.RecommendedFor.UserType
}

func recommendedAILevels(t model.Tool) []string {
	if t.RecommendedFor == nil {
		return nil
	}
	return t.RecommendedFor.AILevel
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
