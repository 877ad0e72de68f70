package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/gubicoo/lens/internal/compare"
	"github.com/gubicoo/lens/internal/model"
	"github.com/gubicoo/lens/internal/normalize"
	"github.com/gubicoo/lens/internal/rank"
)

// RatingText formats a rating for display; unrated tools show N/A.
func RatingText(rating float64) string {
	if rating == 0 {
		return "N/A"
	}
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.2f", rating), "0"), ".")
}

// RenderToolList writes a tool table with rating, pricing, and category
// columns.
func RenderToolList(w io.Writer, c *model.Catalog, tools []model.Tool) {
	if len(tools) == 0 {
		fmt.Fprintln(w, SubtleStyle.Render("No tools found."))
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tRATING\tPRICING\tCATEGORY\tID")
	for _, t := range tools {
		v := normalize.NewView(t, c)
		fmt.Fprintf(tw, "%s\t%s %s\t%s\t%s\t%s\n",
			t.Name,
			StarIcon, RatingText(t.Rating),
			v.PricingType,
			v.CategoryName,
			t.ID,
		)
	}
	_ = tw.Flush()
}

// RenderRecommendation writes primary and optional picks plus the
// verdict line.
func RenderRecommendation(w io.Writer, c *model.Catalog, rec rank.Recommendation, verdict string) {
	fmt.Fprintln(w, TitleStyle.Render("Top picks"))
	renderPickList(w, c, rec.Primary)

	if len(rec.Optional) > 0 {
		fmt.Fprintln(w, TitleStyle.Render("Also worth a look"))
		renderPickList(w, c, rec.Optional)
	}

	if verdict != "" {
		fmt.Fprintln(w, SubtitleStyle.Render("Should you pay?"))
		fmt.Fprintln(w, verdict)
	}
}

func renderPickList(w io.Writer, c *model.Catalog, tools []model.Tool) {
	for i, t := range tools {
		v := normalize.NewView(t, c)
		summary := t.Summary()
		if summary == "" {
			summary = "AI tool to help with your workflow"
		}
		fmt.Fprintf(w, "%d. %s  %s\n", i+1, BoldStyle.Render(t.Name),
			SubtleStyle.Render(fmt.Sprintf("%s %s · %s", StarIcon, RatingText(t.Rating), v.PricingType)))
		fmt.Fprintf(w, "   %s\n", summary)
	}
	fmt.Fprintln(w)
}

// RenderMatrix writes the comparison matrix as a table, features down
// the side and tools across the top.
func RenderMatrix(w io.Writer, m compare.Matrix) {
	if len(m.Names) == 0 {
		fmt.Fprintln(w, SubtleStyle.Render("No tools to compare."))
		return
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "FEATURE\t%s\n", strings.Join(m.Names, "\t"))
	for _, row := range m.Rows {
		fmt.Fprintf(tw, "%s\t%s\n", row.Feature, strings.Join(row.Values, "\t"))
	}
	_ = tw.Flush()
}

// RenderCategories writes the category table with per-category tool
// counts.
func RenderCategories(w io.Writer, c *model.Catalog) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tTOOLS\tDESCRIPTION")
	for _, cat := range c.Categories {
		count := 0
		for _, t := range c.ValidTools() {
			if strings.EqualFold(strings.TrimSpace(t.Category), cat.ID) {
				count++
			}
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\n", cat.ID, cat.Name, count, cat.Description)
	}
	_ = tw.Flush()
}

// RenderToolDetail writes the full single-tool view.
func RenderToolDetail(w io.Writer, c *model.Catalog, t model.Tool, saved bool) {
	v := normalize.NewView(t, c)

	fmt.Fprintln(w, TitleStyle.Render(t.Name))
	fmt.Fprintln(w, SubtitleStyle.Render(v.CategoryName))

	if summary := t.Summary(); summary != "" {
		fmt.Fprintln(w, summary)
		fmt.Fprintln(w)
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Rating\t%s %s\n", StarIcon, RatingText(t.Rating))
	fmt.Fprintf(tw, "Pricing\t%s\n", v.PricingType)
	if text := normalize.FreeTierText(t); text != "" {
		fmt.Fprintf(tw, "Free tier\t%s\n", text)
	}
	if text := normalize.PaidTierText(t); text != "" {
		fmt.Fprintf(tw, "Paid tier\t%s\n", text)
	}
	if v.MonthlyPrice > 0 {
		fmt.Fprintf(tw, "Monthly price\t$%s\n", RatingText(v.MonthlyPrice))
	}
	if text := normalize.LimitsText(t); text != "" {
		fmt.Fprintf(tw, "Limits\t%s\n", text)
	}
	if len(t.BestFor) > 0 {
		fmt.Fprintf(tw, "Best for\t%s\n", strings.Join(t.BestFor, ", "))
	}
	if len(t.NotGoodFor) > 0 {
		fmt.Fprintf(tw, "Not great for\t%s\n", strings.Join(t.NotGoodFor, ", "))
	}
	if t.RecommendedFor != nil && len(t.RecommendedFor.Budget) > 0 {
		fmt.Fprintf(tw, "Budget range\t%s\n", strings.Join(formatBudgets(t.RecommendedFor.Budget), ", "))
	}
	_ = tw.Flush()

	if verdict := verdictText(t); verdict != "" {
		fmt.Fprintln(w, SubtitleStyle.Render("Verdict"))
		fmt.Fprintln(w, verdict)
	}

	if saved {
		fmt.Fprintln(w, SuccessStyle.Render(SavedIcon+" Saved to favorites"))
	}
}

func verdictText(t model.Tool) string {
	if t.Verdict != "" {
		return t.Verdict
	}
	if t.ShouldIPay != "" {
		return "Should you pay? " + t.ShouldIPay
	}
	return "No verdict available."
}

func formatBudgets(budgets []string) []string {
	labels := map[string]string{
		"free":   "Free",
		"low":    "Low ($0-$20/mo)",
		"medium": "Medium ($20-$100/mo)",
		"high":   "High ($100+/mo)",
	}
	out := make([]string, 0, len(budgets))
	for _, b := range budgets {
		if label, ok := labels[strings.ToLower(b)]; ok {
			out = append(out, label)
			continue
		}
		if b == "" {
			continue
		}
		out = append(out, strings.ToUpper(b[:1])+b[1:])
	}
	return out
}
