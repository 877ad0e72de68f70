package facets

// QuickUserTypes maps a quick-flow audience answer onto the canonical
// user type used by recommendation metadata.
var QuickUserTypes = map[string]string{
	"personal":   "personal",
	"startup":    "startup",
	"enterprise": "enterprise",
	"developer":  "startup",
	"creator":    "personal",
	"analyst":    "personal",
}

// QuickUseCases maps a quick-flow use-case answer onto a catalog
// category id. Answers absent from the map pass through unchanged.
var QuickUseCases = map[string]string{
	"writing":    "writing",
	"coding":     "coding",
	"design":     "image",
	"video":      "video",
	"automation": "productivity",
	"research":   "chatbots",
	"marketing":  "seo",
	"support":    "chatbots",
}

// GuidedOrgTypes maps a guided-flow organisation size answer onto the
// canonical user type.
var GuidedOrgTypes = map[string]string{
	"individual":     "personal",
	"startup-0-10":   "startup",
	"startup-10-50":  "startup",
	"sme-50-200":     "enterprise",
	"enterprise-200": "enterprise",
}

// GuidedNeeds maps a guided-flow needs answer onto a catalog category id.
// Answers absent from the map pass through unchanged.
var GuidedNeeds = map[string]string{
	"coding":        "coding",
	"writing":       "writing",
	"design":        "image",
	"support":       "chatbots",
	"documentation": "writing",
	"sales":         "productivity",
	"automation":    "productivity",
	"analysis":      "productivity",
	"video":         "video",
}

// MapUserType resolves an answer through the given table, defaulting to
// "personal" for unknown answers.
func MapUserType(table map[string]string, answer string) string {
	if mapped, ok := table[answer]; ok {
		return mapped
	}
	return "personal"
}

// MapUseCases resolves each answer through the given table, passing
// unmapped non-empty answers through unchanged.
func MapUseCases(table map[string]string, answers []string) []string {
	out := make([]string, 0, len(answers))
	for _, a := range answers {
		if mapped, ok := table[a]; ok {
			out = append(out, mapped)
			continue
		}
		if a != "" {
			out = append(out, a)
		}
	}
	return out
}

// Union merges the two lists preserving first-seen order and dropping
// duplicates and empty strings.
func Union(a, b []string) []string {
	seen := make(map[string]bool, len(a)+len(b))
	out := make([]string, 0, len(a)+len(b))
	for _, v := range append(append([]string{}, a...), b...) {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
