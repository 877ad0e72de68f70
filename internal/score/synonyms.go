package score

import "strings"

// categorySynonyms maps each catalog category to the use-case terms it is
// considered equivalent to. The table is consulted in both directions:
// a requested use case matches a tool when it is a synonym of the tool's
// category, and vice versa.
var categorySynonyms = map[string][]string{
	"coding":       {"coding", "development", "code"},
	"writing":      {"writing", "content", "text"},
	"image":        {"design", "image", "graphic", "art"},
	"video":        {"video", "editing", "production"},
	"productivity": {"automation", "productivity", "workflow"},
	"chatbots":     {"research", "chatbot", "assistant", "ai"},
	"seo":          {"marketing", "seo", "promotion"},
}

// categoryMatchesUseCase reports whether the category and use case fall in
// the same equivalence class.
func categoryMatchesUseCase(category, useCase string) bool {
	uc := strings.ToLower(useCase)
	for _, syn := range categorySynonyms[category] {
		if syn == uc {
			return true
		}
	}
	return false
}
