package facets

// Question is one curated browse query. Its categories form a hard gate;
// its search terms must then match within the gated set.
type Question struct {
	Text        string
	SearchTerms []string
	Categories  []string
}

// QuestionGroup is a themed group of curated questions.
type QuestionGroup struct {
	Title     string
	Questions []Question
}

// QuestionGroups is the fixed curated-question catalog, in display order.
var QuestionGroups = []QuestionGroup{
	{
		Title: "For Professionals",
		Questions: []Question{
			{
				Text:        "Best AI tools for Students",
				SearchTerms: []string{"student", "education", "learning", "study", "homework", "essay", "research"},
				Categories:  []string{"writing", "chatbots", "productivity"},
			},
			{
				Text:        "Best AI tools for Entrepreneurs",
				SearchTerms: []string{"startup", "business", "entrepreneur", "founder", "marketing", "sales"},
				Categories:  []string{"writing", "seo", "productivity", "chatbots"},
			},
			{
				Text:        "Best AI tools for Teachers",
				SearchTerms: []string{"teacher", "education", "lesson", "curriculum", "teaching", "classroom"},
				Categories:  []string{"education", "writing", "productivity", "chatbots"},
			},
			{
				Text:        "Best AI tools for Developers",
				SearchTerms: []string{"coding", "programming", "developer", "code", "software", "app"},
				Categories:  []string{"coding", "productivity"},
			},
			{
				Text:        "Best AI tools for Writers",
				SearchTerms: []string{"writing", "content", "blog", "article", "copywriting", "editor"},
				Categories:  []string{"writing", "chatbots"},
			},
			{
				Text:        "Best AI tools for Marketers",
				SearchTerms: []string{"marketing", "seo", "social", "campaign", "advertising", "content"},
				Categories:  []string{"seo", "writing", "image", "video"},
			},
		},
	},
	{
		Title: "For Industries",
		Questions: []Question{
			{
				Text:        "Best AI tools for Healthcare",
				SearchTerms: []string{"healthcare", "medical", "hospital", "patient", "clinical", "health"},
				Categories:  []string{"chatbots", "productivity", "writing"},
			},
			{
				Text:        "Best AI tools for Education",
				SearchTerms: []string{"education", "school", "university", "learning", "teaching", "student"},
				Categories:  []string{"education", "writing", "chatbots", "productivity", "video"},
			},
			{
				Text:        "Best AI tools for E-commerce",
				SearchTerms: []string{"ecommerce", "online", "store", "retail", "shopping", "sales"},
				Categories:  []string{"seo", "image", "writing", "productivity"},
			},
		},
	},
	{
		Title: "For Specific Tasks",
		Questions: []Question{
			{
				Text:        "Best AI tools for Content Creation",
				SearchTerms: []string{"content", "create", "generate", "produce", "creative"},
				Categories:  []string{"writing", "image", "video"},
			},
			{
				Text:        "Best AI tools for Video Editing",
				SearchTerms: []string{"video", "edit", "production", "film", "movie", "clip"},
				Categories:  []string{"video"},
			},
			{
				Text:        "Best AI tools for Image Generation",
				SearchTerms: []string{"image", "generate", "art", "picture", "photo", "visual"},
				Categories:  []string{"image", "3d"},
			},
			{
				Text:        "Best AI tools for SEO",
				SearchTerms: []string{"seo", "search", "optimization", "ranking", "keywords"},
				Categories:  []string{"seo", "writing"},
			},
		},
	},
}

// FindQuestion looks a question up by its display text.
func FindQuestion(text string) (Question, bool) {
	for _, g := range QuestionGroups {
		for _, q := range g.Questions {
			if q.Text == text {
				return q, true
			}
		}
	}
	return Question{}, false
}
