// Package facets holds the static parameter tables that drive matching
// and scoring: persona profiles, help-with options, curated questions,
// and the wizard answer mappings. Versioned by code, never mutated.
package facets

// PricingPreference is a persona's default pricing appetite.
type PricingPreference string

const (
	// PreferFree favors fully free tools.
	PreferFree PricingPreference = "free"
	// PreferFreemium favors tools with a usable free tier.
	PreferFreemium PricingPreference = "freemium"
	// PreferPaid expresses no preference among results.
	PreferPaid PricingPreference = "paid"
)

// Persona is a predefined user-type profile driving default search terms,
// categories, and pricing preference.
type Persona struct {
	ID               string
	Title            string
	Helper           string
	SearchTerms      []string
	Categories       []string
	PreferredPricing PricingPreference
}

// Personas is the fixed persona list, in display order.
var Personas = []Persona{
	{
		ID:               "student",
		Title:            "Student / Personal use",
		Helper:           "Learning, experimenting, daily tasks",
		SearchTerms:      []string{"student", "education", "learning", "personal", "study", "homework"},
		Categories:       []string{"writing", "chatbots", "productivity"},
		PreferredPricing: PreferFree,
	},
	{
		ID:               "startup",
		Title:            "Startup / Founder",
		Helper:           "Building products, MVPs, growth",
		SearchTerms:      []string{"startup", "business", "founder", "entrepreneur", "mvp", "growth"},
		Categories:       []string{"writing", "seo", "productivity", "chatbots", "coding"},
		PreferredPricing: PreferFreemium,
	},
	{
		ID:               "business",
		Title:            "Business / Organisation",
		Helper:           "Teams, processes, scale",
		SearchTerms:      []string{"business", "enterprise", "organization", "team", "corporate", "scale"},
		Categories:       []string{"productivity", "chatbots", "coding", "seo"},
		PreferredPricing: PreferPaid,
	},
	{
		ID:               "developer",
		Title:            "Developer / Tech team",
		Helper:           "Coding, automation, APIs",
		SearchTerms:      []string{"coding", "developer", "programming", "tech", "automation", "api", "code"},
		Categories:       []string{"coding", "productivity"},
		PreferredPricing: PreferFreemium,
	},
	{
		ID:               "creator",
		Title:            "Creator / Designer",
		Helper:           "Content, design, video",
		SearchTerms:      []string{"design", "creative", "content", "video", "image", "visual", "art"},
		Categories:       []string{"image", "video", "3d", "writing"},
		PreferredPricing: PreferFreemium,
	},
	{
		ID:               "teacher",
		Title:            "Teacher / Educator",
		Helper:           "Lesson planning, teaching, classroom",
		SearchTerms:      []string{"teacher", "education", "teaching", "lesson", "curriculum", "classroom", "educator"},
		Categories:       []string{"education", "writing", "productivity"},
		PreferredPricing: PreferFreemium,
	},
}

// PersonaByID returns the persona with the given id.
func PersonaByID(id string) (Persona, bool) {
	for _, p := range Personas {
		if p.ID == id {
			return p, true
		}
	}
	return Persona{}, false
}
