package model

// PricingType is the flat pricing classification of a tool.
type PricingType string

const (
	// PricingFree marks tools with no paid plan at all.
	PricingFree PricingType = "Free"
	// PricingFreemium marks tools with both a free tier and paid plans.
	PricingFreemium PricingType = "Freemium"
	// PricingPaid marks tools without a usable free tier.
	PricingPaid PricingType = "Paid"
)

// FreePlan is the legacy nested description of a tool's free tier.
type FreePlan struct {
	Available bool   `json:"available"`
	Limits    string `json:"limits,omitempty"`
}

// PaidPlan is the legacy nested description of a tool's paid tier.
type PaidPlan struct {
	Monthly  float64 `json:"monthly,omitempty"`
	Yearly   float64 `json:"yearly,omitempty"`
	Benefits string  `json:"benefits,omitempty"`
}

// Pricing is the legacy nested pricing structure. Newer records carry the
// flat PricingType field instead; both shapes appear in the same dataset.
type Pricing struct {
	Free *FreePlan `json:"free,omitempty"`
	Paid *PaidPlan `json:"paid,omitempty"`
}

// RecommendedFor holds the optional recommendation metadata of a tool.
type RecommendedFor struct {
	UserType   []string `json:"userType,omitempty"`
	Industries []string `json:"industries,omitempty"`
	UseCases   []string `json:"useCases,omitempty"`
	AILevel    []string `json:"aiLevel,omitempty"`
	Budget     []string `json:"budget,omitempty"`
}

// Tool represents one catalog entry.
type Tool struct {
	ID           string      `json:"id"`
	Name         string      `json:"name"`
	Category     string      `json:"category,omitempty"`
	CategoryName string      `json:"categoryName,omitempty"`
	Purpose      string      `json:"purpose,omitempty"`
	Description  string      `json:"description,omitempty"`
	PricingType  PricingType `json:"pricingType,omitempty"`
	FreeTier     string      `json:"freeTier,omitempty"`
	PaidTier     string      `json:"paidTier,omitempty"`
	Limits       string      `json:"limits,omitempty"`

	// Pricing is the legacy nested shape, still present on older records.
	Pricing *Pricing `json:"pricing,omitempty"`

	// Rating is the editorial quality signal. Zero means "not rated";
	// sorting treats it as 0, display shows N/A.
	Rating float64 `json:"rating,omitempty"`

	RecommendedFor *RecommendedFor `json:"recommendedFor,omitempty"`

	BestFor    []string `json:"bestFor,omitempty"`
	NotGoodFor []string `json:"notGoodFor,omitempty"`
	ShouldIPay string   `json:"shouldIPay,omitempty"`
	Verdict    string   `json:"verdict,omitempty"`

	Icon   string `json:"icon,omitempty"`
	Domain string `json:"domain,omitempty"`
}

// Valid reports whether the tool carries the identity fields required for
// any listing, matching, or scoring operation.
func (t Tool) Valid() bool {
	return t.ID != "" && t.Name != ""
}

// Summary returns the descriptive text of the tool; purpose takes
// precedence over description.
func (t Tool) Summary() string {
	if t.Purpose != "" {
		return t.Purpose
	}
	return t.Description
}

// UseCases returns the recommended use cases, or nil when the metadata
// block is absent.
func (t Tool) UseCases() []string {
	if t.RecommendedFor == nil {
		return nil
	}
	return t.RecommendedFor.UseCases
}

// Industries returns the recommended industries, or nil when absent.
func (t Tool) Industries() []string {
	if t.RecommendedFor == nil {
		return nil
	}
	return t.RecommendedFor.Industries
}
