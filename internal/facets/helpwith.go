package facets

// HelpWith is one multi-selectable "what do you need help with" option.
// Selecting it widens a persona browse with additional categories.
type HelpWith struct {
	ID         string
	Label      string
	Categories []string
}

// HelpWithOptions is the fixed option list, in display order.
var HelpWithOptions = []HelpWith{
	{ID: "writing", Label: "Writing", Categories: []string{"writing", "chatbots"}},
	{ID: "coding", Label: "Coding", Categories: []string{"coding"}},
	{ID: "design", Label: "Design", Categories: []string{"image", "3d"}},
	{ID: "video", Label: "Video", Categories: []string{"video"}},
	{ID: "automation", Label: "Automation", Categories: []string{"productivity"}},
	{ID: "research", Label: "Research", Categories: []string{"chatbots", "productivity"}},
	{ID: "teaching", Label: "Teaching", Categories: []string{"education", "writing", "productivity"}},
}

// HelpWithByID returns the option with the given id.
func HelpWithByID(id string) (HelpWith, bool) {
	for _, h := range HelpWithOptions {
		if h.ID == id {
			return h, true
		}
	}
	return HelpWith{}, false
}
