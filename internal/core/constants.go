package core

// Option pairs a wire value with its display label.
type Option struct {
	Value string
	Label string
}

// VideoTypes lists the video categories the generator understands.
var VideoTypes = []Option{
	{Value: "product_review", Label: "Product Review"},
	{Value: "knowledge", Label: "Educational"},
	{Value: "vlog", Label: "Vlog Diary"},
	{Value: "comedy", Label: "Comedy Skit"},
	{Value: "food", Label: "Cooking"},
	{Value: "makeup", Label: "Makeup Tutorial"},
	{Value: "movie", Label: "Movie Commentary"},
	{Value: "unboxing", Label: "Unboxing"},
	{Value: "skill", Label: "Skill Teaching"},
}

// StylePreferences lists the tone options for generation.
var StylePreferences = []Option{
	{Value: "humorous", Label: "Humorous"},
	{Value: "professional", Label: "Professional"},
	{Value: "cute", Label: "Friendly"},
	{Value: "passionate", Label: "High Energy"},
	{Value: "emotional", Label: "Heartfelt"},
	{Value: "suspenseful", Label: "Suspenseful"},
}

// VideoTypeLabel returns the display label for a video type value, falling
// back to the raw value when it is unknown.
func VideoTypeLabel(value string) string {
	return optionLabel(VideoTypes, value)
}

// StyleLabel returns the display label for a style value, falling back to the
// raw value when it is unknown.
func StyleLabel(value string) string {
	return optionLabel(StylePreferences, value)
}

func optionLabel(opts []Option, value string) string {
	for _, o := range opts {
		if o.Value == value {
			return o.Label
		}
	}
	return value
}
