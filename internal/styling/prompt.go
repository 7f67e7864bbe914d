package styling

import (
	"fmt"
	"strings"
)

// buildInstruction wraps the user's free-text prompt in the fixed styling
// contract: CSS only, a closed set of page targets, and a demand for results
// that are obviously visible.
func buildInstruction(userPrompt string) string {
	return fmt.Sprintf(`Generate CSS styling for a data dashboard based on this request: %s

Return ONLY CSS code. No explanations, no prose, no markdown code fences.

The CSS may style only these page targets:
- h1 (the dashboard heading)
- .card and .card-header (the panel containers)
- select (the filter dropdown inputs)
- .select-group (the dropdown widgets)
- textarea (the styling prompt input)
- button (the buttons)
- .plot-frame (the chart frames)
- table, th, td (the data tables)
- .pagination (the grid paging controls)
- .grid-wrap (the grid container)
- .form-group (the label and control groups)

Make the result dramatic and visually obvious: bright colors and borders.`, userPrompt)
}

// stripFences removes literal markdown code-fence markers from the payload.
// Inner whitespace is preserved untouched.
func stripFences(s string) string {
	s = strings.ReplaceAll(s, "```css", "")
	return strings.ReplaceAll(s, "```", "")
}
