// Package share assembles the outbound text forms of a generation result:
// the WhatsApp-style transcript and the prefilled share link.
package share

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/pageza/snapdish/backend/internal/model"
)

// TranscriptTitle is the fixed first line of every transcript.
const TranscriptTitle = "🍳 SnapDish Recipes"

// Transcript renders a generation result as a single shareable text blob.
// Recipes appear in the order supplied; the output is a pure function of its
// input, so recomputing it never changes the text.
func Transcript(result *model.GenerationResult) string {
	blocks := []string{TranscriptTitle}

	if result.Summary != "" {
		blocks = append(blocks, result.Summary)
	}

	for i, recipe := range result.Recipes {
		var b strings.Builder
		fmt.Fprintf(&b, "*%d. %s*\n", i+1, recipe.Name)
		b.WriteString(recipe.Description)
		b.WriteString("\n\n_Ingredients_:\n")
		for _, ing := range recipe.Ingredients {
			fmt.Fprintf(&b, "- %s\n", ing)
		}
		b.WriteString("\n_Steps_:\n")
		for j, step := range recipe.Steps {
			fmt.Fprintf(&b, "%d. %s\n", j+1, step)
		}
		blocks = append(blocks, strings.TrimRight(b.String(), "\n"))
	}

	return strings.Join(blocks, "\n\n")
}

// WhatsAppLink returns a wa.me URL prefilled with the given text.
func WhatsAppLink(text string) string {
	return "https://wa.me/?text=" + url.QueryEscape(text)
}
