package assistant

import (
	"fmt"
	"strings"

	"github.com/insightsource/catalog/internal/catalog/report"
)

const promptHeader = `You are the IntelliSource catalog assistant. You help visitors of the IntelliSource Reports store find the market research report that fits their question.

Reports currently for sale:
`

const promptRules = `
Answer using only the reports listed above.
- When asked about a topic, name the most relevant report titles with a one-sentence summary and the price.
- If nothing in the list fits, say so and suggest the closest category instead of inventing a report.
- Keep answers short and conversational.
- You may point the visitor to a report page by its title.
`

// BuildContext renders the system instruction for the given catalog snapshot.
func BuildContext(reports []*report.Report) string {
	var builder strings.Builder
	builder.WriteString(promptHeader)

	if len(reports) == 0 {
		builder.WriteString("(no reports are listed right now)\n")
	}

	for _, r := range reports {
		categoryName := "Uncategorized"
		if r.Category != nil && r.Category.Name != "" {
			categoryName = r.Category.Name
		}

		fmt.Fprintf(&builder, "- ID: %s, Title: %s, Summary: %s (Category: %s, Price: $%.2f)\n",
			r.ID, r.Title, oneLine(r.Summary), categoryName, r.Price)
	}

	builder.WriteString(promptRules)
	return builder.String()
}

// oneLine collapses whitespace so each report stays on a single prompt line.
func oneLine(text string) string {
	return strings.Join(strings.Fields(text), " ")
}
