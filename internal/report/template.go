package report

import "fmt"

// Sections lists the headings every finished report must contain, in order.
var Sections = []string{
	"Executive Summary",
	"1. Company Overview",
	"2. Financial Highlights & Trends",
	"3. Key News & Corporate Events (Last 12 Months)",
	"4. Public & Social Sentiment Overview",
	"5. Market & Competitive Context",
	"6. Key Observations & Synthesis (Analyst Notes)",
	"7. Opportunities & Risks",
	"Sources",
}

const instructions = `Produce a comprehensive, structured investment research report for a financial professional (e.g., an investment banker or analyst).

Use this exact Markdown structure:

# Investment Research Report: [Company Name]
## Executive Summary
[4-6 paragraphs capturing market positioning, recent financial performance, key positive and negative narratives, top opportunities and risks, and a final analyst's take.]
## 1. Company Overview
### Business Description
### Key Profile Details
[Table: Industry / Sector, Geographic Presence, Management Overview, Core Products/Services.]
## 2. Financial Highlights & Trends
### Revenue & Profitability Direction
### Balance Sheet & Financial Health
[Interpret trends; do not dump raw numbers. Call out highlights and red flags.]
## 3. Key News & Corporate Events (Last 12 Months)
### Positive Developments
### Negative Developments / Risks
## 4. Public & Social Sentiment Overview
### Customer Sentiment
### Employee & Investor Perception
[Separate recurring themes per audience; distinguish signal from noise.]
## 5. Market & Competitive Context
### Positioning within the Industry
### Key Competitors
### Competitive Advantages & Disadvantages
[Profile 3-5 competitors and the company's moat or lack of one.]
## 6. Key Observations & Synthesis (Analyst Notes)
[Connect insights across data points; surface non-obvious observations rather than repeating raw data.]
## 7. Opportunities & Risks
### Opportunities
### Risks
[Each with rationale, source, and severity.]
## Sources
### Financial & Regulatory
### News and Media
### Sentiment & Market Data
[Numbered citations with titles, dates, and URLs.]

Support all claims with evidence and citations, provide a balanced view, and note where information is not publicly available or contradictory.`

// Format embeds a research request into the fixed report instructions.
// It is pure: the same request always yields the same prompt.
func Format(request string) string {
	return fmt.Sprintf("Research request: %s\n\n%s", request, instructions)
}
