package template

import "strings"

// WeeklyQuote picks the quote for an ISO week from a header-less sheet whose
// first column holds one quote per week, week 1 on the first row. Returns ""
// when the sheet has no row for that week.
func WeeklyQuote(values [][]string, week int) string {
	if week < 1 || week > len(values) || len(values[week-1]) == 0 {
		return ""
	}
	return strings.TrimSpace(values[week-1][0])
}
