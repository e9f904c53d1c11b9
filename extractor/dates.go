package extractor

import "time"

// Candidate date layouts tried in order: US, US short-year, international,
// ISO, dash-international, long-form month. Single-digit layout components
// accept the zero-padded forms too.
var invoiceDateLayouts = []string{
	"1/2/2006",
	"1/2/06",
	"2/1/2006",
	"2006-1-2",
	"2-1-2006",
	"January 2, 2006",
}

// DOB labels on ID cards lead with the US shapes, then the dash and slash
// international ones.
var dobDateLayouts = []string{
	"1/2/2006",
	"1/2/06",
	"2-1-2006",
	"2/1/2006",
}

// parseDate attempts the layouts in order and returns the first successful
// parse in ISO (YYYY-MM-DD) form.
func parseDate(raw string, layouts []string) (string, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("2006-01-02"), true
		}
	}
	return "", false
}

// parseDateList keeps the first successful parse per raw string, preserving
// detection order.
func parseDateList(raw []string, layouts []string) []string {
	var parsed []string
	for _, d := range raw {
		if iso, ok := parseDate(d, layouts); ok {
			parsed = append(parsed, iso)
		}
	}
	return parsed
}
