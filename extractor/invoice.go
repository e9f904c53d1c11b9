package extractor

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// Pattern families in priority order: the first matching pattern wins its
// field, later patterns in the family are not tried.
var (
	invoiceNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Invoice\s*(?:number|#|no\.?)[\s:]*([A-Z0-9-]+)`),
		// OCR regularly misreads "Invoice" as "Involce"
		regexp.MustCompile(`(?i)Involce\s*(?:number|#|no\.?)[\s:]*([A-Z0-9-]+)`),
		regexp.MustCompile(`(?i)Invoice[\s:]+([A-Z0-9-]+)`),
	}

	accountNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Account\s*(?:number|#|no\.?)[\s:]*([A-Z0-9-]+)`),
	}

	// Every match of every pattern feeds the candidate list; the surfaced
	// total is the maximum.
	totalPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:Sub)?total[\s:]*\$?([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?i)Total[\s:]*\$?([\d,]+\.?\d*)`),
		regexp.MustCompile(`(?i)Amount[\s:]*\$?([\d,]+\.?\d*)`),
	}

	taxPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Tax[\s:]*\$?([\d,]+\.?\d*)`),
	}

	invoiceDatePatterns = []*regexp.Regexp{
		regexp.MustCompile(`\b(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})\b`),
		regexp.MustCompile(`\b(\d{4}[-/]\d{1,2}[-/]\d{1,2})\b`),
	}

	// Cost blocks are bounded between a section keyword and the next section
	// boundary (or end of text).
	laborSectionRe    = regexp.MustCompile(`(?is)LABOR.*?AMOUNT\s*(.*?)(?:MATERIAL|Subtotal|\z)`)
	materialSectionRe = regexp.MustCompile(`(?is)MATERIAL.*?AMOUNT\s*(.*?)(?:Subtotal|Total|\z)`)
	currencyShapedRe  = regexp.MustCompile(`\$?([\d,]+\.?\d*)`)
)

// InvoiceData is the full intermediate capture for an invoice. ExtractFields
// surfaces only the subset callers see.
type InvoiceData struct {
	InvoiceNumber string
	AccountNumber string
	InvoiceTotal  *float64
	Tax           *float64
	AmountsFound  []float64
	Date          string
	DatesFound    []string
	LaborCosts    []string
	MaterialCosts []string
}

// ExtractInvoice runs the invoice pattern battery over the text.
func ExtractInvoice(text string) InvoiceData {
	var data InvoiceData

	data.InvoiceNumber = firstCapture(invoiceNumberPatterns, text)
	data.AccountNumber = firstCapture(accountNumberPatterns, text)

	// Collect every labeled amount; the largest one is the most robust guess
	// for the total across OCR noise and layout variation. Known limitation:
	// a larger non-total number next to a label wins incorrectly.
	var totals []float64
	for _, pattern := range totalPatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			if amount, err := parseAmount(m[1]); err == nil {
				totals = append(totals, amount)
			}
		}
	}
	if len(totals) > 0 {
		max := totals[0]
		for _, amount := range totals[1:] {
			if amount > max {
				max = amount
			}
		}
		data.InvoiceTotal = &max
		data.AmountsFound = topDistinctDescending(totals, 5)
	}

	if raw := firstCapture(taxPatterns, text); raw != "" {
		if amount, err := parseAmount(raw); err == nil {
			data.Tax = &amount
		}
	}

	var dates []string
	for _, pattern := range invoiceDatePatterns {
		for _, m := range pattern.FindAllStringSubmatch(text, -1) {
			dates = append(dates, m[1])
		}
	}
	if len(dates) > 0 {
		if parsed := parseDateList(dates, invoiceDateLayouts); len(parsed) > 0 {
			data.Date = parsed[0]
		} else {
			if len(dates) > 3 {
				dates = dates[:3]
			}
			data.DatesFound = dates
		}
	}

	data.LaborCosts = sectionAmounts(laborSectionRe, text)
	data.MaterialCosts = sectionAmounts(materialSectionRe, text)

	return data
}

func firstCapture(patterns []*regexp.Regexp, text string) string {
	for _, pattern := range patterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			return m[1]
		}
	}
	return ""
}

// parseAmount strips thousands separators and parses the remainder. A parse
// failure excludes the candidate, it never aborts the extraction.
func parseAmount(raw string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
}

// topDistinctDescending dedupes the candidates, sorts them descending and
// caps the list at n.
func topDistinctDescending(amounts []float64, n int) []float64 {
	seen := make(map[float64]struct{}, len(amounts))
	distinct := make([]float64, 0, len(amounts))
	for _, amount := range amounts {
		if _, ok := seen[amount]; ok {
			continue
		}
		seen[amount] = struct{}{}
		distinct = append(distinct, amount)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(distinct)))
	if len(distinct) > n {
		distinct = distinct[:n]
	}
	return distinct
}

// sectionAmounts harvests all currency-shaped numbers inside a bounded text
// span, keeping them as strings with separators stripped.
func sectionAmounts(sectionRe *regexp.Regexp, text string) []string {
	m := sectionRe.FindStringSubmatch(text)
	if m == nil {
		return nil
	}
	var amounts []string
	for _, am := range currencyShapedRe.FindAllStringSubmatch(m[1], -1) {
		amount := strings.ReplaceAll(am[1], ",", "")
		if amount == "" {
			continue
		}
		amounts = append(amounts, amount)
	}
	return amounts
}
