package extractor

import (
	"regexp"
	"strings"
)

var (
	// Proper names after a label: at least two capitalized words,
	// deliberately case-sensitive. Inter-word whitespace stays on the line
	// so a following labeled line ("Address: ...") is never absorbed.
	namePatterns = []*regexp.Regexp{
		regexp.MustCompile(`Name[\s:]+([A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+)+)`),
		regexp.MustCompile(`Full\s*Name[\s:]+([A-Z][a-z]+(?:[ \t]+[A-Z][a-z]+)+)`),
	}

	dobPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(?:DOB|Date of Birth|Birth Date)[\s:]*(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`),
		regexp.MustCompile(`(?i)Born[\s:]*(\d{1,2}[-/]\d{1,2}[-/]\d{2,4})`),
	}

	idNumberPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)ID[\s#:]*([A-Z0-9-]+)`),
		regexp.MustCompile(`(?i)(?:Card|License)\s*(?:Number|#)[\s:]*([A-Z0-9-]+)`),
	}

	addressPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Address[:\s]+(.+)`),
		regexp.MustCompile(`(?i)Addr[:\s]+(.+)`),
		regexp.MustCompile(`(?i)Residence[:\s]+(.+)`),
	}
)

// IDCardData is the full intermediate capture for an identity card.
type IDCardData struct {
	Name     string
	Dob      string
	IDNumber string
	Address  string
}

// ExtractID pulls name, date of birth, id number and address from identity
// card text.
func ExtractID(text string) IDCardData {
	var data IDCardData

	data.Name = firstCapture(namePatterns, text)

	if raw := firstCapture(dobPatterns, text); raw != "" {
		if iso, ok := parseDate(raw, dobDateLayouts); ok {
			data.Dob = iso
		} else {
			// none of the candidate formats parsed, keep the raw capture
			data.Dob = raw
		}
	}

	data.IDNumber = firstCapture(idNumberPatterns, text)

	if raw := firstCapture(addressPatterns, text); raw != "" {
		data.Address = strings.TrimSpace(raw)
	}

	return data
}
