package extractor

import (
	"regexp"
	"strconv"
	"strings"
)

// skillVocabulary is the fixed technology/skill term list matched by
// case-insensitive substring against the full text.
var skillVocabulary = []string{
	"Python", "Java", "JavaScript", "C++", "React", "Node", "SQL", "AWS",
	"Docker", "Kubernetes", "Angular", "Vue", "TypeScript", "Git",
}

// educationVocabulary is scanned the same way as skills.
var educationVocabulary = []string{
	"Bachelor", "Master", "PhD", "Degree", "University", "College",
}

var experiencePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\+?\s*years?\s*(?:of)?\s*experience`),
	regexp.MustCompile(`(?i)experience[:\s]*(\d+)\+?\s*years?`),
}

// CVData is the full intermediate capture for a CV.
type CVData struct {
	Skills []string
	// Experience is set when the first match's digits parse as an integer;
	// otherwise ExperienceRaw keeps the raw match list.
	Experience        *int
	ExperienceRaw     []string
	EducationKeywords []string
}

// ExtractCV scans the text for skills, years of experience and education
// signals.
func ExtractCV(text string) CVData {
	var data CVData

	lower := strings.ToLower(text)
	data.Skills = vocabularyMatches(skillVocabulary, lower)
	data.EducationKeywords = vocabularyMatches(educationVocabulary, lower)

	for _, pattern := range experiencePatterns {
		matches := pattern.FindAllStringSubmatch(text, -1)
		if len(matches) == 0 {
			continue
		}
		captures := make([]string, 0, len(matches))
		for _, m := range matches {
			captures = append(captures, m[1])
		}
		if years, err := strconv.Atoi(captures[0]); err == nil {
			data.Experience = &years
		} else {
			data.ExperienceRaw = captures
		}
		break
	}

	return data
}

// vocabularyMatches reports every vocabulary term present anywhere in the
// lower-cased text. Substring match, not tokenized: "JavaScript" in the text
// also reports "Java".
func vocabularyMatches(vocabulary []string, lowerText string) []string {
	var found []string
	for _, term := range vocabulary {
		if strings.Contains(lowerText, strings.ToLower(term)) {
			found = append(found, term)
		}
	}
	return found
}
