package extractor

import (
	"reflect"
	"testing"
)

func TestExtractCVSkills(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected []string
	}{
		{
			name:     "Listed skills",
			text:     "Experienced developer with 5 years of experience. Skills: Python, Docker, AWS",
			expected: []string{"Python", "AWS", "Docker"},
		},
		{
			name:     "Substring match reports Java alongside JavaScript",
			text:     "Frontend engineer: JavaScript, React",
			expected: []string{"Java", "JavaScript", "React"},
		},
		{
			name:     "Case insensitive",
			text:     "worked with python and kubernetes in production",
			expected: []string{"Python", "Kubernetes"},
		},
		{
			name:     "No skills",
			text:     "Seasoned carpenter and joiner",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := ExtractCV(tt.text)
			if !reflect.DeepEqual(data.Skills, tt.expected) {
				t.Errorf("Skills = %v, want %v", data.Skills, tt.expected)
			}
		})
	}
}

func TestExtractCVExperience(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected *int
	}{
		{
			name:     "Years before experience",
			text:     "Developer with 5 years of experience",
			expected: intPtr(5),
		},
		{
			name:     "Experience label first",
			text:     "Experience: 8 years in backend systems",
			expected: intPtr(8),
		},
		{
			name:     "Plus suffix",
			text:     "3+ years experience with Go",
			expected: intPtr(3),
		},
		{
			name:     "Zero years is kept",
			text:     "Graduate with 0 years experience",
			expected: intPtr(0),
		},
		{
			name:     "No experience statement",
			text:     "Skills: Python, SQL",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := ExtractCV(tt.text)
			if tt.expected == nil {
				if data.Experience != nil {
					t.Errorf("Experience = %v, want absent", *data.Experience)
				}
				return
			}
			if data.Experience == nil {
				t.Fatalf("Experience absent, want %d", *tt.expected)
			}
			if *data.Experience != *tt.expected {
				t.Errorf("Experience = %d, want %d", *data.Experience, *tt.expected)
			}
		})
	}
}

func TestExtractCVExperienceOverflowKeepsRawMatches(t *testing.T) {
	// Digits that overflow int fall back to the raw match list.
	text := "99999999999999999999 years experience"
	data := ExtractCV(text)

	if data.Experience != nil {
		t.Errorf("Experience = %v, want absent", *data.Experience)
	}
	if !reflect.DeepEqual(data.ExperienceRaw, []string{"99999999999999999999"}) {
		t.Errorf("ExperienceRaw = %v, want raw digit string", data.ExperienceRaw)
	}
}

func TestExtractCVEducation(t *testing.T) {
	data := ExtractCV("Bachelor of Science, State University. PhD candidate.")
	expected := []string{"Bachelor", "PhD", "University"}
	if !reflect.DeepEqual(data.EducationKeywords, expected) {
		t.Errorf("EducationKeywords = %v, want %v", data.EducationKeywords, expected)
	}
}

func intPtr(n int) *int { return &n }
