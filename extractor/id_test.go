package extractor

import "testing"

func TestExtractIDName(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "Labeled name",
			text:     "Name: John Doe\nDOB: 02/14/1990",
			expected: "John Doe",
		},
		{
			name:     "Full name label",
			text:     "Full Name: Sarah Jane Johnson\nAddress: 1 Elm St",
			expected: "Sarah Jane Johnson",
		},
		{
			name:     "Name does not cross lines",
			text:     "Name: John Doe\nNew York City",
			expected: "John Doe",
		},
		{
			name:     "Single capitalized word is not a name",
			text:     "Name: Madonna",
			expected: "",
		},
		{
			name:     "Lowercase words rejected",
			text:     "Name: john doe",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := ExtractID(tt.text)
			if data.Name != tt.expected {
				t.Errorf("Name = %q, want %q", data.Name, tt.expected)
			}
		})
	}
}

func TestExtractIDDob(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected string
	}{
		{
			name:     "US slash DOB",
			text:     "DOB: 02/14/1990",
			expected: "1990-02-14",
		},
		{
			name:     "Date of Birth label with dashes",
			text:     "Date of Birth: 25-12-1992",
			expected: "1992-12-25",
		},
		{
			name:     "Born label",
			text:     "Born: 03/15/1985",
			expected: "1985-03-15",
		},
		{
			name:     "Unparseable kept verbatim",
			text:     "DOB: 99/99/99",
			expected: "99/99/99",
		},
		{
			name:     "No DOB",
			text:     "Name: John Doe",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := ExtractID(tt.text)
			if data.Dob != tt.expected {
				t.Errorf("Dob = %q, want %q", data.Dob, tt.expected)
			}
		})
	}
}

func TestExtractIDAddressAndNumber(t *testing.T) {
	text := "ID: ABC-123456\nName: John Doe\nAddress:   123 Main St, Cityville  \nIssued 2020"
	data := ExtractID(text)

	if data.IDNumber != "ABC-123456" {
		t.Errorf("IDNumber = %q, want ABC-123456", data.IDNumber)
	}
	// Address is the remainder of the line, trimmed.
	if data.Address != "123 Main St, Cityville" {
		t.Errorf("Address = %q, want %q", data.Address, "123 Main St, Cityville")
	}
}
