// Package extractor populates type-specific structured field sets from
// normalized document text. Each per-type extractor is a pure function of the
// text: an ordered battery of patterns tried in priority order, with
// type-specific normalization for dates and currency amounts.
package extractor

// Fields is the tagged union of per-document-type extraction results. Each
// variant is a fixed record shape; optional fields are pointers (or nilable
// values) marshalled with omitempty so that "not found" is a missing key,
// never a null.
type Fields interface {
	DocumentType() string
}

// InvoiceFields is the surfaced result for invoices. Only the total, tax and
// date survive into the final output; the richer intermediate capture lives
// in InvoiceData.
type InvoiceFields struct {
	Type         string   `json:"type"`
	InvoiceTotal *float64 `json:"invoice_total,omitempty"`
	Tax          *float64 `json:"tax,omitempty"`
	Date         string   `json:"date,omitempty"`
}

func (f InvoiceFields) DocumentType() string { return f.Type }

// CVFields is the surfaced result for CVs. Experience holds an int when the
// captured digits parse and the raw match list otherwise; an explicit zero is
// preserved while an absent value is dropped.
type CVFields struct {
	Type         string      `json:"type"`
	Skills       []string    `json:"skills"`
	Experience   interface{} `json:"experience,omitempty"`
	Technologies []string    `json:"technologies"`
}

func (f CVFields) DocumentType() string { return f.Type }

// IDCardFields is the surfaced result for identity cards. Dob is ISO
// formatted when one of the candidate formats parsed and the raw capture
// otherwise.
type IDCardFields struct {
	Type    string `json:"type"`
	Name    string `json:"name,omitempty"`
	Dob     string `json:"dob,omitempty"`
	Address string `json:"address,omitempty"`
}

func (f IDCardFields) DocumentType() string { return f.Type }

// NoMatchFields signals that no extractor handles the document type.
type NoMatchFields struct {
	Message string `json:"message"`
}

func (f NoMatchFields) DocumentType() string { return "" }
