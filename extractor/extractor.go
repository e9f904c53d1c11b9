package extractor

// ExtractFields dispatches on the classified document type and returns the
// surfaced field set for it. Unrecognized types get a single diagnostic
// field; receipts carry no extractable structure and fall through the same
// way.
func ExtractFields(docType, text string) Fields {
	switch docType {
	case "invoice":
		inv := ExtractInvoice(text)
		return InvoiceFields{
			Type:         "invoice",
			InvoiceTotal: inv.InvoiceTotal,
			Tax:          inv.Tax,
			Date:         inv.Date,
		}

	case "cv":
		cv := ExtractCV(text)
		fields := CVFields{
			Type:         "cv",
			Skills:       cv.Skills,
			Technologies: cv.Skills,
		}
		if fields.Skills == nil {
			fields.Skills = []string{}
			fields.Technologies = []string{}
		}
		switch {
		case cv.Experience != nil:
			// an explicit zero is kept, absence stays a missing key
			fields.Experience = *cv.Experience
		case len(cv.ExperienceRaw) > 0:
			fields.Experience = cv.ExperienceRaw
		}
		return fields

	case "id_card":
		id := ExtractID(text)
		return IDCardFields{
			Type:    "id_card",
			Name:    id.Name,
			Dob:     id.Dob,
			Address: id.Address,
		}

	default:
		return NoMatchFields{Message: "No extractor matched"}
	}
}
