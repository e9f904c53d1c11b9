package extractor

import (
	"encoding/json"
	"reflect"
	"testing"
)

func marshalFields(t *testing.T, f Fields) map[string]interface{} {
	t.Helper()
	data, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal fields: %v", err)
	}
	var out map[string]interface{}
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal fields: %v", err)
	}
	return out
}

func TestExtractFieldsInvoiceScenario(t *testing.T) {
	text := "Invoice number: 6312 Account: PATZD32 Subtotal 58,658.00 Date: 11/15/2025\nCompany: ABC Traders"
	out := marshalFields(t, ExtractFields("invoice", text))

	expected := map[string]interface{}{
		"type":          "invoice",
		"invoice_total": 58658.0,
		"date":          "2025-11-15",
	}
	if !reflect.DeepEqual(out, expected) {
		t.Errorf("invoice fields = %v, want %v", out, expected)
	}
}

func TestExtractFieldsCVScenario(t *testing.T) {
	text := "Experienced developer with 5 years of experience. Skills: Python, Docker, AWS"
	out := marshalFields(t, ExtractFields("cv", text))

	if out["type"] != "cv" {
		t.Errorf("type = %v, want cv", out["type"])
	}
	if out["experience"] != 5.0 {
		t.Errorf("experience = %v, want 5", out["experience"])
	}

	expectedSkills := []interface{}{"Python", "AWS", "Docker"}
	if !reflect.DeepEqual(out["skills"], expectedSkills) {
		t.Errorf("skills = %v, want %v", out["skills"], expectedSkills)
	}
	if !reflect.DeepEqual(out["technologies"], expectedSkills) {
		t.Errorf("technologies = %v, want %v", out["technologies"], expectedSkills)
	}
}

func TestExtractFieldsCVZeroExperienceKept(t *testing.T) {
	out := marshalFields(t, ExtractFields("cv", "Graduate, 0 years experience, knows SQL"))

	experience, present := out["experience"]
	if !present {
		t.Fatal("experience key missing, explicit zero must be preserved")
	}
	if experience != 0.0 {
		t.Errorf("experience = %v, want 0", experience)
	}
}

func TestExtractFieldsCVNoExperienceOmitted(t *testing.T) {
	out := marshalFields(t, ExtractFields("cv", "Skills: Python and Docker"))

	if _, present := out["experience"]; present {
		t.Errorf("experience key present (%v), want absent", out["experience"])
	}
	// skills and technologies are always surfaced, even when empty
	if _, present := out["skills"]; !present {
		t.Error("skills key missing")
	}
}

func TestExtractFieldsIDCardScenario(t *testing.T) {
	text := "Name: John Doe\nDOB: 02/14/1990\nAddress: 123 Main St, Cityville"
	out := marshalFields(t, ExtractFields("id_card", text))

	expected := map[string]interface{}{
		"type":    "id_card",
		"name":    "John Doe",
		"dob":     "1990-02-14",
		"address": "123 Main St, Cityville",
	}
	if !reflect.DeepEqual(out, expected) {
		t.Errorf("id_card fields = %v, want %v", out, expected)
	}
}

func TestExtractFieldsUnknownType(t *testing.T) {
	for _, docType := range []string{"receipt", "contract", ""} {
		out := marshalFields(t, ExtractFields(docType, "some text"))

		expected := map[string]interface{}{"message": "No extractor matched"}
		if !reflect.DeepEqual(out, expected) {
			t.Errorf("ExtractFields(%q) = %v, want %v", docType, out, expected)
		}
	}
}

func TestExtractFieldsMissingKeysAreAbsent(t *testing.T) {
	// Invoice text with no amounts and no dates: only the type key survives.
	out := marshalFields(t, ExtractFields("invoice", "Invoice for consulting services"))

	if len(out) != 1 || out["type"] != "invoice" {
		t.Errorf("fields = %v, want only the type key", out)
	}
}
