package proposalint

import (
	"errors"
	"testing"
)

func Test_ParsePreamble_Should_Reject_NonMapping_Input(t *testing.T) {
	for _, raw := range []string{
		"just a scalar",
		"- alpha\n- bravo\n",
		"",
		"null",
	} {
		_, err := ParsePreamble(raw)
		if err == nil {
			t.Fatalf("expected error for %q, got nil", raw)
		}
		var de *DecodeError
		if !errors.As(err, &de) {
			t.Fatalf("expected DecodeError for %q, got %T: %v", raw, err, err)
		}
	}
}

func Test_ParsePreamble_Should_Reject_Invalid_Syntax(t *testing.T) {
	_, err := ParsePreamble("proposal: [unclosed\n")
	if err == nil {
		t.Fatal("expected error for invalid syntax, got nil")
	}
	var de *DecodeError
	if !errors.As(err, &de) {
		t.Fatalf("expected DecodeError, got %T: %v", err, err)
	}
	if de.Unwrap() == nil {
		t.Error("expected DecodeError to carry the underlying yaml error")
	}
}

func Test_ParsePreamble_Should_Reject_Wrongly_Typed_Fields(t *testing.T) {
	_, err := ParsePreamble("proposal: \"1\"\ntitle: Test\n")
	if err == nil {
		t.Fatal("expected error for string proposal, got nil")
	}
	tm, ok := err.(*TypeMismatchError)
	if !ok {
		t.Fatalf("expected TypeMismatchError, got %T: %v", err, err)
	}
	if tm.Field != "proposal" {
		t.Errorf("expected field 'proposal', got %q", tm.Field)
	}
	if tm.Actual != "string" || tm.Expected != "number" {
		t.Errorf("unexpected actual/expected: %q/%q", tm.Actual, tm.Expected)
	}
}

func Test_ParsePreamble_Should_Narrow_Known_Fields(t *testing.T) {
	p, err := ParsePreamble("proposal: 7\ntitle: Test\ncreated: 2024-01-15\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, ok := p["proposal"].(int); !ok || got != 7 {
		t.Errorf("expected proposal to decode as int 7, got %#v", p["proposal"])
	}
	// Unquoted dates resolve as !!timestamp in YAML; the loader must keep
	// the source text so the date rules can match it.
	if got, ok := p["created"].(string); !ok || got != "2024-01-15" {
		t.Errorf("expected created to keep its source text, got %#v", p["created"])
	}
}

func Test_ParsePreamble_Should_Keep_Unknown_Fields(t *testing.T) {
	p, err := ParsePreamble("proposal: 7\nflavor: vanilla\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, ok := p["flavor"].(string); !ok || got != "vanilla" {
		t.Errorf("expected flavor to survive parsing, got %#v", p["flavor"])
	}
}

func Test_ParsePreamble_Should_Not_TypeCheck_Unknown_Fields(t *testing.T) {
	// Only recognized fields are narrowed; unknown keys are left for the
	// unknown-field check regardless of their type.
	p, err := ParsePreamble("proposal: 7\nextras: [1, 2]\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := p["extras"].([]any); !ok {
		t.Errorf("expected extras to decode as a sequence, got %#v", p["extras"])
	}
}
