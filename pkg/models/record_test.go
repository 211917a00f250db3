package models

import (
	"errors"
	"testing"

	"github.com/synthdata-io/synth-engine/pkg/apperrors"
)

func TestParseRecordType(t *testing.T) {
	for _, rt := range RecordTypes {
		got, err := ParseRecordType(string(rt))
		if err != nil {
			t.Errorf("ParseRecordType(%q) returned error: %v", rt, err)
		}
		if got != rt {
			t.Errorf("ParseRecordType(%q) = %q", rt, got)
		}
	}

	for _, bad := range []string{"", "Persons", "people", "badge"} {
		_, err := ParseRecordType(bad)
		if !errors.Is(err, apperrors.ErrUnknownRecordType) {
			t.Errorf("ParseRecordType(%q) error = %v, want ErrUnknownRecordType", bad, err)
		}
	}
}

func TestParseMethod(t *testing.T) {
	for _, valid := range []string{"library", "llm"} {
		if _, err := ParseMethod(valid); err != nil {
			t.Errorf("ParseMethod(%q) returned error: %v", valid, err)
		}
	}

	_, err := ParseMethod("faker")
	if !errors.Is(err, apperrors.ErrUnknownMethod) {
		t.Errorf("ParseMethod error = %v, want ErrUnknownMethod", err)
	}
}

func TestRecordClone(t *testing.T) {
	src := Record{"firstName": "Anna", "age": 30}
	clone := src.Clone()

	clone["firstName"] = "Berta"
	if src.StringValue("firstName") != "Anna" {
		t.Error("mutating the clone changed the source record")
	}
	if clone.StringValue("firstName") != "Berta" {
		t.Error("clone did not accept the overlay")
	}
}

func TestRecordStringValue(t *testing.T) {
	rec := Record{"name": "Anna", "count": 3, "missing": nil}

	if got := rec.StringValue("name"); got != "Anna" {
		t.Errorf("StringValue(name) = %q", got)
	}
	if got := rec.StringValue("count"); got != "3" {
		t.Errorf("StringValue(count) = %q", got)
	}
	if got := rec.StringValue("missing"); got != "" {
		t.Errorf("StringValue(missing) = %q, want empty", got)
	}
	if got := rec.StringValue("absent"); got != "" {
		t.Errorf("StringValue(absent) = %q, want empty", got)
	}
	if rec.Has("absent") {
		t.Error("Has(absent) = true")
	}
}
