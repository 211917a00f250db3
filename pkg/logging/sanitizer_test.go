package logging

import (
	"errors"
	"strings"
	"testing"
)

func TestSanitizeError(t *testing.T) {
	err := errors.New("request to /v1?api_key=abcdefghij1234567890XYZ failed")
	got := SanitizeError(err)

	if strings.Contains(got, "abcdefghij1234567890XYZ") {
		t.Errorf("api key leaked: %q", got)
	}
	if !strings.Contains(got, RedactedText) {
		t.Errorf("expected redaction marker: %q", got)
	}
}

func TestSanitizeError_BearerToken(t *testing.T) {
	err := errors.New("401 with Authorization: Bearer sk-abc.def-123")
	got := SanitizeError(err)

	if strings.Contains(got, "sk-abc.def-123") {
		t.Errorf("token leaked: %q", got)
	}
}

func TestSanitizeError_Nil(t *testing.T) {
	if got := SanitizeError(nil); got != "" {
		t.Errorf("SanitizeError(nil) = %q", got)
	}
}

func TestSanitizeCorpusValue(t *testing.T) {
	got := SanitizeCorpusValue("contact anna.muster@gmx.at for details")

	if strings.Contains(got, "anna.muster@gmx.at") {
		t.Errorf("email leaked: %q", got)
	}
	if !strings.Contains(got, RedactedText) {
		t.Errorf("expected redaction marker: %q", got)
	}
}

func TestTruncateOutput(t *testing.T) {
	short := "short output"
	if got := TruncateOutput(short); got != short {
		t.Errorf("TruncateOutput(short) = %q", got)
	}

	long := strings.Repeat("x", MaxOutputLogLength+50)
	got := TruncateOutput(long)
	if len(got) != MaxOutputLogLength+3 {
		t.Errorf("truncated length = %d", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Error("expected ellipsis suffix")
	}
}
