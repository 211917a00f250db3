package logging

import (
	"regexp"
)

const (
	// MaxOutputLogLength caps how much raw model output is logged.
	MaxOutputLogLength = 200
	// RedactedText is the replacement text for sensitive data.
	RedactedText = "[REDACTED]"
)

var (
	// Matches API keys passed as key=value query or header fragments.
	apiKeyPattern = regexp.MustCompile(`(?i)(api[_-]?key|apikey|key)=[A-Za-z0-9-_]{20,}`)

	// Matches bearer tokens so provider errors never leak credentials.
	bearerPattern = regexp.MustCompile(`Bearer\s+[A-Za-z0-9-_.]+`)

	// Matches email addresses; corpus records carry real ones.
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)
)

// SanitizeError strips credentials from provider error messages before logging.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	sanitized := apiKeyPattern.ReplaceAllString(err.Error(), "${1}="+RedactedText)
	sanitized = bearerPattern.ReplaceAllString(sanitized, "Bearer "+RedactedText)
	return sanitized
}

// SanitizeCorpusValue masks email addresses in uploaded corpus values so
// identifying data never lands in logs.
func SanitizeCorpusValue(s string) string {
	return emailPattern.ReplaceAllString(s, RedactedText)
}

// TruncateOutput shortens raw model output for debug logging.
func TruncateOutput(s string) string {
	if len(s) <= MaxOutputLogLength {
		return s
	}
	return s[:MaxOutputLogLength] + "..."
}
