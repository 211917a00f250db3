package apperrors

import "errors"

var (
	ErrUnknownRecordType = errors.New("unknown record type")
	ErrEmptyAttributes   = errors.New("no attributes selected")
	ErrMissingCorpus     = errors.New("anonymize requires an uploaded corpus")
	ErrMalformedCorpus   = errors.New("malformed corpus")
	ErrUnknownMethod     = errors.New("unknown generation method")
)
