package models

// GenerationRequest is the inbound contract for one synthesis pass.
// Corpus is nil for scratch generation; anonymize mode requires it.
type GenerationRequest struct {
	Type       RecordType `json:"recordType"`
	Attributes []string   `json:"attributeNames"`
	Mode       Mode       `json:"mode"`
	Method     Method     `json:"method"`
	Count      int        `json:"recordCount"`
	Corpus     []Record   `json:"corpus,omitempty"`
}

// GenerationResult is the outbound contract: the finished record set plus the
// timing/validity summary for the pass.
type GenerationResult struct {
	Records []Record `json:"records"`
	Metrics *Metrics `json:"metrics"`
}
