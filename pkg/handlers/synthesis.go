package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/synthdata-io/synth-engine/pkg/apperrors"
	"github.com/synthdata-io/synth-engine/pkg/corpus"
	"github.com/synthdata-io/synth-engine/pkg/models"
	"github.com/synthdata-io/synth-engine/pkg/services"
)

// maxCorpusUpload bounds the in-memory portion of a corpus upload (32 MiB).
const maxCorpusUpload = 32 << 20

// SynthesisHandler exposes record generation and anonymization over HTTP.
// Requests arrive as multipart forms so a corpus file can ride along with the
// attribute selection.
type SynthesisHandler struct {
	service services.SynthesisService
	store   *ResultStore
	logger  *zap.Logger
}

// NewSynthesisHandler creates a new SynthesisHandler. The store supplies the
// retained comparison result echoed alongside fresh passes.
func NewSynthesisHandler(service services.SynthesisService, store *ResultStore, logger *zap.Logger) *SynthesisHandler {
	return &SynthesisHandler{service: service, store: store, logger: logger}
}

// synthesisResponse is the wire shape of a completed pass. Saved is present
// only while a comparison result is retained.
type synthesisResponse struct {
	Records []models.Record `json:"records"`
	Metrics *models.Metrics `json:"metrics"`
	Saved   *SavedResult    `json:"saved,omitempty"`
}

// RegisterRoutes registers the synthesis routes on the given router.
func (h *SynthesisHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/generate", h.Generate).Methods(http.MethodPost)
	r.HandleFunc("/anonymize", h.Anonymize).Methods(http.MethodPost)
}

// Generate handles POST /generate requests.
func (h *SynthesisHandler) Generate(w http.ResponseWriter, r *http.Request) {
	h.synthesize(w, r, models.ModeGenerate)
}

// Anonymize handles POST /anonymize requests.
func (h *SynthesisHandler) Anonymize(w http.ResponseWriter, r *http.Request) {
	h.synthesize(w, r, models.ModeAnonymize)
}

func (h *SynthesisHandler) synthesize(w http.ResponseWriter, r *http.Request, mode models.Mode) {
	req, err := h.parseForm(r, mode)
	if err != nil {
		h.logger.Warn("rejected synthesis request", zap.Error(err))
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	result, err := h.service.Synthesize(r.Context(), req)
	if err != nil {
		status, code := classifyError(err)
		if status >= http.StatusInternalServerError {
			h.logger.Error("synthesis pass failed", zap.Error(err))
		} else {
			h.logger.Warn("rejected synthesis request", zap.Error(err))
		}
		_ = ErrorResponse(w, status, code, err.Error())
		return
	}

	resp := synthesisResponse{
		Records: result.Records,
		Metrics: result.Metrics,
		Saved:   h.store.Load(),
	}
	if err := WriteJSON(w, http.StatusOK, resp); err != nil {
		h.logger.Error("Failed to encode synthesis response", zap.Error(err))
	}
}

// parseForm decodes the multipart request into a GenerationRequest. The
// corpus file is optional for generation and required for anonymization; that
// requirement is enforced by the service, not here.
func (h *SynthesisHandler) parseForm(r *http.Request, mode models.Mode) (*models.GenerationRequest, error) {
	if err := r.ParseMultipartForm(maxCorpusUpload); err != nil {
		return nil, errors.New("expected a multipart form request")
	}

	req := &models.GenerationRequest{
		Type:       models.RecordType(r.FormValue("jsonType")),
		Attributes: r.MultipartForm.Value["attribute"],
		Mode:       mode,
		Method:     models.Method(r.FormValue("method")),
	}

	if raw := r.FormValue("numRecords"); raw != "" {
		count, err := strconv.Atoi(raw)
		if err != nil {
			return nil, errors.New("numRecords must be an integer")
		}
		req.Count = count
	}

	file, _, err := r.FormFile("file")
	if err == nil {
		defer file.Close()
		raw, readErr := io.ReadAll(file)
		if readErr != nil {
			return nil, errors.New("failed to read corpus file")
		}
		pool, parseErr := corpus.Parse(raw)
		if parseErr != nil {
			return nil, parseErr
		}
		req.Corpus = pool
	} else if !errors.Is(err, http.ErrMissingFile) {
		return nil, errors.New("failed to read corpus file")
	}

	return req, nil
}

// classifyError maps service errors to HTTP status codes. Request-shaped
// failures are the caller's fault; everything else is ours.
func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, apperrors.ErrUnknownRecordType),
		errors.Is(err, apperrors.ErrEmptyAttributes),
		errors.Is(err, apperrors.ErrMissingCorpus),
		errors.Is(err, apperrors.ErrMalformedCorpus),
		errors.Is(err, apperrors.ErrUnknownMethod):
		return http.StatusBadRequest, "invalid_request"
	default:
		return http.StatusInternalServerError, "synthesis_failed"
	}
}
