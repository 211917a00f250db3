package handlers

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/synthdata-io/synth-engine/pkg/models"
)

// SavedResult is the single retained result set kept for side-by-side
// comparison with the next pass.
type SavedResult struct {
	Type    string          `json:"recordType"`
	Method  string          `json:"method"`
	Records []models.Record `json:"records"`
	Metrics *models.Metrics `json:"metrics"`
	SavedAt time.Time       `json:"savedAt"`
}

// ResultStore holds at most one saved result. Saving overwrites the previous
// occupant.
type ResultStore struct {
	mu    sync.Mutex
	saved *SavedResult
}

// NewResultStore creates an empty result store.
func NewResultStore() *ResultStore {
	return &ResultStore{}
}

// Save replaces the stored result.
func (s *ResultStore) Save(result *SavedResult) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = result
}

// Load returns the stored result, or nil when nothing is saved.
func (s *ResultStore) Load() *SavedResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saved
}

// Clear drops the stored result.
func (s *ResultStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = nil
}

// ResultsHandler manages the saved-result comparison slot and result
// downloads.
type ResultsHandler struct {
	store  *ResultStore
	logger *zap.Logger
}

// NewResultsHandler creates a new ResultsHandler backed by the given store.
func NewResultsHandler(store *ResultStore, logger *zap.Logger) *ResultsHandler {
	return &ResultsHandler{store: store, logger: logger}
}

// RegisterRoutes registers the result management routes on the given router.
func (h *ResultsHandler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/save_result", h.Save).Methods(http.MethodPost)
	r.HandleFunc("/clear_comparison", h.Clear).Methods(http.MethodPost)
	r.HandleFunc("/download", h.Download).Methods(http.MethodPost)
}

// Save handles POST /save_result requests. The body is the result set to
// retain for comparison.
func (h *ResultsHandler) Save(w http.ResponseWriter, r *http.Request) {
	var saved SavedResult
	if err := json.NewDecoder(r.Body).Decode(&saved); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "request body must be a result JSON object")
		return
	}
	saved.SavedAt = time.Now()
	h.store.Save(&saved)

	if err := WriteJSON(w, http.StatusOK, map[string]string{"status": "saved"}); err != nil {
		h.logger.Error("Failed to encode save response", zap.Error(err))
	}
}

// Clear handles POST /clear_comparison requests.
func (h *ResultsHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.store.Clear()
	if err := WriteJSON(w, http.StatusOK, map[string]string{"status": "cleared"}); err != nil {
		h.logger.Error("Failed to encode clear response", zap.Error(err))
	}
}

// downloadRequest carries just enough of the posted result to name the file.
type downloadRequest struct {
	Type string `json:"recordType"`
}

// Download handles POST /download requests. The posted result JSON is echoed
// back as an attachment so the browser offers it as a file.
func (h *ResultsHandler) Download(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "failed to read request body")
		return
	}

	var req downloadRequest
	if err := json.Unmarshal(body, &req); err != nil {
		_ = ErrorResponse(w, http.StatusBadRequest, "invalid_request", "request body must be a result JSON object")
		return
	}
	if req.Type == "" {
		req.Type = "records"
	}

	filename := fmt.Sprintf("%s_%d.json", req.Type, time.Now().Unix())
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if _, err := w.Write(body); err != nil {
		h.logger.Error("Failed to write download response", zap.Error(err))
	}
}
