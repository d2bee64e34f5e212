package quiz

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/quizforge/backend/internal/models"
)

type Handler struct {
	service *Service
	logger  *zap.Logger
}

func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes mounts the quiz API on an /api/v1 subrouter.
func (h *Handler) RegisterRoutes(api *mux.Router) {
	api.HandleFunc("/subjects", h.GetSubjects).Methods("GET")
	api.HandleFunc("/questions/sample", h.GetSampleQuestion).Methods("GET")
	api.HandleFunc("/tests", h.CreateTest).Methods("POST")
	api.HandleFunc("/tests/{id}", h.GetTest).Methods("GET")
	api.HandleFunc("/tests/{id}/submit", h.SubmitTest).Methods("POST")
	api.HandleFunc("/statistics", h.GetStatistics).Methods("GET")
}

func (h *Handler) GetSubjects(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Catalog())
}

func (h *Handler) GetSampleQuestion(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	subject := query.Get("subject")
	difficulty := query.Get("difficulty")
	if subject == "" || difficulty == "" {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "subject and difficulty are required"})
		return
	}

	q := h.service.SampleQuestion(subject, difficulty)
	q.QuestionNumber = intQueryParam(query, "number", 1)
	writeJSON(w, http.StatusOK, q)
}

func (h *Handler) CreateTest(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	test, err := h.service.CreateTest(r.Context(), req)
	if err != nil {
		h.writeError(w, err, "Failed to create test")
		return
	}

	writeJSON(w, http.StatusCreated, test.ToPublic())
}

func (h *Handler) GetTest(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	test, err := h.service.GetTest(r.Context(), id)
	if err != nil {
		h.writeError(w, err, "Failed to load test")
		return
	}

	writeJSON(w, http.StatusOK, test.ToPublic())
}

func (h *Handler) SubmitTest(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.SubmitTestRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: "Invalid request body"})
		return
	}

	resp, err := h.service.SubmitTest(r.Context(), id, req)
	if err != nil {
		h.writeError(w, err, "Failed to submit test")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) GetStatistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.service.Statistics(r.Context())
	if err != nil {
		h.writeError(w, err, "Failed to load statistics")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// writeError maps service errors to status codes. Unexpected errors are
// logged and hidden behind fallback.
func (h *Handler) writeError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, ErrTestNotFound):
		writeJSON(w, http.StatusNotFound, models.ErrorResponse{Error: "Test not found"})
	case errors.Is(err, ErrAlreadySubmitted):
		writeJSON(w, http.StatusConflict, models.ErrorResponse{Error: "Test already submitted"})
	case errors.Is(err, ErrInvalidAnswers), errors.Is(err, ErrInvalidRequest):
		writeJSON(w, http.StatusBadRequest, models.ErrorResponse{Error: err.Error()})
	default:
		h.logger.Error(fallback, zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, models.ErrorResponse{Error: fallback})
	}
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func intQueryParam(query url.Values, key string, defaultVal int) int {
	s := query.Get(key)
	if s == "" {
		return defaultVal
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return defaultVal
	}
	return v
}
