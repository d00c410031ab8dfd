package mailer

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"

	"github.com/decker502/portfolio/pkg/config"
	"github.com/decker502/portfolio/pkg/contact"
)

// RequestIDHeader 请求 ID 响应头
const RequestIDHeader = "X-Request-Id"

const internalServerError = "Internal Server Error"

// Handler 处理 POST /api/send
type Handler struct {
	config   *config.MailerConfig
	provider Provider
}

// NewHandler 创建发信处理器
func NewHandler(cfg *config.MailerConfig, provider Provider) *Handler {
	return &Handler{config: cfg, provider: provider}
}

type successResponse struct {
	Success bool    `json:"success"`
	Data    Receipt `json:"data"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ServeHTTP 实现 http.Handler
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	reqID := uuid.NewString()
	w.Header().Set(RequestIDHeader, reqID)

	r.Body = http.MaxBytesReader(w, r.Body, h.config.MaxBodyBytes)

	var form contact.Form
	if err := json.NewDecoder(r.Body).Decode(&form); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			log.Printf("[Mailer] %s request body too large (limit %d)", reqID, tooLarge.Limit)
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: http.StatusText(http.StatusRequestEntityTooLarge)})
			return
		}
		log.Printf("[Mailer] %s server error: decode request: %v", reqID, err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: internalServerError})
		return
	}

	if err := form.Validate(); err != nil {
		log.Printf("[Mailer] %s rejected: %v", reqID, err)
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	email := ComposeEmail(h.config, form)
	receipt, err := h.provider.Send(r.Context(), email)
	if err != nil {
		var perr *ProviderError
		if errors.As(err, &perr) {
			log.Printf("[Mailer] %s provider error: %v", reqID, perr)
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: perr.Err.Error()})
			return
		}
		log.Printf("[Mailer] %s server error: %v", reqID, err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: internalServerError})
		return
	}

	log.Printf("[Mailer] %s sent %s", reqID, receipt.ID)
	writeJSON(w, http.StatusOK, successResponse{Success: true, Data: receipt})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("[Mailer] failed to write response: %v", err)
	}
}
