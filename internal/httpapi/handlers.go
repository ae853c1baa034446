package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/alexanderramin/mailforge/internal/domain"
	"github.com/alexanderramin/mailforge/internal/service"
	tmpl "github.com/alexanderramin/mailforge/internal/template"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"
)

const (
	msgBadGenerate     = "Template and variables are required"
	msgGenerateFailed  = "Failed to generate email. Please try again."
	msgInvalidValues   = "Some fields need attention"
	msgTemplateMissing = "Template not found"
)

type handlers struct {
	svc Services
}

func (h *handlers) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *handlers) listTemplates(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	templates, err := h.svc.Templates.Search(r.Context(), q.Get("q"))
	if err != nil {
		h.internalError(w, r, err)
		return
	}

	category := domain.Category(q.Get("category"))
	if category != "" && !category.Valid() {
		writeError(w, r, http.StatusBadRequest, "Unknown category")
		return
	}
	featuredOnly, _ := strconv.ParseBool(q.Get("featured"))

	out := make([]*domain.EmailTemplate, 0, len(templates))
	for _, t := range templates {
		if category != "" && t.Category != category {
			continue
		}
		if featuredOnly && !t.Featured {
			continue
		}
		out = append(out, t)
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"templates": out})
}

func (h *handlers) getTemplate(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.Templates.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, service.ErrTemplateNotFound) {
		writeError(w, r, http.StatusNotFound, msgTemplateMissing)
		return
	}
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, t)
}

type promptRequest struct {
	TemplateID string            `json:"templateId"`
	Variables  map[string]string `json:"variables"`
}

func (h *handlers) compilePrompt(w http.ResponseWriter, r *http.Request) {
	var req promptRequest
	if err := decodeJSON(w, r, &req); err != nil || req.TemplateID == "" {
		writeError(w, r, http.StatusBadRequest, "templateId is required")
		return
	}

	prompt, err := h.svc.Generation.Preview(r.Context(), req.TemplateID, req.Variables)
	if errors.Is(err, service.ErrTemplateNotFound) {
		writeError(w, r, http.StatusNotFound, msgTemplateMissing)
		return
	}
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, map[string]string{"prompt": prompt})
}

type generateRequest struct {
	TemplateID string                `json:"templateId"`
	Template   *domain.EmailTemplate `json:"template"`
	Variables  map[string]string     `json:"variables"`
	Provider   string                `json:"provider"`
	Model      string                `json:"model"`
	Offline    bool                  `json:"offline"`
}

type emailResponse struct {
	Email          string            `json:"email"`
	Subject        string            `json:"subject"`
	ID             string            `json:"id"`
	TemplateID     string            `json:"templateId"`
	Source         string            `json:"source"`
	Provider       string            `json:"provider"`
	Model          string            `json:"model"`
	FallbackReason string            `json:"fallbackReason,omitempty"`
	Variables      map[string]string `json:"variables,omitempty"`
	CreatedAt      time.Time         `json:"createdAt"`
}

func toEmailResponse(e *domain.GeneratedEmail) emailResponse {
	return emailResponse{
		Email:          e.Content,
		Subject:        e.Subject,
		ID:             e.ID,
		TemplateID:     e.TemplateID,
		Source:         string(e.Source),
		Provider:       e.Provider,
		Model:          e.Model,
		FallbackReason: e.FallbackReason,
		Variables:      e.Variables,
		CreatedAt:      e.CreatedAt,
	}
}

func (h *handlers) generate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, http.StatusBadRequest, msgBadGenerate)
		return
	}
	if (req.TemplateID == "" && req.Template == nil) || req.Variables == nil {
		writeError(w, r, http.StatusBadRequest, msgBadGenerate)
		return
	}

	email, err := h.svc.Generation.Generate(r.Context(), service.GenerateRequest{
		TemplateID: req.TemplateID,
		Template:   req.Template,
		Values:     req.Variables,
		Provider:   req.Provider,
		Model:      req.Model,
		Offline:    req.Offline,
		Persist:    true,
		Validate:   true,
	})

	var fieldErrs tmpl.FieldErrors
	switch {
	case err == nil:
		writeJSON(w, r, http.StatusOK, toEmailResponse(email))
	case errors.Is(err, service.ErrTemplateNotFound):
		writeError(w, r, http.StatusNotFound, msgTemplateMissing)
	case errors.Is(err, service.ErrInvalidTemplate):
		writeError(w, r, http.StatusBadRequest, err.Error())
	case errors.As(err, &fieldErrs):
		writeJSON(w, r, http.StatusUnprocessableEntity, errorResponse{Error: msgInvalidValues, Fields: fieldErrs})
	default:
		hlog.FromRequest(r).Error().Err(err).Msg("generate email")
		writeError(w, r, http.StatusInternalServerError, msgGenerateFailed)
	}
}

func (h *handlers) listExamples(w http.ResponseWriter, r *http.Request) {
	examples, err := h.svc.Examples.List(r.Context(), r.URL.Query().Get("templateId"))
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	if examples == nil {
		examples = []domain.Example{}
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"examples": examples})
}

type sessionResponse struct {
	TemplateID     string            `json:"templateId"`
	Values         map[string]string `json:"values"`
	GeneratedEmail string            `json:"generatedEmail"`
	UpdatedAt      *time.Time        `json:"updatedAt,omitempty"`
}

func (h *handlers) getSession(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Sessions.Get(r.Context(), chi.URLParam(r, "templateId"))
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	resp := sessionResponse{TemplateID: s.TemplateID, Values: s.Values, GeneratedEmail: s.GeneratedEmail}
	if !s.UpdatedAt.IsZero() {
		resp.UpdatedAt = &s.UpdatedAt
	}
	writeJSON(w, r, http.StatusOK, resp)
}

func (h *handlers) clearSession(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Sessions.Clear(r.Context(), chi.URLParam(r, "templateId")); err != nil {
		h.internalError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *handlers) listHistory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit := 0
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(w, r, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		limit = n
	}

	emails, err := h.svc.History.List(r.Context(), q.Get("templateId"), limit)
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	out := make([]emailResponse, 0, len(emails))
	for _, e := range emails {
		out = append(out, toEmailResponse(e))
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"emails": out})
}

func (h *handlers) getHistory(w http.ResponseWriter, r *http.Request) {
	e, err := h.svc.History.Get(r.Context(), chi.URLParam(r, "id"))
	if errors.Is(err, service.ErrEmailNotFound) {
		writeError(w, r, http.StatusNotFound, "Email not found")
		return
	}
	if err != nil {
		h.internalError(w, r, err)
		return
	}
	writeJSON(w, r, http.StatusOK, toEmailResponse(e))
}

func (h *handlers) internalError(w http.ResponseWriter, r *http.Request, err error) {
	hlog.FromRequest(r).Error().Err(err).Msg("request failed")
	writeError(w, r, http.StatusInternalServerError, "Internal server error")
}
