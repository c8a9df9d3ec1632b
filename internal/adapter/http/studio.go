package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"adops/internal/core/domain"
	"adops/internal/core/studio"
)

type rewriteRequest struct {
	Content    string `json:"content" validate:"required"`
	Tone       string `json:"tone"`
	TemplateID string `json:"template_id"`
	Platform   string `json:"platform" validate:"omitempty,oneof=meta google tiktok linkedin"`
}

type rewriteResponse struct {
	Content    string `json:"content"`
	Characters int    `json:"characters"`
	Limit      int    `json:"limit,omitempty"`
}

type approveRequest struct {
	Message string `json:"message" validate:"required"`
}

func (h *Handler) handleTones(w http.ResponseWriter, r *http.Request) {
	h.ok(w, r, studio.Tones())
}

func (h *Handler) handleTemplates(w http.ResponseWriter, r *http.Request) {
	h.ok(w, r, studio.Templates())
}

// handleRewrite previews a rewrite without storing anything.
func (h *Handler) handleRewrite(w http.ResponseWriter, r *http.Request) {
	var req rewriteRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	platform := domain.Platform(req.Platform)
	content, err := studio.Rewrite(studio.RewriteRequest{
		Content:    req.Content,
		Tone:       req.Tone,
		TemplateID: req.TemplateID,
		Platform:   platform,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	resp := rewriteResponse{Content: content, Characters: len([]rune(content))}
	if platform != "" {
		resp.Limit = studio.CharacterLimit(platform)
	}
	h.ok(w, r, resp)
}

func (h *Handler) handlePreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.svc.Studio.Preferences(r.Context(), actorOf(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, r, prefs)
}

func (h *Handler) handleApproveMessage(w http.ResponseWriter, r *http.Request) {
	var req approveRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	prefs, err := h.svc.Studio.ApproveMessage(r.Context(), actorOf(r), req.Message)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, r, prefs)
}

// handleClearMessage answers 400 unless a message is approved.
func (h *Handler) handleClearMessage(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.svc.Studio.ClearMessage(r.Context(), actorOf(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, r, prefs)
}

func (h *Handler) handleOnboardingSeen(w http.ResponseWriter, r *http.Request) {
	prefs, err := h.svc.Studio.MarkOnboardingSeen(r.Context(), actorOf(r), chi.URLParam(r, "flag"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, r, prefs)
}
