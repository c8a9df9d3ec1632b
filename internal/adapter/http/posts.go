package httpadapter

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"adops/internal/core/domain"
)

type createPostRequest struct {
	ClientID    *uuid.UUID `json:"client_id"`
	Platform    string     `json:"platform" validate:"required,oneof=meta google tiktok linkedin"`
	Content     string     `json:"content" validate:"required,max=5000"`
	Tone        string     `json:"tone"`
	TemplateID  string     `json:"template_id"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

type updatePostRequest struct {
	Content     *string    `json:"content" validate:"omitempty,max=5000"`
	Tone        *string    `json:"tone"`
	TemplateID  *string    `json:"template_id"`
	Status      *string    `json:"status" validate:"omitempty,oneof=draft approved scheduled published archived"`
	ScheduledAt *time.Time `json:"scheduled_at"`
}

type createVariantRequest struct {
	Tone       string `json:"tone"`
	TemplateID string `json:"template_id"`
}

type bulkRequest struct {
	Action string      `json:"action" validate:"required,oneof=approve archive delete"`
	IDs    []uuid.UUID `json:"ids" validate:"required,min=1,max=100"`
}

type bulkResponse struct {
	Action   domain.BulkAction `json:"action"`
	Affected int64             `json:"affected"`
}

// handleCreatePost stores a draft. Missing content produces HTTP 400.
func (h *Handler) handleCreatePost(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	post, err := h.svc.Posts.Create(r.Context(), actorOf(r), domain.PostInput{
		ClientID:    req.ClientID,
		Platform:    domain.Platform(req.Platform),
		Content:     req.Content,
		Tone:        req.Tone,
		TemplateID:  req.TemplateID,
		ScheduledAt: req.ScheduledAt,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.created(w, r, post)
}

func (h *Handler) handleListPosts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.PostFilter{
		Status:   domain.PostStatus(q.Get("status")),
		Platform: domain.Platform(q.Get("platform")),
	}
	if filter.Status != "" && !filter.Status.Valid() {
		h.writeError(w, r, domain.Validation("unknown status %q", filter.Status))
		return
	}
	if filter.Platform != "" && !filter.Platform.Valid() {
		h.writeError(w, r, domain.Validation("unknown platform %q", filter.Platform))
		return
	}
	var err error
	if filter.Limit, err = parseInt("limit", q.Get("limit"), 0); err != nil {
		h.writeError(w, r, err)
		return
	}
	posts, err := h.svc.Posts.List(r.Context(), actorOf(r), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, r, posts)
}

func (h *Handler) handleGetPost(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID("id", chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	post, err := h.svc.Posts.Get(r.Context(), actorOf(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, r, post)
}

func (h *Handler) handleUpdatePost(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID("id", chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req updatePostRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	patch := domain.PostPatch{
		Content:     req.Content,
		Tone:        req.Tone,
		TemplateID:  req.TemplateID,
		ScheduledAt: req.ScheduledAt,
	}
	if req.Status != nil {
		status := domain.PostStatus(*req.Status)
		patch.Status = &status
	}
	post, err := h.svc.Posts.Update(r.Context(), actorOf(r), id, patch)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, r, post)
}

func (h *Handler) handleDeletePost(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID("id", chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.svc.Posts.Delete(r.Context(), actorOf(r), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, r, map[string]uuid.UUID{"id": id})
}

// handleCreateVariant rewrites the post with the requested tone and
// template and stores the result.
func (h *Handler) handleCreateVariant(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID("id", chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req createVariantRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	variant, err := h.svc.Posts.CreateVariant(r.Context(), actorOf(r), id, req.Tone, req.TemplateID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.created(w, r, variant)
}

func (h *Handler) handleDeleteVariant(w http.ResponseWriter, r *http.Request) {
	postID, err := parseUUID("id", chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	variantID, err := parseUUID("variantId", chi.URLParam(r, "variantId"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if err := h.svc.Posts.DeleteVariant(r.Context(), actorOf(r), postID, variantID); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, r, map[string]uuid.UUID{"id": variantID})
}

// handleBulkPosts applies one action to up to 100 posts.
func (h *Handler) handleBulkPosts(w http.ResponseWriter, r *http.Request) {
	var req bulkRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	action := domain.BulkAction(req.Action)
	affected, err := h.svc.Posts.Bulk(r.Context(), actorOf(r), action, req.IDs)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, r, bulkResponse{Action: action, Affected: affected})
}
