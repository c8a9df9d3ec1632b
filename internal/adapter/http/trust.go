package httpadapter

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"adops/internal/core/domain"
)

type trustSectionRequest struct {
	Key   string `json:"key" validate:"required"`
	Title string `json:"title" validate:"required"`
	Body  string `json:"body"`
}

type trustContentRequest struct {
	Title    string                `json:"title" validate:"required"`
	Summary  string                `json:"summary"`
	Sections []trustSectionRequest `json:"sections" validate:"dive"`
}

type publishRequest struct {
	Name      string              `json:"name" validate:"required,max=200"`
	Changelog string              `json:"changelog"`
	Content   trustContentRequest `json:"content"`
	Activate  bool                `json:"activate"`
}

type rollbackRequest struct {
	To     *int   `json:"to" validate:"omitempty,gt=0"`
	Reason string `json:"reason" validate:"required"`
}

func (c trustContentRequest) toDomain() domain.TrustContent {
	content := domain.TrustContent{
		Title:    c.Title,
		Summary:  c.Summary,
		Sections: make([]domain.TrustSection, 0, len(c.Sections)),
	}
	for _, s := range c.Sections {
		content.Sections = append(content.Sections, domain.TrustSection(s))
	}
	return content
}

// handleTrustActive serves the published documentation. It needs no token.
func (h *Handler) handleTrustActive(w http.ResponseWriter, r *http.Request) {
	version, err := h.svc.Trust.Active(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, r, version)
}

func (h *Handler) handleTrustVersions(w http.ResponseWriter, r *http.Request) {
	versions, err := h.svc.Trust.Versions(r.Context(), actorOf(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, r, versions)
}

func (h *Handler) handleTrustVersion(w http.ResponseWriter, r *http.Request) {
	n, err := versionParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	version, err := h.svc.Trust.Version(r.Context(), actorOf(r), n)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, r, version)
}

// handleTrustDiff compares ?from= with ?to=.
func (h *Handler) handleTrustDiff(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if q.Get("from") == "" || q.Get("to") == "" {
		h.writeError(w, r, domain.Validation("from and to are required"))
		return
	}
	from, err := parseInt("from", q.Get("from"), 0)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	to, err := parseInt("to", q.Get("to"), 0)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	changes, err := h.svc.Trust.Diff(r.Context(), actorOf(r), from, to)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, r, map[string]any{"from": from, "to": to, "changes": changes})
}

func (h *Handler) handleTrustChangelog(w http.ResponseWriter, r *http.Request) {
	versions, err := h.svc.Trust.Changelog(r.Context(), actorOf(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, r, versions)
}

func (h *Handler) handlePublishTrust(w http.ResponseWriter, r *http.Request) {
	var req publishRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	version, err := h.svc.Trust.Publish(r.Context(), actorOf(r), domain.TrustPublish{
		Name:      req.Name,
		Changelog: req.Changelog,
		Content:   req.Content.toDomain(),
		Activate:  req.Activate,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.created(w, r, version)
}

// handleActivateTrust answers 412 when the version is already active.
func (h *Handler) handleActivateTrust(w http.ResponseWriter, r *http.Request) {
	n, err := versionParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	version, err := h.svc.Trust.Activate(r.Context(), actorOf(r), n)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, r, version)
}

func (h *Handler) handleRollbackTrust(w http.ResponseWriter, r *http.Request) {
	var req rollbackRequest
	if err := decodeJSON(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	version, err := h.svc.Trust.Rollback(r.Context(), actorOf(r), req.To, req.Reason)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, r, version)
}

func versionParam(r *http.Request) (int, error) {
	raw := chi.URLParam(r, "n")
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, domain.Validation("version must be a positive integer").WithDetail("n", raw)
	}
	return n, nil
}
