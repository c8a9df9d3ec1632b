package httpadapter

import (
	"net/http"

	"adops/internal/core/domain"
)

// handleListAudit returns the audit trail of the actor's workspace,
// newest first. Requires audit:read.
func (h *Handler) handleListAudit(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.AuditFilter{
		EntityType: q.Get("entity_type"),
		EntityID:   q.Get("entity_id"),
		Action:     q.Get("action"),
	}
	var err error
	if filter.Limit, err = parseInt("limit", q.Get("limit"), 0); err != nil {
		h.writeError(w, r, err)
		return
	}
	if filter.Offset, err = parseInt("offset", q.Get("offset"), 0); err != nil {
		h.writeError(w, r, err)
		return
	}
	if filter.Offset < 0 {
		h.writeError(w, r, domain.Validation("offset must not be negative"))
		return
	}
	entries, err := h.svc.Audit.List(r.Context(), actorOf(r), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, r, entries)
}
