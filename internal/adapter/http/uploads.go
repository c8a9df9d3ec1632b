package httpadapter

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"

	"adops/internal/core/domain"
	"adops/internal/core/port"
)

// multipartOverhead leaves room for the form boundaries and other fields on
// top of the file size limit.
const multipartOverhead = 64 << 10

// readUploadFile returns the "file" part of a multipart request. The body
// is capped so oversized files fail before they are buffered.
func (h *Handler) readUploadFile(w http.ResponseWriter, r *http.Request) (multipart.File, *multipart.FileHeader, error) {
	r.Body = http.MaxBytesReader(w, r.Body, h.opts.MaxUploadBytes+multipartOverhead)
	if err := r.ParseMultipartForm(maxMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, nil, domain.Validation("file exceeds the %d byte limit", h.opts.MaxUploadBytes)
		}
		return nil, nil, domain.NewError(domain.KindValidation, "invalid multipart form", err)
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		return nil, nil, domain.Validation("file is required")
	}
	if header.Size > h.opts.MaxUploadBytes {
		file.Close()
		return nil, nil, domain.Validation("file exceeds the %d byte limit", h.opts.MaxUploadBytes)
	}
	return file, header, nil
}

const maxMemory = 8 << 20

// handleValidateUpload runs the CSV checks and returns the report without
// storing anything.
func (h *Handler) handleValidateUpload(w http.ResponseWriter, r *http.Request) {
	file, _, err := h.readUploadFile(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	defer file.Close()

	report, err := h.svc.Uploads.Validate(r.Context(), actorOf(r), file)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, r, report)
}

// handleCreateUpload validates and records a CSV file. Files that fail
// validation are still recorded and returned with status "fail".
func (h *Handler) handleCreateUpload(w http.ResponseWriter, r *http.Request) {
	file, header, err := h.readUploadFile(w, r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	defer file.Close()

	clientID, err := parseOptionalUUID("client_id", r.FormValue("client_id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	upload, err := h.svc.Uploads.Create(r.Context(), actorOf(r), port.UploadFile{
		Name:        header.Filename,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		ClientID:    clientID,
		Body:        file,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.created(w, r, upload)
}

func (h *Handler) handleListUploads(w http.ResponseWriter, r *http.Request) {
	limit, err := parseInt("limit", r.URL.Query().Get("limit"), 0)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	uploads, err := h.svc.Uploads.List(r.Context(), actorOf(r), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, r, uploads)
}

func (h *Handler) handleGetUpload(w http.ResponseWriter, r *http.Request) {
	id, err := parseUUID("id", chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	upload, err := h.svc.Uploads.Get(r.Context(), actorOf(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.ok(w, r, upload)
}
