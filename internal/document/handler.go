package document

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/tusharpolymers/onboard-portal/internal"
	"github.com/tusharpolymers/onboard-portal/internal/transport"
	"github.com/tusharpolymers/onboard-portal/pkg/logger"
)

type ServiceAPI interface {
	Upload(callerID int64, in UploadInput) (*Document, error)
	GetDocumentsForUser(userID int64) ([]*Document, error)
}

type Handler struct {
	*transport.BaseHandler
	Service ServiceAPI
	// MaxBodySize bounds the whole multipart request; the per-file limit is
	// enforced again inside the service while streaming to disk.
	MaxBodySize int64
}

// multipartMemory is how much of a part is held in memory before the
// multipart reader spills to a temp file.
const multipartMemory = 1 << 20

// NewHandler takes the per-file size limit. The whole-request cap adds
// headroom on top of it for multipart framing and form fields, so a file
// right at the limit is still parseable.
func NewHandler(service ServiceAPI, maxFileSize int64) *Handler {
	lg := logger.LoggerWrapper()
	if lg == nil {
		lg = slog.Default()
	}
	if maxFileSize <= 0 {
		maxFileSize = internal.DefaultMaxUploadSize
	}
	return &Handler{
		BaseHandler: transport.NewBaseHandler(lg),
		Service:     service,
		MaxBodySize: maxFileSize + multipartMemory,
	}
}

// Upload handles POST /documents. Runs behind the auth middleware, so the
// caller identity is resolved before any multipart parsing happens.
func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	user, ok := internal.UserFromContext(r.Context())
	if !ok || user == nil {
		h.Logger.Error("Upload: user not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.MaxBodySize)

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			h.HandleServiceError(w, internal.ErrFileTooLarge)
			return
		}
		h.Logger.Warn("Upload: multipart parse failed", "error", err, "user_id", user.ID)
		h.WriteError(w, http.StatusBadRequest, "invalid multipart request")
		return
	}
	defer func() {
		if r.MultipartForm != nil {
			_ = r.MultipartForm.RemoveAll()
		}
	}()

	file, header, err := r.FormFile("document")
	if err != nil {
		h.HandleServiceError(w, internal.ErrMissingFile)
		return
	}
	defer file.Close()

	doc, err := h.Service.Upload(user.ID, UploadInput{
		DocumentType: r.FormValue("documentType"),
		OriginalName: header.Filename,
		ContentType:  header.Header.Get("Content-Type"),
		Content:      file,
	})
	if err != nil {
		h.Logger.Error("Upload: service error", "error", err, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusCreated, doc)
}

// List handles GET /documents
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	user, ok := internal.UserFromContext(r.Context())
	if !ok || user == nil {
		h.Logger.Error("List: user not found in context")
		h.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	docs, err := h.Service.GetDocumentsForUser(user.ID)
	if err != nil {
		h.Logger.Error("List: service error", "error", err, "user_id", user.ID)
		h.HandleServiceError(w, err)
		return
	}

	h.WriteJSON(w, http.StatusOK, docs)
}
