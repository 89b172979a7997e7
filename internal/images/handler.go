package images

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"

	"github.com/JaimeStill/antique-feed/pkg/handlers"
	"github.com/JaimeStill/antique-feed/pkg/routes"
)

const fileField = "file"

// Handler provides the product image upload endpoint.
type Handler struct {
	sys           System
	logger        *slog.Logger
	maxUploadSize int64
}

func NewHandler(sys System, logger *slog.Logger, maxUploadSize int64) *Handler {
	return &Handler{
		sys:           sys,
		logger:        logger.With("handler", "images"),
		maxUploadSize: maxUploadSize,
	}
}

func (h *Handler) Routes() routes.Group {
	return routes.Group{
		Prefix:      "/image_upload",
		Tags:        []string{"Images"},
		Description: "Product image storage",
		Routes: []routes.Route{
			{Method: "POST", Pattern: "", Handler: h.Upload, OpenAPI: Spec.Upload},
		},
	}
}

func (h *Handler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	header, err := h.filePart(r)
	if err != nil {
		handlers.RespondError(w, h.logger, MapHTTPStatus(err), err)
		return
	}

	data, err := readPart(header)
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	obj, err := h.sys.Upload(r.Context(), header.Filename, data, contentType(header, data))
	if err != nil {
		handlers.RespondError(w, h.logger, http.StatusBadRequest, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "Image uploaded successfully",
		"path":    obj.Path,
	})
}

// filePart locates the uploaded file. A part sent with an empty filename is
// parsed as a plain form value rather than a file.
func (h *Handler) filePart(r *http.Request) (*multipart.FileHeader, error) {
	if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return nil, ErrFileTooLarge
		}
		if errors.Is(err, http.ErrNotMultipart) || errors.Is(err, http.ErrMissingBoundary) {
			return nil, ErrNoFilePart
		}
		return nil, fmt.Errorf("parse form: %w", err)
	}

	if files := r.MultipartForm.File[fileField]; len(files) > 0 {
		header := files[0]
		if header.Size > h.maxUploadSize {
			return nil, ErrFileTooLarge
		}
		return header, nil
	}

	if _, ok := r.MultipartForm.Value[fileField]; ok {
		return nil, ErrNoSelectedFile
	}
	return nil, ErrNoFilePart
}

func readPart(header *multipart.FileHeader) ([]byte, error) {
	file, err := header.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer file.Close()

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, file); err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	return buf.Bytes(), nil
}

func contentType(header *multipart.FileHeader, data []byte) string {
	ct := header.Header.Get("Content-Type")
	if ct == "" || ct == "application/octet-stream" {
		return http.DetectContentType(data)
	}
	return ct
}
