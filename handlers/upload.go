package handlers

import (
	"encoding/json"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/curiokids/backend/service"
)

// UploadHandler stores course media in S3 so instructors can reference it
// from the image/video fields of a course.
type UploadHandler struct {
	S3       *service.S3Service
	MaxBytes int64
}

type UploadResponse struct {
	URL string `json:"url"`
}

var allowedUploadExts = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".webp": "image/webp",
	".mp4":  "video/mp4",
}

func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.MaxBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.MaxBytes)
	}
	if err := r.ParseMultipartForm(h.MaxBytes); err != nil {
		http.Error(w, `{"message":"failed to parse multipart form"}`, http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, `{"message":"missing file"}`, http.StatusBadRequest)
		return
	}
	defer file.Close()

	ext := strings.ToLower(strings.TrimSpace(filepath.Ext(header.Filename)))
	contentType, ok := allowedUploadExts[ext]
	if !ok {
		http.Error(w, `{"message":"unsupported file type"}`, http.StatusBadRequest)
		return
	}
	if h.S3 == nil {
		http.Error(w, `{"message":"upload not configured"}`, http.StatusServiceUnavailable)
		return
	}
	key, err := h.S3.Upload(r.Context(), "courses/", header.Filename, file, contentType)
	if err != nil {
		http.Error(w, `{"message":"failed to upload"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(UploadResponse{URL: h.S3.PublicURL(key)})
}
