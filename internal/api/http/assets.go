package http

import (
	"io"
	"net/http"
	"path"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/lingua-prep/linguaprep-backend/internal/storage"
)

// MountAssets wires audio answer upload/download. Speaking answers are
// uploaded first; the returned key goes into the submission's audio_ref.
func MountAssets(r chi.Router, bs storage.BlobStore) {
	// POST /assets/audio (multipart, field "file")
	r.Post("/audio", func(w http.ResponseWriter, r *http.Request) {
		f, hdr, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file required", http.StatusBadRequest)
			return
		}
		defer f.Close()

		ext := strings.ToLower(path.Ext(hdr.Filename))
		switch ext {
		case ".wav", ".mp3", ".webm", ".ogg", ".m4a":
		default:
			ext = ".bin"
		}
		key := "audio/" + uuid.NewString() + ext
		if _, err := bs.Put(key, f); err != nil {
			http.Error(w, "store error: "+err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, map[string]string{"key": key})
	})

	// GET /assets/*  -> returns the blob at whatever follows /assets/
	r.Get("/*", func(w http.ResponseWriter, r *http.Request) {
		key := strings.TrimPrefix(chi.URLParam(r, "*"), "/")
		rc, err := bs.Get(key)
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer rc.Close()
		w.Header().Set("Content-Type", "application/octet-stream")
		_, _ = io.Copy(w, rc)
	})
}
