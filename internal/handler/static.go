package handler

import (
	"net/http"
	"os"
	"path"
	"path/filepath"
)

// StaticHandler serves the front-end build. Unknown paths fall back to
// index.html so client-side routes survive a reload.
type StaticHandler struct {
	dir   string
	files http.Handler
}

// NewStaticHandler creates a new StaticHandler rooted at dir.
func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{dir: dir, files: http.FileServer(http.Dir(dir))}
}

// ServeHTTP implements http.Handler.
func (h *StaticHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	name := path.Clean("/" + r.URL.Path)
	fi, err := os.Stat(filepath.Join(h.dir, filepath.FromSlash(name)))
	if err == nil && !fi.IsDir() {
		h.files.ServeHTTP(w, r)
		return
	}
	if err == nil && fi.IsDir() {
		if _, err := os.Stat(filepath.Join(h.dir, filepath.FromSlash(name), "index.html")); err == nil {
			h.files.ServeHTTP(w, r)
			return
		}
	}

	index := filepath.Join(h.dir, "index.html")
	if _, err := os.Stat(index); err != nil {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, index)
}
