package httpapi

import (
	"embed"
	"net/http"
)

//go:embed static/index.html static/script.js
var staticFS embed.FS

func serveIndex(w http.ResponseWriter, r *http.Request) {
	serveStatic(w, r, "static/index.html", "text/html; charset=utf-8")
}

func serveScript(w http.ResponseWriter, r *http.Request) {
	serveStatic(w, r, "static/script.js", "text/javascript; charset=utf-8")
}

func serveStatic(w http.ResponseWriter, r *http.Request, name, contentType string) {
	data, err := staticFS.ReadFile(name)
	if err != nil {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
