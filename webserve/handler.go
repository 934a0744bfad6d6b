package webserve

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"path"
	"strings"
)

// corsHeaders are attached to every response, whatever the status, so
// a browser page served from another origin can fetch from here.
var corsHeaders = map[string]string{
	"Access-Control-Allow-Origin":  "*",
	"Access-Control-Allow-Methods": "GET, POST, OPTIONS",
	"Access-Control-Allow-Headers": "Content-Type",
}

// Handler serves files from an fs.StatFS, decorating the standard
// library file server with CORS headers and an access log line per
// request.
type Handler struct {
	fs    fs.StatFS
	files http.Handler
	logw  io.Writer
}

func NewHandler(fsys fs.StatFS, logw io.Writer) *Handler {
	if logw == nil {
		logw = os.Stdout
	}
	slog.Info("handler created", "root", fsys)
	return &Handler{fs: fsys, files: http.FileServerFS(fsys), logw: logw}
}

// statusRecorder remembers the status code the inner handler wrote so
// the access log can report it.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

func (h *Handler) serveHTTP(res http.ResponseWriter, req *http.Request) int {
	// CORS preflight: answer directly, no body.
	if req.Method == http.MethodOptions {
		res.WriteHeader(http.StatusOK)
		return http.StatusOK
	}
	rec := &statusRecorder{ResponseWriter: res, status: http.StatusOK}
	name := strings.TrimPrefix(path.Clean(req.URL.Path), "/")
	if name == "" {
		name = "."
	}
	if info, err := h.fs.Stat(name); err == nil && info.IsDir() {
		if _, err := h.fs.Stat(path.Join(name, "index.html")); err != nil {
			if !strings.HasSuffix(req.URL.Path, "/") {
				http.Redirect(rec, req, req.URL.Path+"/", http.StatusMovedPermanently)
				return rec.status
			}
			h.serveListing(rec, name)
			return rec.status
		}
	}
	h.files.ServeHTTP(rec, req)
	return rec.status
}

func (h *Handler) ServeHTTP(res http.ResponseWriter, req *http.Request) {
	for k, v := range corsHeaders {
		res.Header().Set(k, v)
	}
	code := h.serveHTTP(res, req)
	// The response is already on the wire; a failed log write must not
	// affect it.
	fmt.Fprintf(h.logw, "[请求] %s - \"%s %s %s\" %d\n",
		req.RemoteAddr, req.Method, req.URL.RequestURI(), req.Proto, code)
	slog.Debug("accesslog", "method", req.Method, "path", req.URL.Path, "remote", req.RemoteAddr, "status", code)
}
