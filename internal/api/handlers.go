// Package api exposes HTTP handlers for the extracurricular activities service.
package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"example.com/extracurricular/internal/domain"
)

// Handler coordinates HTTP requests with the domain service.
type Handler struct {
	service   *domain.Service
	staticDir string
}

// NewHandler builds a Handler. staticDir is the directory holding the
// pre-built front end served under /static/.
func NewHandler(service *domain.Service, staticDir string) *Handler {
	return &Handler{service: service, staticDir: staticDir}
}

// RegisterRoutes wires endpoints to the mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/activities", h.listActivities)
	mux.HandleFunc("/activities/", h.rosterAction)
	mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.Dir(h.staticDir))))
	mux.HandleFunc("/healthz", healthz)
	mux.HandleFunc("/", h.root)
}

// healthz reports a simple OK status for container health checks.
func healthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

// root redirects the bare domain to the static front end.
func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}
	http.Redirect(w, r, "/static/index.html", http.StatusTemporaryRedirect)
}

func (h *Handler) listActivities(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "unsupported method")
		return
	}

	activities, err := h.service.ListActivities(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, activities)
}

// rosterAction dispatches /activities/{name}/signup and
// /activities/{name}/unregister. The activity name segment arrives
// URL-decoded in the request path.
func (h *Handler) rosterAction(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/activities/")
	name, action, ok := strings.Cut(rest, "/")
	if !ok || name == "" {
		writeError(w, http.StatusNotFound, "Not Found")
		return
	}

	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "unsupported method")
		return
	}

	email := strings.TrimSpace(r.URL.Query().Get("email"))
	if email == "" {
		writeError(w, http.StatusBadRequest, "email is required")
		return
	}

	switch action {
	case "signup":
		h.signup(w, r, name, email)
	case "unregister":
		h.unregister(w, r, name, email)
	default:
		writeError(w, http.StatusNotFound, "Not Found")
	}
}

func (h *Handler) signup(w http.ResponseWriter, r *http.Request, name, email string) {
	if err := h.service.Signup(r.Context(), name, email); err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			writeError(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, domain.ErrAlreadySignedUp):
			writeError(w, http.StatusBadRequest, "Student is already signed up")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeMessage(w, fmt.Sprintf("Signed up %s for %s", email, name))
}

func (h *Handler) unregister(w http.ResponseWriter, r *http.Request, name, email string) {
	if err := h.service.Unregister(r.Context(), name, email); err != nil {
		switch {
		case errors.Is(err, domain.ErrActivityNotFound):
			writeError(w, http.StatusNotFound, "Activity not found")
		case errors.Is(err, domain.ErrNotRegistered):
			writeError(w, http.StatusBadRequest, "Student is not registered for this activity")
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeMessage(w, fmt.Sprintf("Unregistered %s from %s", email, name))
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

func writeError(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
