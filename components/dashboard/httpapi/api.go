package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	gocommand "github.com/goliatone/go-command"
	"github.com/goliatone/go-dealer-dashboard/components/dashboard"
	"github.com/goliatone/go-dealer-dashboard/components/dashboard/commands"
)

// Handlers exposes the dashboard page and its JSON endpoints over net/http.
type Handlers struct {
	Controller *dashboard.Controller
	Select     gocommand.Commander[commands.SelectSectionInput]
	Render     gocommand.Querier[dashboard.Widget, dashboard.VisualElement]
	Sessions   SessionResolver
}

const maxWidgetBody = 1 << 20

// SetupRoutes registers the dashboard routes under the controller's base path.
func SetupRoutes(router chi.Router, h *Handlers) {
	router.Route(h.Controller.BasePath(), func(r chi.Router) {
		r.Get("/dashboard", h.HandleDashboard)
		r.Get("/dashboard/_layout", h.HandleLayout)
		r.Get("/dashboard/sections/{index}", h.HandleSelectRedirect)
		r.Post("/dashboard/sections/{index}", h.HandleSelect)
		if h.Render != nil {
			r.Post("/dashboard/widgets", h.HandleRenderWidget)
		}
	})
}

// NewRouter builds a chi router with the dashboard routes mounted.
func NewRouter(h *Handlers) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID, middleware.Recoverer)
	SetupRoutes(router, h)
	return router
}

// HandleDashboard renders the HTML page. A model that fails validation
// renders the error page with status 500.
func (h *Handlers) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	session, err := h.Sessions.Resolve(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	var page bytes.Buffer
	if err := h.Controller.RenderTemplate(r.Context(), session, &page); err != nil {
		h.renderError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(page.Bytes())
}

// HandleLayout returns the dashboard payload as JSON.
func (h *Handlers) HandleLayout(w http.ResponseWriter, r *http.Request) {
	session, err := h.Sessions.Resolve(w, r)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dashboard.ErrorPayload(err))
		return
	}
	payload, err := h.Controller.LayoutPayload(r.Context(), session)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dashboard.ErrorPayload(err))
		return
	}
	writeJSON(w, http.StatusOK, payload)
}

// HandleSelectRedirect is the tab link target: it switches the section and
// redirects back to the page. Invalid indexes keep the previous section.
func (h *Handlers) HandleSelectRedirect(w http.ResponseWriter, r *http.Request) {
	session, err := h.Sessions.Resolve(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if index, convErr := strconv.Atoi(chi.URLParam(r, "index")); convErr == nil {
		err := h.Select.Execute(r.Context(), commands.SelectSectionInput{Session: session, Index: index})
		if err != nil && !dashboard.IsIndexOutOfRange(err) {
			h.renderError(w, err)
			return
		}
	}
	http.Redirect(w, r, h.Controller.DashboardPath(), http.StatusSeeOther)
}

// HandleSelect switches the section and returns the resulting payload. An
// out of range index answers 400 with the unchanged dashboard.
func (h *Handlers) HandleSelect(w http.ResponseWriter, r *http.Request) {
	session, err := h.Sessions.Resolve(w, r)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, dashboard.ErrorPayload(err))
		return
	}
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, dashboard.WidgetData{"error": "section index must be an integer"})
		return
	}
	payload, err := h.Controller.SelectSection(r.Context(), session, index)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, payload)
	case dashboard.IsIndexOutOfRange(err):
		body := dashboard.ErrorPayload(err)
		body["dashboard"] = payload
		writeJSON(w, http.StatusBadRequest, body)
	default:
		writeJSON(w, http.StatusInternalServerError, dashboard.ErrorPayload(err))
	}
}

// HandleRenderWidget renders a single widget posted as JSON. Invalid
// widgets answer 400 with the validation issues.
func (h *Handlers) HandleRenderWidget(w http.ResponseWriter, r *http.Request) {
	var widget dashboard.Widget
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxWidgetBody))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&widget); err != nil {
		writeJSON(w, http.StatusBadRequest, dashboard.WidgetData{"error": fmt.Sprintf("decode widget: %v", err)})
		return
	}
	el, err := h.Render.Query(r.Context(), widget)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, el)
	case dashboard.IsValidationError(err):
		writeJSON(w, http.StatusBadRequest, dashboard.ErrorPayload(err))
	default:
		writeJSON(w, http.StatusInternalServerError, dashboard.ErrorPayload(err))
	}
}

func (h *Handlers) renderError(w http.ResponseWriter, cause error) {
	var page bytes.Buffer
	if err := h.Controller.RenderError(cause, &page); err != nil {
		http.Error(w, cause.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write(page.Bytes())
}

// writeJSON encodes before writing the header so an unencodable payload
// turns into a 500 instead of a truncated 200.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	var body bytes.Buffer
	if err := json.NewEncoder(&body).Encode(payload); err != nil {
		http.Error(w, fmt.Sprintf("encode response: %v", err), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body.Bytes())
}
