package main

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/rulekit/pkg/binder"
	"github.com/dmitrymomot/rulekit/pkg/clientip"
	"github.com/dmitrymomot/rulekit/pkg/httpserver"
	"github.com/dmitrymomot/rulekit/pkg/i18n"
	"github.com/dmitrymomot/rulekit/pkg/logger"
	"github.com/dmitrymomot/rulekit/pkg/requestid"
	"github.com/dmitrymomot/rulekit/pkg/validator"
)

const validationTitle = "One or more validation errors occurred."

// problem is the error body returned by the API.
type problem struct {
	Title   string              `json:"title"`
	Status  int                 `json:"status"`
	Detail  string              `json:"detail,omitempty"`
	Errors  map[string][]string `json:"errors,omitempty"`
	TraceID string              `json:"trace_id,omitempty"`
}

type usersHandler struct {
	users *validator.Validator[UserDto]
	bind  func(r *http.Request, v any) error
	log   *slog.Logger
}

func (h *usersHandler) create(w http.ResponseWriter, r *http.Request) {
	var dto UserDto
	if err := h.bind(r, &dto); err != nil {
		status := bindStatus(err)
		h.log.WarnContext(r.Context(), "request binding failed", logger.Error(err))
		writeProblem(w, r, problem{Title: http.StatusText(status), Status: status, Detail: err.Error()})
		return
	}

	errs, err := h.users.ValidateContext(r.Context(), dto)
	if err != nil {
		h.log.ErrorContext(r.Context(), "user validation failed", logger.Error(err))
		writeProblem(w, r, problem{
			Title:  http.StatusText(http.StatusInternalServerError),
			Status: http.StatusInternalServerError,
		})
		return
	}
	if !errs.IsEmpty() {
		h.log.InfoContext(r.Context(), "user rejected", logger.ValidationErrors(len(errs)))
		writeProblem(w, r, problem{Title: validationTitle, Status: http.StatusBadRequest, Errors: errs.Map()})
		return
	}

	writeJSON(w, http.StatusOK, "Valid!")
}

func bindStatus(err error) int {
	switch {
	case errors.Is(err, binder.ErrMissingContentType), errors.Is(err, binder.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, binder.ErrBodyTooLarge):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusBadRequest
	}
}

func writeProblem(w http.ResponseWriter, r *http.Request, p problem) {
	p.TraceID = requestid.FromContext(r.Context())
	w.Header().Set("Content-Type", "application/problem+json; charset=utf-8")
	w.WriteHeader(p.Status)
	_ = json.NewEncoder(w).Encode(p)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// newRouter wires POST /users and GET /healthz behind request id, client
// address and locale middleware. Locales are limited to languages.
func newRouter(users *validator.Validator[UserDto], languages []string, defaultLocale string, log *slog.Logger) http.Handler {
	h := &usersHandler{
		users: users,
		bind:  binder.JSON(binder.DefaultMaxJSONSize),
		log:   log,
	}

	r := chi.NewRouter()
	r.Use(requestid.Middleware)
	r.Use(clientip.Middleware)
	r.Use(i18n.Middleware(i18n.DefaultLangExtractor(i18n.WithSupportedLanguages(languages...)), defaultLocale))

	r.Get("/healthz", httpserver.HealthCheckHandler(log))
	r.Post("/users", h.create)

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeProblem(w, r, problem{Title: http.StatusText(http.StatusNotFound), Status: http.StatusNotFound})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeProblem(w, r, problem{Title: http.StatusText(http.StatusMethodNotAllowed), Status: http.StatusMethodNotAllowed})
	})

	return r
}
