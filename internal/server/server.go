// Package server exposes the calculators over HTTP: a JSON API and the
// embedded calculator page.
package server

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"

	"github.com/cosmoinvest/cosmo-calculators/internal/calculator"
	"github.com/cosmoinvest/cosmo-calculators/internal/contact"
	"github.com/cosmoinvest/cosmo-calculators/internal/form"
	"github.com/cosmoinvest/cosmo-calculators/pkg/output"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

// Handler serves the calculator API and web page.
type Handler struct {
	router    chi.Router
	logger    *zap.Logger
	limiter   *RateLimiter
	metrics   *Metrics
	schedules *calculator.ScheduleGenerator
	contact   *contact.Validator
	version   string
}

// NewHandler constructs the HTTP handler. A nil cfg uses DefaultConfig.
func NewHandler(logger *zap.Logger, cfg *Config, version string) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &Handler{
		logger:    logger,
		metrics:   NewMetrics(),
		schedules: calculator.NewScheduleGenerator(logger),
		contact:   contact.NewValidator(),
		version:   trimmedVersion,
	}
	if cfg.RateLimit.Requests > 0 {
		h.limiter = NewRateLimiter(cfg.RateLimit.Requests, cfg.RateLimit.Window)
	}

	r := chi.NewRouter()
	if cfg.TrustProxy {
		r.Use(middleware.RealIP)
	}
	r.Use(
		h.metrics.Handler,
		cors.Handler(cors.Options{
			AllowedOrigins: cfg.CORS.AllowedOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type", RequestIDHeader},
			ExposedHeaders: []string{RequestIDHeader},
			MaxAge:         300,
		}),
		RequestID,
		RequestLogger(logger),
		middleware.Recoverer,
	)

	r.Route("/api", func(r chi.Router) {
		r.Use(RateLimit(h.limiter), BodyLimit(cfg.BodySizeBytes()))
		r.Get("/calculators", h.handleList)
		r.Post("/calculators/{kind}", h.handleCalculate)
		r.Post("/calculators/{kind}/schedule", h.handleSchedule)
		r.Post("/contact", h.handleContact)
		r.Get("/version", h.handleVersion)
	})
	r.Handle("/metrics", promhttp.HandlerFor(h.metrics.Registry(), promhttp.HandlerOpts{}))

	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	r.Handle("/*", http.FileServer(http.FS(sub)))

	h.router = r
	return h
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

// Close releases the rate limiter's background loop.
func (h *Handler) Close() {
	if h.limiter != nil {
		h.limiter.Stop()
	}
}

type calculatorInfo struct {
	Kind     calculator.Kind `json:"kind"`
	Title    string          `json:"title"`
	Fields   []string        `json:"fields"`
	Schedule bool            `json:"schedule"`
}

type calculationRequest struct {
	Fields map[string]string `json:"fields"`
}

type calculationResponse struct {
	Kind    calculator.Kind   `json:"kind"`
	State   form.State        `json:"state"`
	Result  calculator.Result `json:"result,omitempty"`
	Display []output.Line     `json:"display,omitempty"`
}

type scheduleResponse struct {
	Kind         calculator.Kind           `json:"kind"`
	State        form.State                `json:"state"`
	Installments []calculator.Installment  `json:"installments,omitempty"`
	Years        []calculator.YearSnapshot `json:"years,omitempty"`
}

type contactResponse struct {
	Valid  bool                 `json:"valid"`
	Errors []contact.FieldError `json:"errors,omitempty"`
}

type errorResponse struct {
	Error     string `json:"error"`
	RequestID string `json:"requestId,omitempty"`
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	kinds := calculator.Kinds()
	infos := make([]calculatorInfo, 0, len(kinds))
	for _, kind := range kinds {
		infos = append(infos, calculatorInfo{
			Kind:     kind,
			Title:    kind.Title(),
			Fields:   form.FieldNames(kind),
			Schedule: form.SupportsSchedule(kind),
		})
	}
	render.JSON(w, r, infos)
}

func (h *Handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	kind, fields, ok := h.decodeCalculation(w, r, "server.handleCalculate")
	if !ok {
		return
	}

	resp := calculationResponse{Kind: kind, State: form.Hidden}
	if res, shown := form.Evaluate(kind, fields); shown {
		resp.State = form.Shown
		resp.Result = res
		resp.Display = output.Present(res)
	}
	h.metrics.ObserveCalculation(string(kind), string(resp.State))

	h.logger.Debug(fmt.Sprintf("calculated %s", kind),
		zap.String("op", "server.handleCalculate"),
		zap.String("request_id", RequestIDFromContext(r.Context())),
		zap.String("state", string(resp.State)),
	)
	render.JSON(w, r, resp)
}

func (h *Handler) handleSchedule(w http.ResponseWriter, r *http.Request) {
	kind, fields, ok := h.decodeCalculation(w, r, "server.handleSchedule")
	if !ok {
		return
	}
	if !form.SupportsSchedule(kind) {
		writeError(w, r, http.StatusNotFound, fmt.Sprintf("%s has no schedule", kind.Title()))
		return
	}

	resp := scheduleResponse{Kind: kind, State: form.Hidden}
	if sched, shown := form.EvaluateSchedule(h.schedules, kind, fields); shown {
		resp.State = form.Shown
		resp.Installments = sched.Installments
		resp.Years = sched.Years
	}
	render.JSON(w, r, resp)
}

// decodeCalculation resolves the calculator and its fields, writing the
// error response itself when either is unusable.
func (h *Handler) decodeCalculation(w http.ResponseWriter, r *http.Request, op string) (calculator.Kind, form.Fields, bool) {
	kind, err := calculator.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		writeError(w, r, http.StatusNotFound, err.Error())
		return "", nil, false
	}

	var req calculationRequest
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		h.writeDecodeError(w, r, op, err)
		return "", nil, false
	}
	return kind, form.Fields(req.Fields), true
}

func (h *Handler) handleContact(w http.ResponseWriter, r *http.Request) {
	var enquiry contact.Enquiry
	if err := render.DecodeJSON(r.Body, &enquiry); err != nil {
		h.writeDecodeError(w, r, "server.handleContact", err)
		return
	}

	if errs := h.contact.Validate(enquiry); len(errs) > 0 {
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, contactResponse{Valid: false, Errors: errs})
		return
	}
	render.JSON(w, r, contactResponse{Valid: true})
}

func (h *Handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{
		"version": h.version,
	})
}

func (h *Handler) writeDecodeError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		writeError(w, r, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("request body exceeds limit of %d bytes", maxBytesErr.Limit))
		return
	}

	h.logger.Debug("failed to decode request body",
		zap.String("op", op),
		zap.String("request_id", RequestIDFromContext(r.Context())),
		zap.Error(err),
	)
	writeError(w, r, http.StatusBadRequest, fmt.Sprintf("invalid request body: %v", err))
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Error: message, RequestID: RequestIDFromContext(r.Context())})
}
