package httpapi

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"houseprice/internal/web"
	"houseprice/pkg/types"
)

// Service defines the methods required by the HTTP API layer.
type Service interface {
	Ready() bool
	Status() types.StatusResponse
	Options() (types.OptionsResponse, error)
	Estimate(ctx context.Context, req types.EstimateRequest) (types.EstimateResponse, error)
	BackgroundURI() string
}

// Pages renders the HTML dashboard.
type Pages interface {
	RenderPage(w io.Writer, data web.PageData) error
	RenderEstimate(w io.Writer, data web.PageData) error
}

type server struct {
	svc   Service
	pages Pages
}

func NewMux(svc Service, pages Pages) http.Handler {
	s := &server{svc: svc, pages: pages}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	// Security headers
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("X-Content-Type-Options", "nosniff")
			next.ServeHTTP(w, r)
		})
	})
	if corsEnabled {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: corsAllowedOrigins,
			AllowedMethods: corsAllowedMethods,
			AllowedHeaders: corsAllowedHeaders,
			MaxAge:         300,
		}))
	}
	r.Use(MetricsMiddleware)

	r.Group(func(r chi.Router) {
		r.Use(RateLimit)
		r.Get("/", s.handlePage)
		r.Get("/estimate", s.handleEstimateQuery)
		r.Post("/estimate", s.handleEstimateJSON)
	})

	r.Get("/options", s.handleOptions)
	r.Get("/status", s.handleStatus)
	r.Get("/healthz", handleHealthz)
	r.Get("/readyz", s.handleReadyz)

	// Prometheus metrics endpoint
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	MountSwagger(r)
	return r
}

// handlePage renders the dashboard with the estimate for the query selection.
func (s *server) handlePage(w http.ResponseWriter, r *http.Request) {
	opts, err := s.svc.Options()
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}
	data := web.PageData{
		Title:      pageTitle,
		BannerHTML: pageBanner,
		Background: s.svc.BackgroundURI(),
		Options:    opts,
		Selection:  opts.Defaults,
	}
	status := http.StatusOK
	sel, err := parseSelection(r.URL.Query(), opts.Defaults)
	if err != nil {
		data.Error = err.Error()
		status = http.StatusBadRequest
	} else {
		data.Selection = sel.Selection
		est, err := s.svc.Estimate(r.Context(), sel.request())
		if err != nil {
			data.Error = err.Error()
			status = statusFor(err)
		} else {
			data.Estimate = &est
		}
	}
	s.writeHTML(w, status, data, s.pages.RenderPage)
}

// handleEstimateQuery godoc
// @Summary      Estimate a price from query parameters
// @Description  Missing parameters fall back to the dashboard defaults. With Accept: text/html the price card fragment is returned.
// @Tags         estimate
// @Produce      json
// @Produce      html
// @Param        location     query  string  false  "Location name"
// @Param        bedrooms     query  int     false  "Bedrooms (alias bhk)"
// @Param        bathrooms    query  int     false  "Bathrooms (alias bath)"
// @Param        square_feet  query  number  false  "Area in square feet (alias sqft)"
// @Success      200  {object}  types.EstimateResponse
// @Failure      400  {object}  types.ErrorResponse
// @Failure      429  {object}  types.ErrorResponse
// @Failure      503  {object}  types.ErrorResponse
// @Router       /estimate [get]
func (s *server) handleEstimateQuery(w http.ResponseWriter, r *http.Request) {
	wantHTML := acceptsHTML(r)
	opts, err := s.svc.Options()
	if err != nil {
		writeJSONError(w, statusFor(err), err.Error())
		return
	}
	sel, err := parseSelection(r.URL.Query(), opts.Defaults)
	if err != nil {
		if wantHTML {
			s.writeHTML(w, http.StatusBadRequest, web.PageData{Selection: opts.Defaults, Error: err.Error()}, s.pages.RenderEstimate)
			return
		}
		writeJSONError(w, http.StatusBadRequest, err.Error())
		return
	}
	est, err := s.svc.Estimate(r.Context(), sel.request())
	if wantHTML {
		data := web.PageData{Options: opts, Selection: sel.Selection}
		status := http.StatusOK
		if err != nil {
			data.Error = err.Error()
			status = statusFor(err)
		} else {
			data.Estimate = &est
		}
		s.writeHTML(w, status, data, s.pages.RenderEstimate)
		return
	}
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, est)
}

// handleEstimateJSON godoc
// @Summary      Estimate a price
// @Tags         estimate
// @Accept       json
// @Produce      json
// @Param        request  body      types.EstimateRequest  true  "Selections"
// @Success      200      {object}  types.EstimateResponse
// @Failure      400      {object}  types.ErrorResponse
// @Failure      415      {object}  types.ErrorResponse
// @Failure      429      {object}  types.ErrorResponse
// @Failure      503      {object}  types.ErrorResponse
// @Router       /estimate [post]
func (s *server) handleEstimateJSON(w http.ResponseWriter, r *http.Request) {
	ct := r.Header.Get("Content-Type")
	if ct == "" || !strings.HasPrefix(strings.ToLower(ct), "application/json") {
		writeJSONError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	var req types.EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSONError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	est, err := s.svc.Estimate(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, est)
}

// handleOptions godoc
// @Summary   List dashboard choices
// @Tags      dashboard
// @Produce   json
// @Success   200  {object}  types.OptionsResponse
// @Failure   503  {object}  types.ErrorResponse
// @Router    /options [get]
func (s *server) handleOptions(w http.ResponseWriter, r *http.Request) {
	opts, err := s.svc.Options()
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	writeJSON(w, opts)
}

// handleStatus godoc
// @Summary   Report artifact and counter status
// @Tags      ops
// @Produce   json
// @Success   200  {object}  types.StatusResponse
// @Router    /status [get]
func (s *server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.svc.Status())
}

func handleHealthz(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *server) handleReadyz(w http.ResponseWriter, r *http.Request) {
	if s.svc.Ready() {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
		return
	}
	w.WriteHeader(http.StatusServiceUnavailable)
	_, _ = w.Write([]byte("loading"))
}

// writeHTML renders into a buffer first so a template failure can still
// become a clean 500.
func (s *server) writeHTML(w http.ResponseWriter, status int, data web.PageData, render func(io.Writer, web.PageData) error) {
	var buf bytes.Buffer
	if err := render(&buf, data); err != nil {
		zlog.Error().Err(err).Msg("render failed")
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		ev := zlog.Error().Err(err).Str("path", r.URL.Path)
		if rid := middleware.GetReqID(r.Context()); rid != "" {
			ev = ev.Str("request_id", rid)
		}
		ev.Msg("estimate failed")
	}
	writeJSONError(w, status, err.Error())
}

func acceptsHTML(r *http.Request) bool {
	return strings.Contains(strings.ToLower(r.Header.Get("Accept")), "text/html")
}

// selection is the parsed query. The embedded Selection drives the page
// widgets; squareFeet keeps the exact area for the estimate.
type selection struct {
	types.Selection
	squareFeet float64
}

func (s selection) request() types.EstimateRequest {
	return types.EstimateRequest{
		Location:   s.Location,
		Bedrooms:   s.Bedrooms,
		Bathrooms:  s.Bathrooms,
		SquareFeet: s.squareFeet,
	}
}

// parseSelection reads the dashboard inputs from q. Absent parameters keep
// their default; present but malformed numbers are an error.
func parseSelection(q url.Values, def types.Selection) (selection, error) {
	sel := selection{Selection: def, squareFeet: float64(def.SquareFeet)}
	if v, ok := first(q, "location"); ok {
		sel.Location = v
	}
	var err error
	if sel.Bedrooms, err = intParam(q, sel.Bedrooms, "bedrooms", "bhk"); err != nil {
		return sel, err
	}
	if sel.Bathrooms, err = intParam(q, sel.Bathrooms, "bathrooms", "bath"); err != nil {
		return sel, err
	}
	if v, ok := first(q, "square_feet", "sqft"); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return sel, badRequest{msg: "square_feet must be a number"}
		}
		sel.squareFeet = f
		if !math.IsNaN(f) && !math.IsInf(f, 0) {
			sel.SquareFeet = int(math.Round(f))
		}
	}
	return sel, nil
}

func first(q url.Values, names ...string) (string, bool) {
	for _, n := range names {
		if v := strings.TrimSpace(q.Get(n)); v != "" {
			return v, true
		}
	}
	return "", false
}

func intParam(q url.Values, def int, names ...string) (int, error) {
	v, ok := first(q, names...)
	if !ok {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		// Accept "2000.0" from sliders that emit floats.
		f, ferr := strconv.ParseFloat(v, 64)
		if ferr != nil || f != float64(int(f)) {
			return 0, badRequest{msg: names[0] + " must be a whole number"}
		}
		n = int(f)
	}
	return n, nil
}
