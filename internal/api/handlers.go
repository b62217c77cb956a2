package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/market-holidays/internal/calendar"
	"github.com/zapponejosh/market-holidays/internal/config"
	"github.com/zapponejosh/market-holidays/internal/database"
	"github.com/zapponejosh/market-holidays/internal/holidays"
	"github.com/zapponejosh/market-holidays/internal/logger"
)

// Handlers contains all HTTP handlers and their dependencies. Handlers
// log through logger.FromContext, which RequestIDMiddleware sets up.
type Handlers struct {
	gen *holidays.Generator
	db  *database.DB // nil when no export database is configured
	cfg *config.Config
}

// NewHandlers creates a new Handlers instance. db may be nil.
func NewHandlers(gen *holidays.Generator, db *database.DB, cfg *config.Config) *Handlers {
	return &Handlers{
		gen: gen,
		db:  db,
		cfg: cfg,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	if h.db != nil {
		if err := h.db.Health(r.Context()); err != nil {
			logger.Warn(r.Context(), "health check failed", slog.Any("error", err))
			WriteError(w, http.StatusServiceUnavailable, "Database unhealthy", CodeHealthCheck)
			return
		}
	}

	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// CatalogResponse describes the holiday rules being served.
type CatalogResponse struct {
	Name     string         `json:"name"`
	Holidays []CatalogEntry `json:"holidays"`
}

// CatalogEntry is one rule in human-readable form.
type CatalogEntry struct {
	Name string `json:"name"`
	Kind string `json:"kind"`
	Rule string `json:"rule"`
}

// GetCatalog handles GET /api/v1/catalog
func (h *Handlers) GetCatalog(w http.ResponseWriter, r *http.Request) {
	cat := h.gen.Catalog()

	resp := CatalogResponse{
		Name:     cat.Name(),
		Holidays: make([]CatalogEntry, 0, cat.Len()),
	}
	for _, def := range cat.Definitions() {
		resp.Holidays = append(resp.Holidays, CatalogEntry{
			Name: def.Name,
			Kind: def.Rule.Kind().String(),
			Rule: def.Rule.String(),
		})
	}

	WriteSuccess(w, resp)
}

// GetYearHolidays handles GET /api/v1/holidays/{year}
func (h *Handlers) GetYearHolidays(w http.ResponseWriter, r *http.Request) {
	yearStr := chi.URLParam(r, "year")
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid year: %s", yearStr))
		return
	}

	set, err := h.gen.Generate(year)
	if err != nil {
		h.writeGenerateError(w, r, err)
		return
	}

	WriteSuccess(w, set)
}

// GetHolidayRange handles GET /api/v1/holidays?from=YYYY&to=YYYY
func (h *Handlers) GetHolidayRange(w http.ResponseWriter, r *http.Request) {
	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")

	if fromStr == "" || toStr == "" {
		WriteBadRequest(w, "Both from and to year parameters are required")
		return
	}

	from, err := strconv.Atoi(fromStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid from year: %s", fromStr))
		return
	}
	to, err := strconv.Atoi(toStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid to year: %s", toStr))
		return
	}

	if from > to {
		WriteBadRequest(w, "from year must not be after to year")
		return
	}
	// Unsigned so that extreme years cannot wrap the span negative.
	if span := uint64(to) - uint64(from); span >= uint64(h.cfg.MaxRangeYears) {
		WriteBadRequest(w, fmt.Sprintf("Range %d..%d exceeds the maximum of %d years", from, to, h.cfg.MaxRangeYears))
		return
	}

	logger.Debug(r.Context(), "generating holiday range", slog.Int("from", from), slog.Int("to", to))

	sets, err := h.gen.GenerateRange(from, to)
	if err != nil {
		h.writeGenerateError(w, r, err)
		return
	}

	WriteSuccess(w, sets)
}

// CheckResponse reports the market status of one date.
type CheckResponse struct {
	Date       calendar.Date `json:"date"`
	Holiday    bool          `json:"holiday"`
	Name       string        `json:"name,omitempty"`
	Weekend    bool          `json:"weekend"`
	TradingDay bool          `json:"trading_day"`
}

// CheckDate handles GET /api/v1/holidays/check/{YYYY-MM-DD}
func (h *Handlers) CheckDate(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")
	date, err := calendar.ParseDate(dateStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	holiday, ok, err := h.gen.IsHoliday(date)
	if err != nil {
		h.writeGenerateError(w, r, err)
		return
	}

	resp := CheckResponse{
		Date:    date,
		Holiday: ok,
		Name:    holiday.Name,
		Weekend: date.IsWeekend(),
	}
	resp.TradingDay = !resp.Holiday && !resp.Weekend

	WriteSuccess(w, resp)
}

func (h *Handlers) writeGenerateError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, calendar.ErrYearOutOfRange) {
		WriteYearOutOfRange(w, err.Error())
		return
	}
	logger.Error(r.Context(), "holiday generation failed", err, slog.String("path", r.URL.Path))
	WriteInternalError(w, "Failed to generate holidays")
}
