package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/replay-fm/replay-api/internal/ports"
)

// Handler holds the HTTP handlers for the statistics API.
type Handler struct {
	service     ports.HistoryService
	maxUploadMB int64
}

// NewHandler creates a new HTTP handler with the given history service.
func NewHandler(service ports.HistoryService, maxUploadMB int64) *Handler {
	return &Handler{service: service, maxUploadMB: maxUploadMB}
}

// RegisterRoutes sets up all API routes on the given Gin engine.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.Health)

	api := r.Group("/api/v1")
	{
		api.POST("/upload", h.Upload)
		api.GET("/stats", h.AllStats)
		api.GET("/stats/general", h.GeneralStats)
		api.GET("/stats/top", h.TopStats)
		api.GET("/stats/days", h.DailyStats)
		api.GET("/stats/years", h.YearlyStats)
		api.GET("/stats/years/:year/days", h.YearDays)
	}
}

// Health returns a simple health check response.
//
//	@Summary		Health check
//	@Description	Returns the health status of the API
//	@Tags			health
//	@Produce		json
//	@Success		200	{object}	map[string]string
//	@Router			/health [get]
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

// Upload accepts a streaming-history export and runs the aggregation pass.
//
//	@Summary		Upload a streaming-history export
//	@Description	Accepts a ZIP archive of history JSON files, runs one isolated
//	@Description	aggregation pass over it, and returns a session receipt. Nothing
//	@Description	from the upload is persisted; the aggregate lives in memory only.
//	@Tags			upload
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"ZIP archive of the export"
//	@Success		200		{object}	domain.UploadReceipt
//	@Failure		400		{object}	ErrorResponse
//	@Failure		500		{object}	ErrorResponse
//	@Router			/api/v1/upload [post]
func (h *Handler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "multipart field 'file' is required: " + err.Error(),
		})
		return
	}

	if !strings.HasSuffix(strings.ToLower(header.Filename), ".zip") {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "bad_request",
			Message: "expected a .zip archive",
		})
		return
	}

	if h.maxUploadMB > 0 && header.Size > h.maxUploadMB*1024*1024 {
		c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
			Error:   "too_large",
			Message: "archive exceeds the upload size limit",
		})
		return
	}

	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
		return
	}
	defer file.Close()

	receipt, err := h.service.UploadArchive(c.Request.Context(), file, header.Size)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error:   "upload_failed",
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, receipt)
}

// AllStats returns every derived statistic in one payload.
//
//	@Summary		All statistics
//	@Description	Returns the combined general, top, daily and yearly statistics
//	@Description	for the selected session.
//	@Tags			stats
//	@Produce		json
//	@Param			session	query		string	false	"Session id (defaults to the most recent upload)"
//	@Success		200		{object}	domain.AllStats
//	@Failure		404		{object}	ErrorResponse
//	@Router			/api/v1/stats [get]
func (h *Handler) AllStats(c *gin.Context) {
	all, err := h.service.AllStats(c.Query("session"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, all)
}

// GeneralStats returns the single-value summary statistics.
//
//	@Summary		General statistics
//	@Description	Totals, listening time, shuffle percentage, first track ever and
//	@Description	the estimated artist revenue.
//	@Tags			stats
//	@Produce		json
//	@Param			session	query		string	false	"Session id (defaults to the most recent upload)"
//	@Success		200		{object}	domain.Summary
//	@Failure		404		{object}	ErrorResponse
//	@Router			/api/v1/stats/general [get]
func (h *Handler) GeneralStats(c *gin.Context) {
	summary, err := h.service.Summary(c.Query("session"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// TopStats returns the per-track, per-artist, per-album and per-podcast maps.
//
//	@Summary		Top statistics
//	@Description	Per-entity counters keyed by display name.
//	@Tags			stats
//	@Produce		json
//	@Param			session	query		string	false	"Session id (defaults to the most recent upload)"
//	@Success		200		{object}	domain.TopStats
//	@Failure		404		{object}	ErrorResponse
//	@Router			/api/v1/stats/top [get]
func (h *Handler) TopStats(c *gin.Context) {
	top, err := h.service.TopStats(c.Query("session"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, top)
}

// DailyStats returns the calendar-day buckets.
//
//	@Summary		Daily statistics
//	@Description	Calendar-day buckets with nested top-5 breakdowns.
//	@Tags			stats
//	@Produce		json
//	@Param			session	query		string	false	"Session id (defaults to the most recent upload)"
//	@Success		200		{object}	map[string]domain.DayStats
//	@Failure		404		{object}	ErrorResponse
//	@Router			/api/v1/stats/days [get]
func (h *Handler) DailyStats(c *gin.Context) {
	days, err := h.service.DailyStats(c.Query("session"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, days)
}

// YearlyStats returns the calendar-year buckets.
//
//	@Summary		Yearly statistics
//	@Description	Calendar-year buckets with music and podcast totals.
//	@Tags			stats
//	@Produce		json
//	@Param			session	query		string	false	"Session id (defaults to the most recent upload)"
//	@Success		200		{object}	map[string]domain.YearStats
//	@Failure		404		{object}	ErrorResponse
//	@Router			/api/v1/stats/years [get]
func (h *Handler) YearlyStats(c *gin.Context) {
	years, err := h.service.YearlyStats(c.Query("session"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, years)
}

// YearDays expands one year into day buckets with their raw entries.
//
//	@Summary		Year drill-down
//	@Description	Groups one year's retained entries into day buckets on demand,
//	@Description	including the contributing raw play events.
//	@Tags			stats
//	@Produce		json
//	@Param			year	path		string	true	"Calendar year, e.g. 2024"
//	@Param			session	query		string	false	"Session id (defaults to the most recent upload)"
//	@Success		200		{object}	map[string]domain.DayStats
//	@Failure		404		{object}	ErrorResponse
//	@Router			/api/v1/stats/years/{year}/days [get]
func (h *Handler) YearDays(c *gin.Context) {
	days, err := h.service.YearDays(c.Query("session"), c.Param("year"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, days)
}

func (h *Handler) renderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ports.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "session_not_found",
			Message: "no processed upload for that session",
		})
	case errors.Is(err, ports.ErrYearNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Error:   "year_not_found",
			Message: "no listening data for that year",
		})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{
			Error:   "internal_error",
			Message: err.Error(),
		})
	}
}

// ErrorResponse is the standard error response format.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
