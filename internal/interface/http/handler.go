package http

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/yanqian/trendlens/internal/domain/trending"
	apperrors "github.com/yanqian/trendlens/pkg/errors"
)

// Handler wires the HTTP transport to the trending service.
type Handler struct {
	trendingSvc trending.Service
	logger      *slog.Logger
}

// NewHandler constructs the root HTTP handler.
func NewHandler(trendingSvc trending.Service, logger *slog.Logger) *Handler {
	return &Handler{
		trendingSvc: trendingSvc,
		logger:      logger.With("component", "http.handler"),
	}
}

// Health reports liveness.
func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Trending serves the full analytics report for one region.
func (h *Handler) Trending(c *gin.Context) {
	q, httpErr := parseQuery(c)
	if httpErr != nil {
		abortWithError(c, httpErr)
		return
	}

	report, err := h.trendingSvc.Report(c.Request.Context(), q)
	if err != nil {
		status := http.StatusInternalServerError
		code := "internal_error"
		switch {
		case apperrors.IsCode(err, "source_error"):
			status = http.StatusBadGateway
			code = "source_error"
		case apperrors.IsCode(err, "invalid_input"):
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, report)
}

// Suggestions serves clustered content ideas for one region.
func (h *Handler) Suggestions(c *gin.Context) {
	q, httpErr := parseQuery(c)
	if httpErr != nil {
		abortWithError(c, httpErr)
		return
	}

	kit, err := h.trendingSvc.Suggestions(c.Request.Context(), q)
	if err != nil {
		status := http.StatusInternalServerError
		code := "internal_error"
		switch {
		case apperrors.IsCode(err, "insufficient_data"):
			status = http.StatusUnprocessableEntity
			code = "insufficient_data"
		case apperrors.IsCode(err, "source_error"):
			status = http.StatusBadGateway
			code = "source_error"
		case apperrors.IsCode(err, "invalid_input"):
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, kit)
}

// Coach serves genre-focused upload advice.
func (h *Handler) Coach(c *gin.Context) {
	q, httpErr := parseQuery(c)
	if httpErr != nil {
		abortWithError(c, httpErr)
		return
	}

	report, err := h.trendingSvc.Coach(c.Request.Context(), q)
	if err != nil {
		status := http.StatusInternalServerError
		code := "internal_error"
		switch {
		case apperrors.IsCode(err, "not_found"):
			status = http.StatusNotFound
			code = "not_found"
		case apperrors.IsCode(err, "source_error"):
			status = http.StatusBadGateway
			code = "source_error"
		case apperrors.IsCode(err, "invalid_input"):
			status = http.StatusBadRequest
			code = "invalid_request"
		}
		abortWithError(c, NewHTTPError(status, code, errMessage(err), err))
		return
	}

	c.JSON(http.StatusOK, report)
}

func parseQuery(c *gin.Context) (trending.Query, *HTTPError) {
	q := trending.Query{
		Region:  c.Query("country"),
		Keyword: c.Query("keyword"),
		Genre:   c.Query("genre"),
	}
	if raw := c.Query("maxResults"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 || parsed > 200 {
			return trending.Query{}, NewHTTPError(http.StatusBadRequest, "invalid_request",
				"maxResults must be an integer between 1 and 200", err)
		}
		q.MaxResults = parsed
	}
	return q, nil
}

func errMessage(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
