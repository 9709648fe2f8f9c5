package handlers

import (
	"context"
	"net/http"
	"strings"

	"logdash"

	"github.com/gin-gonic/gin"
)

// Common response/status constants to avoid magic strings and typos.
const (
	statusOK        = "ok"
	statusRefreshed = "refreshed"
	statusFiltered  = "filtered"

	errInvalidBodyPref = "invalid body: "
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err, "request_id", c.GetString(ctxRequestID)}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// actionError reports a failed action with the alerts the controller queued,
// falling back to userMsg when none were raised.
func (h *Handler) actionError(c *gin.Context, userMsg, logKey string, err error) {
	if alerts := h.services.DrainAlerts(); len(alerts) > 0 {
		userMsg = strings.Join(alerts, "; ")
	}
	h.logAndJSONError(c, http.StatusBadGateway, userMsg, logKey, err)
}

// actionContext detaches an action from its request: a reload that started
// keeps going when the browser navigates away.
func actionContext(c *gin.Context) context.Context {
	return context.WithoutCancel(c.Request.Context())
}

// Respond with a status, pending alerts and the current view.
func (h *Handler) respondWithView(c *gin.Context, status string, extra gin.H) {
	resp := gin.H{"status": status}
	for k, v := range extra {
		resp[k] = v
	}
	if alerts := h.services.DrainAlerts(); len(alerts) > 0 {
		resp["alerts"] = alerts
	}
	resp["view"] = h.services.Snapshot()
	c.JSON(http.StatusOK, resp)
}

// FiltersRequest is the body of PUT /api/v1/filters. Empty fields clear the criterion.
type FiltersRequest struct {
	// Exact level, e.g. error
	Level string `json:"level" example:"error"`
	// Exact service name, e.g. api
	Service string `json:"service" example:"api"`
	// Case-insensitive substring of the message
	Search string `json:"search" example:"timeout"`
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// index renders the dashboard page from the current document.
func (h *Handler) index(c *gin.Context) {
	c.HTML(http.StatusOK, pageTemplate, h.services.Snapshot())
}

// @Summary      Current dashboard view
// @Description  Stats, service options, filters, rendered cards and control states.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  models.View
// @Router       /api/v1/view [get]
func (h *Handler) getView(c *gin.Context) {
	c.JSON(http.StatusOK, h.services.Snapshot())
}

// @Summary      Reload logs and stats
// @Description  Upstream failures do not fail the request; they show up as the view banner.
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, view"
// @Router       /api/v1/refresh [post]
func (h *Handler) refresh(c *gin.Context) {
	h.services.LoadDashboard(actionContext(c))
	h.respondWithView(c, statusRefreshed, nil)
}

// @Summary      Set filters
// @Tags         dashboard
// @Accept       json
// @Produce      json
// @Param        body  body      FiltersRequest  true  "Filter criteria"
// @Success      200   {object}  map[string]interface{}  "status, view"
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/filters [put]
func (h *Handler) setFilters(c *gin.Context) {
	var req FiltersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	h.services.SetFilters(logdash.FilterCriteria{
		Level:   strings.TrimSpace(req.Level),
		Service: strings.TrimSpace(req.Service),
		Search:  req.Search,
	})
	h.respondWithView(c, statusFiltered, gin.H{"filters": h.services.Filters()})
}
