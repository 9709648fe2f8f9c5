package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

const (
	statusAdded    = "added"
	statusCleared  = "cleared"
	statusLoaded   = "loaded"
	statusDeclined = "declined"

	errAddTestLog = "failed to add test log"
	errClearLogs  = "failed to clear logs"
	errLoadMore   = "failed to load more logs"
	errNotConfirm = "clear not confirmed"
)

// ClearRequest is the body of POST /api/v1/logs/clear.
type ClearRequest struct {
	// Must be true; the page asks the user before sending it
	Confirm bool `json:"confirm" example:"true"`
}

// @Summary      Add a random test log
// @Tags         logs
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, view"
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/logs/test [post]
func (h *Handler) addTestLog(c *gin.Context) {
	if err := h.services.AddTestLog(actionContext(c)); err != nil {
		h.actionError(c, errAddTestLog, "add_test_log_failed", err)
		return
	}
	h.respondWithView(c, statusAdded, nil)
}

// @Summary      Delete every log
// @Description  Destructive. The request must carry {"confirm": true}; anything else is a declined confirmation and nothing is deleted.
// @Tags         logs
// @Accept       json
// @Produce      json
// @Param        body  body      ClearRequest  true  "Confirmation"
// @Success      200   {object}  map[string]interface{}  "status, view"
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /api/v1/logs/clear [post]
func (h *Handler) clearLogs(c *gin.Context) {
	var req ClearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	attempted, err := h.services.ClearAllLogs(actionContext(c), func(string) bool { return req.Confirm })
	if err != nil {
		h.actionError(c, errClearLogs, "clear_logs_failed", err)
		return
	}
	if !attempted {
		c.JSON(http.StatusConflict, gin.H{"error": errNotConfirm, "status": statusDeclined})
		return
	}
	h.respondWithView(c, statusCleared, nil)
}

// @Summary      Load the next page
// @Description  Refetches with a limit one page above the currently loaded count.
// @Tags         logs
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "status, view"
// @Failure      502  {object}  map[string]string
// @Router       /api/v1/logs/more [post]
func (h *Handler) loadMore(c *gin.Context) {
	if err := h.services.LoadMore(actionContext(c)); err != nil {
		h.actionError(c, errLoadMore, "load_more_failed", err)
		return
	}
	h.respondWithView(c, statusLoaded, nil)
}
