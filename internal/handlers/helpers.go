package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bakery_console_backend/internal/models"
	"bakery_console_backend/internal/repositories"
	"bakery_console_backend/pkg/utils"
)

// parseIDParam parses the :id path parameter, responding with a validation
// error itself when the value is not numeric.
func parseIDParam(c *gin.Context) (int64, bool) {
	id, err := utils.StrToInt64(c.Param("id"))
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid ID format.", err.Error()))
		return 0, false
	}
	return id, true
}

// actor returns the authenticated username set by the auth middleware.
func actor(c *gin.Context) string {
	return c.GetString("username")
}

// actorScope narrows list queries to the caller's own records. Admins see
// every account's records, representatives only their own.
func actorScope(c *gin.Context) string {
	if c.GetString("userRole") == models.RoleAdmin {
		return ""
	}
	return actor(c)
}

// respondUnhandled maps errors no handler-specific case matched: remote store
// failures become 502, everything else 500.
func respondUnhandled(c *gin.Context, err error, operation string) {
	utils.LogError(err, operation)
	if errors.Is(err, repositories.ErrRemoteError) {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadGateway, utils.ErrCodeUpstreamError, "Failed to reach the data store.", "Upstream error"))
		return
	}
	utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Unexpected server error.", "Internal error"))
}
