package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"bakery_console_backend/internal/services"
	"bakery_console_backend/pkg/utils"
)

// UserHandler holds the user service.
type UserHandler struct {
	userService services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(us services.UserService) *UserHandler {
	return &UserHandler{userService: us}
}

// GetUsers lists all user accounts.
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		respondUnhandled(c, err, "GetUsers: Error from userService.ListUsers")
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUserByID fetches a single user account.
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	user, err := h.userService.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "User not found.", err.Error()))
			return
		}
		respondUnhandled(c, err, "GetUserByID: Error from userService.GetUser")
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser adds a user account.
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req services.SaveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	user, err := h.userService.CreateUser(c.Request.Context(), actor(c), req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid user account.", err.Error()))
			return
		}
		respondUnhandled(c, err, "CreateUser: Error from userService.CreateUser")
		return
	}
	c.JSON(http.StatusCreated, user)
}

// UpdateUser updates a user account.
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	var req services.SaveUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	user, err := h.userService.UpdateUser(c.Request.Context(), actor(c), id, req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid user account.", err.Error()))
		case errors.Is(err, services.ErrUserNotFound):
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "User not found.", err.Error()))
		default:
			respondUnhandled(c, err, "UpdateUser: Error from userService.UpdateUser")
		}
		return
	}
	c.JSON(http.StatusOK, user)
}

// DeleteUser removes a user account.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}
	if err := h.userService.DeleteUser(c.Request.Context(), actor(c), id); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "User not found.", err.Error()))
			return
		}
		respondUnhandled(c, err, "DeleteUser: Error from userService.DeleteUser")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}

// GetAuditLogs lists the administrative audit trail.
func (h *UserHandler) GetAuditLogs(c *gin.Context) {
	logs, err := h.userService.ListAuditLogs(c.Request.Context())
	if err != nil {
		respondUnhandled(c, err, "GetAuditLogs: Error from userService.ListAuditLogs")
		return
	}
	c.JSON(http.StatusOK, logs)
}

// CreateAuditLog files an explicit audit entry.
func (h *UserHandler) CreateAuditLog(c *gin.Context) {
	var req services.RecordAuditLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}
	entry, err := h.userService.RecordAuditLog(c.Request.Context(), actor(c), req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid audit entry.", err.Error()))
			return
		}
		respondUnhandled(c, err, "CreateAuditLog: Error from userService.RecordAuditLog")
		return
	}
	c.JSON(http.StatusCreated, entry)
}
