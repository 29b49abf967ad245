package admin

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"moviweb/internal/middleware"
	"moviweb/internal/pkg/response"
)

const defaultPerPage = 10

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the admin area. The caller wraps the group in
// the admin-only middleware.
func (h *Handler) RegisterRoutes(admin *gin.RouterGroup) {
	admin.GET("/dashboard", h.Dashboard)

	users := admin.Group("/users")
	{
		users.GET("", h.ListUsers)
		users.POST("", h.AddUser)
		users.PUT("/:id", h.UpdateUser)
		users.DELETE("/:id", h.DeleteUser)
	}

	reports := admin.Group("/reports")
	{
		reports.GET("/users", h.UsersReport)
		reports.GET("/users/:id", h.UserDetailReport)
	}
}

func pageParam(c *gin.Context) int {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	return page
}

func (h *Handler) Dashboard(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
		return
	}

	dashboard, err := h.service.Dashboard(c.Request.Context(), actor.ID, pageParam(c), defaultPerPage)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to load dashboard")
		return
	}

	response.Success(c, http.StatusOK, dashboard)
}

func (h *Handler) ListUsers(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
		return
	}

	mine := c.DefaultQuery("mine", "true") != "false"

	page, err := h.service.ListUsers(c.Request.Context(), actor.ID, mine, pageParam(c), defaultPerPage)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list users")
		return
	}

	response.Success(c, http.StatusOK, page)
}

func (h *Handler) AddUser(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
		return
	}

	var req AddUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.AddUser(c.Request.Context(), actor.ID, req)
	if err != nil {
		if errors.Is(err, ErrEmailAlreadyExists) {
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "This email is already registered")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to create user")
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": toUserResponse(user)})
}

func (h *Handler) UpdateUser(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
		return
	}

	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid user id")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.UpdateUser(c.Request.Context(), actor.ID, userID, req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "user not found")
		case errors.Is(err, ErrNotManagedUser):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not manage this user")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to update user")
		}
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": toUserResponse(user)})
}

func (h *Handler) DeleteUser(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
		return
	}

	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid user id")
		return
	}

	if err := h.service.DeleteUser(c.Request.Context(), actor.ID, userID); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "user not found")
		case errors.Is(err, ErrNotManagedUser):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not manage this user")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to delete user")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) UsersReport(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
		return
	}

	report, err := h.service.UsersReport(c.Request.Context(), actor.ID, pageParam(c), defaultPerPage)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to build report")
		return
	}

	response.Success(c, http.StatusOK, report)
}

func (h *Handler) UserDetailReport(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid user id")
		return
	}

	user, movies, err := h.service.UserDetailReport(c.Request.Context(), userID, pageParam(c), 5)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "user not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to build report")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":   user,
		"movies": movies,
	})
}
