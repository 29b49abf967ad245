package auth

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"moviweb/internal/middleware"
	"moviweb/internal/pkg/images"
	"moviweb/internal/pkg/response"
)

type Handler struct {
	service   *Service
	uploadDir string
}

func NewHandler(service *Service, uploadDir string) *Handler {
	return &Handler{service: service, uploadDir: uploadDir}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	authGroup := rg.Group("/auth")
	{
		authGroup.POST("/register", h.RegisterUser)
		authGroup.POST("/register/admin", h.RegisterAdmin)
		authGroup.POST("/login", h.Login)
	}
}

func (h *Handler) RegisterProtectedRoutes(rg *gin.RouterGroup) {
	profile := rg.Group("/profile")
	{
		profile.GET("", h.GetProfile)
		profile.PUT("", h.UpdateProfile)
		profile.POST("/picture", h.UploadProfilePicture)
	}
}

func (h *Handler) RegisterUser(c *gin.Context) {
	var req RegisterUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.RegisterUser(c.Request.Context(), req)
	if err != nil {
		var vErr *ValidationError
		switch {
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "This email is already registered")
		case errors.As(err, &vErr):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid account fields", vErr.Fields)
		default:
			response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register user")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"user": userProfile(user)})
}

func (h *Handler) RegisterAdmin(c *gin.Context) {
	var req RegisterAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	admin, err := h.service.RegisterAdmin(c.Request.Context(), req)
	if err != nil {
		var vErr *ValidationError
		switch {
		case errors.Is(err, ErrEmailAlreadyExists):
			response.Error(c, http.StatusConflict, "EMAIL_EXISTS", "This email is already registered")
		case errors.As(err, &vErr):
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid account fields", vErr.Fields)
		default:
			response.Error(c, http.StatusInternalServerError, "REGISTRATION_FAILED", "Failed to register admin")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"admin": adminProfile(admin)})
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	result, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			response.Error(c, http.StatusUnauthorized, "INVALID_CREDENTIALS", "Email or password is incorrect")
			return
		}
		response.Error(c, http.StatusInternalServerError, "LOGIN_FAILED", "Failed to login")
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":  result.Profile,
		"token": result.Token,
	})
}

func (h *Handler) GetProfile(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
		return
	}

	profile, err := h.service.Profile(c.Request.Context(), actor)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "account not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to load profile")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": profile})
}

func (h *Handler) UpdateProfile(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
		return
	}
	if actor.IsAdmin() {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin profiles are managed separately")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), actor.ID, req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Could not update profile")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": userProfile(user)})
}

// UploadProfilePicture stores an avatar under the upload directory with
// a generated name and records its served path on the user.
func (h *Handler) UploadProfilePicture(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
		return
	}
	if actor.IsAdmin() {
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Admin profiles are managed separately")
		return
	}

	file, err := c.FormFile("picture")
	if err != nil {
		response.Error(c, http.StatusBadRequest, "NO_FILE", "No file uploaded")
		return
	}
	if !images.Allowed(file.Filename) {
		response.Error(c, http.StatusBadRequest, "INVALID_IMAGE", "Unsupported image type")
		return
	}

	if err := os.MkdirAll(h.uploadDir, 0o755); err != nil {
		response.Error(c, http.StatusInternalServerError, "STORAGE_ERROR", "Failed to create upload directory")
		return
	}

	stored := images.StoredName(file.Filename)
	if err := c.SaveUploadedFile(file, filepath.Join(h.uploadDir, stored)); err != nil {
		response.Error(c, http.StatusInternalServerError, "SAVE_FAILED", "Failed to save file")
		return
	}

	user, err := h.service.SetProfilePicture(c.Request.Context(), actor.ID, "/static/uploads/"+stored)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to save picture reference")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": userProfile(user)})
}
