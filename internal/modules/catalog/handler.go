package catalog

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"moviweb/internal/listing"
	"moviweb/internal/middleware"
	"moviweb/internal/pkg/response"
)

const defaultPerPage = 5

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes mounts the movie catalog. Every route expects an
// authenticated actor; the all-movies listing and delete-any are
// additionally admin-guarded by the caller's route group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, admin *gin.RouterGroup) {
	movies := rg.Group("/movies")
	{
		movies.POST("", h.AddMovie)
		movies.GET("", h.ListOwned)
		movies.GET("/unfavorited", h.ListMyUnfavorited)
		movies.GET("/:id", h.GetMovie)
		movies.PUT("/:id", h.UpdateMovie)
		movies.DELETE("/:id", h.DeleteMovie)
	}

	rg.GET("/genres", h.ListGenres)

	admin.GET("/movies/all", h.ListAll)
	admin.GET("/users/:id/movies", h.ListByUser)
	admin.DELETE("/movies/:id/any", h.DeleteAnyMovie)
}

// parseListQuery reads page/sort/order with the documented defaults:
// page 1, title ascending. Unknown sort keys fall back to title.
func parseListQuery(c *gin.Context, perPage int) ListQuery {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	return ListQuery{
		Page:    page,
		PerPage: perPage,
		Sort:    listing.ParseSortKey(c.Query("sort")),
		Order:   listing.ParseDirection(c.Query("order")),
	}
}

func (h *Handler) AddMovie(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
		return
	}

	var req AddMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	movie, err := h.service.AddMovie(c.Request.Context(), actor, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrTitleRequired):
			response.Error(c, http.StatusBadRequest, "TITLE_REQUIRED", "Title is required to fetch movie details")
		case errors.Is(err, ErrDuplicateTitle):
			response.Error(c, http.StatusConflict, "DUPLICATE_TITLE", "Movie with this title already exists")
		case errors.Is(err, ErrMetadataNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Movie not found in the API")
		case errors.Is(err, ErrIncompleteMetadata):
			response.Error(c, http.StatusUnprocessableEntity, "INCOMPLETE_METADATA", "Movie title or director is missing")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to add movie")
		}
		return
	}

	response.Success(c, http.StatusCreated, ToMovieResponse(movie))
}

func (h *Handler) GetMovie(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid movie id")
		return
	}

	movie, err := h.service.GetMovie(c.Request.Context(), actor, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "movie not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to load movie")
		return
	}

	response.Success(c, http.StatusOK, ToMovieResponse(movie))
}

func (h *Handler) UpdateMovie(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid movie id")
		return
	}

	var req UpdateMovieRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_BODY", "invalid request body")
		return
	}

	movie, err := h.service.UpdateMovie(c.Request.Context(), actor, id, req)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "movie not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not authorized to edit this movie")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to update movie")
		}
		return
	}

	response.Success(c, http.StatusOK, ToMovieResponse(movie))
}

func (h *Handler) DeleteMovie(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid movie id")
		return
	}

	if err := h.service.DeleteMovie(c.Request.Context(), actor, id); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "movie not found")
		case errors.Is(err, ErrForbidden):
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You are not authorized to delete this movie")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to delete movie")
		}
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) DeleteAnyMovie(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid movie id")
		return
	}

	if err := h.service.DeleteAnyMovie(c.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "movie not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to delete movie")
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ListOwned(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
		return
	}

	page, err := h.service.ListOwned(c.Request.Context(), actor, parseListQuery(c, defaultPerPage))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list movies")
		return
	}

	response.Success(c, http.StatusOK, ToMovieListResponse(page))
}

func (h *Handler) ListAll(c *gin.Context) {
	page, err := h.service.ListAll(c.Request.Context(), parseListQuery(c, 10))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list movies")
		return
	}

	response.Success(c, http.StatusOK, ToMovieListResponse(page))
}

func (h *Handler) ListMyUnfavorited(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
		return
	}

	page, err := h.service.ListMyUnfavorited(c.Request.Context(), actor, parseListQuery(c, defaultPerPage))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list movies")
		return
	}

	response.Success(c, http.StatusOK, ToMovieListResponse(page))
}

func (h *Handler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid user id")
		return
	}

	page, err := h.service.ListByUser(c.Request.Context(), userID, parseListQuery(c, defaultPerPage))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list movies")
		return
	}

	response.Success(c, http.StatusOK, ToMovieListResponse(page))
}

func (h *Handler) ListGenres(c *gin.Context) {
	genres, err := h.service.Genres(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list genres")
		return
	}

	response.Success(c, http.StatusOK, genres)
}
