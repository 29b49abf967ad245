package favorite

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

// RegisterRoutes mounts the favorites endpoints. The caller wraps the
// group in the user-only middleware; admins have no favorites.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	favorites := rg.Group("/favorites")
	{
		favorites.GET("", h.List)
		favorites.GET("/:movieID", h.Check)
		favorites.POST("/:movieID", h.Add)
		favorites.DELETE("/:movieID", h.Remove)
	}
}

func (h *Handler) Add(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
		return
	}

	movieID, err := strconv.ParseInt(c.Param("movieID"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid movie id")
		return
	}

	if err := h.service.Add(c.Request.Context(), actor.ID, movieID); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "movie not found")
		case errors.Is(err, ErrAlreadyFavorite):
			response.Error(c, http.StatusConflict, "ALREADY_FAVORITE", "Movie is already in favorites")
		default:
			response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to add favorite")
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"movie_id": movieID})
}

func (h *Handler) Remove(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
		return
	}

	movieID, err := strconv.ParseInt(c.Param("movieID"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid movie id")
		return
	}

	if err := h.service.Remove(c.Request.Context(), actor.ID, movieID); err != nil {
		if errors.Is(err, ErrNotFavorite) {
			response.Error(c, http.StatusNotFound, "NOT_FAVORITE", "Movie is not in favorites")
			return
		}
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to remove favorite")
		return
	}

	c.Status(http.StatusNoContent)
}

// Check reports whether the movie is in the actor's favorites, for
// toggling UI state without loading the full list.
func (h *Handler) Check(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
		return
	}

	movieID, err := strconv.ParseInt(c.Param("movieID"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "invalid movie id")
		return
	}

	fav, err := h.service.IsFavorite(c.Request.Context(), actor.ID, movieID)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to check favorite")
		return
	}

	response.Success(c, http.StatusOK, gin.H{"movie_id": movieID, "favorite": fav})
}

func (h *Handler) List(c *gin.Context) {
	actor, ok := middleware.Actor(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "unauthorized")
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	result, err := h.service.List(
		c.Request.Context(),
		actor.ID,
		listing.ParseSortKey(c.Query("sort")),
		listing.ParseDirection(c.Query("order")),
		page,
		defaultPerPage,
	)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL", "failed to list favorites")
		return
	}

	response.Success(c, http.StatusOK, ToListResponse(result))
}
