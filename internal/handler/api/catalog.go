package api

import (
	"errors"
	"net/http"

	reqdto "carevacay/internal/handler/dto/request"
	resdto "carevacay/internal/handler/dto/response"
	"carevacay/internal/pkg/errs"
	"carevacay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CatalogHandler struct {
	catalogQueries queries.CatalogQueries
}

func NewCatalogHandler(catalogQueries queries.CatalogQueries) *CatalogHandler {
	return &CatalogHandler{
		catalogQueries: catalogQueries,
	}
}

// @Summary Search properties
// @Description Filter and sort the property catalog
// @Tags catalog
// @Accept json
// @Produce json
// @Param request body reqdto.SearchRequest true "Search filters and sort key"
// @Success 200 {object} resdto.SearchResponse
// @Failure 400 {object} map[string]string
// @Router /search [post]
func (h *CatalogHandler) Search(c *gin.Context) {
	var req reqdto.SearchRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	spec, sortKey := req.ToSpec()
	result, err := h.catalogQueries.Search(c.Request.Context(), spec, sortKey)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSearchResult(result))
}

// @Summary Get property
// @Description Get a single catalog entry by ID
// @Tags catalog
// @Produce json
// @Param id path string true "Property ID"
// @Success 200 {object} resdto.PropertyResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /properties/{id} [get]
func (h *CatalogHandler) GetProperty(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid property ID format",
		})
		return
	}

	view, err := h.catalogQueries.GetProperty(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrPropertyNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Property not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromPropertyView(view))
}
