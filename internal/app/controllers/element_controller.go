package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/elementa/backend/internal/app/content"
	"github.com/elementa/backend/internal/app/models/dto"
)

// ElementController serves the elemental energy reference content
type ElementController struct{}

// NewElementController creates a new ElementController
func NewElementController() *ElementController {
	return &ElementController{}
}

// ListElements returns all six elements
// @Summary List elements
// @Description Returns the six elemental energies in canonical order
// @Tags elements
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]content.Element} "Elements"
// @Router /elements [get]
func (c *ElementController) ListElements(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      content.Elements,
		Timestamp: time.Now(),
	})
}

// GetElement returns one element by slug
// @Summary Get element details
// @Description Returns a single elemental energy by its slug
// @Tags elements
// @Produce json
// @Param slug path string true "Element slug" Enums(electric, fiery, aquatic, earthly, airy, metallic)
// @Success 200 {object} dto.APIResponse{data=content.Element} "Element"
// @Failure 404 {object} dto.ErrorResponse "Element not found"
// @Router /elements/{slug} [get]
func (c *ElementController) GetElement(ctx *gin.Context) {
	slug := ctx.Param("slug")

	element, ok := content.ElementBySlug(slug)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Element not found")
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      element,
		Timestamp: time.Now(),
	})
}

// GetCompatibility returns an element's compatibility with all elements
// @Summary Get element compatibility
// @Description Returns the element's compatibility with every element in canonical order, optionally narrowed to one pairing
// @Tags elements
// @Produce json
// @Param slug path string true "Element slug"
// @Param with query string false "Narrow the result to the pairing with this element"
// @Success 200 {object} dto.APIResponse{data=[]content.CompatibilityEntry} "Compatibility pairings"
// @Failure 404 {object} dto.ErrorResponse "Element not found"
// @Router /elements/{slug}/compatibility [get]
func (c *ElementController) GetCompatibility(ctx *gin.Context) {
	slug := ctx.Param("slug")

	entries, ok := content.CompatibilityList(slug)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Element not found")
		ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
		return
	}

	if other := ctx.Query("with"); other != "" {
		if !content.IsElementSlug(other) {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, "Element not found")
			ctx.JSON(http.StatusNotFound, dto.NewErrorResponse(errorDetail))
			return
		}
		for _, entry := range entries {
			if entry.Element == other {
				entries = []content.CompatibilityEntry{entry}
				break
			}
		}
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      entries,
		Timestamp: time.Now(),
	})
}
