package controller

import (
	"errors"
	"net/http"

	"github.com/bimsrama/Relasi4warna-main/internal/archetype"
	"github.com/bimsrama/Relasi4warna-main/internal/compatibility"
	"github.com/bimsrama/Relasi4warna-main/internal/service"
	"github.com/bimsrama/Relasi4warna-main/internal/util"
	"github.com/bimsrama/Relasi4warna-main/pkg/monitoring"
	"github.com/gin-gonic/gin"
)

// CompatibilityController serves the public compatibility endpoints. The
// table is static so nothing here requires authentication.
type CompatibilityController struct{}

func NewCompatibilityController() *CompatibilityController {
	return &CompatibilityController{}
}

// GetMatrix godoc
// @Summary 4x4 compatibility score grid
// @Tags compatibility
// @Produce  json
// @Success 200 {object} util.Response{data=[]compatibility.MatrixRow} "Success"
// @Router /api/compatibility/matrix [get]
func (c *CompatibilityController) GetMatrix(ctx *gin.Context) {
	util.Success(ctx, compatibility.MatrixSummary())
}

// GetPair godoc
// @Summary Compatibility record for a pair
// @Tags compatibility
// @Produce  json
// @Param   archetype1 path string true "First archetype"
// @Param   archetype2 path string true "Second archetype"
// @Param   language query string false "id or en" default(id)
// @Success 200 {object} util.Response{data=compatibility.View} "Success"
// @Failure 400 {object} util.Response "Invalid archetype"
// @Router /api/compatibility/{archetype1}/{archetype2} [get]
func (c *CompatibilityController) GetPair(ctx *gin.Context) {
	view, err := compatibility.LookupNames(ctx.Param("archetype1"), ctx.Param("archetype2"), queryLanguage(ctx))
	if err != nil {
		if errors.Is(err, compatibility.ErrInvalidArchetype) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	monitoring.CompatibilityLookups.WithLabelValues(view.Pair).Inc()
	util.Success(ctx, view)
}

// GetRanking godoc
// @Summary Pairings for one archetype, best first
// @Tags compatibility
// @Produce  json
// @Param   name path string true "Archetype"
// @Param   language query string false "id or en" default(id)
// @Success 200 {object} util.Response{data=[]compatibility.Ranked} "Success"
// @Failure 400 {object} util.Response "Invalid archetype"
// @Router /api/compatibility/for/{name} [get]
func (c *CompatibilityController) GetRanking(ctx *gin.Context) {
	ranked, err := compatibility.RankForName(ctx.Param("name"), queryLanguage(ctx))
	if err != nil {
		if errors.Is(err, compatibility.ErrInvalidArchetype) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, ranked)
}

// GetShareCard godoc
// @Summary SVG share card for a pair
// @Tags compatibility
// @Produce  image/svg+xml
// @Param   archetype1 path string true "First archetype"
// @Param   archetype2 path string true "Second archetype"
// @Param   language query string false "id or en" default(id)
// @Success 200 {string} string "SVG image"
// @Failure 400 {object} util.Response "Invalid archetype"
// @Router /api/compatibility/share/card/{archetype1}/{archetype2} [get]
func (c *CompatibilityController) GetShareCard(ctx *gin.Context) {
	a, ok := archetype.Parse(ctx.Param("archetype1"))
	if !ok {
		util.BadRequest(ctx, "invalid archetype")
		return
	}
	b, ok := archetype.Parse(ctx.Param("archetype2"))
	if !ok {
		util.BadRequest(ctx, "invalid archetype")
		return
	}

	svg, err := service.RenderCompatibilityCard(a, b, queryLanguage(ctx))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	ctx.Data(http.StatusOK, "image/svg+xml", []byte(svg))
}
