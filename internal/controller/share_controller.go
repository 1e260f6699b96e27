package controller

import (
	"errors"
	"net/http"

	"github.com/bimsrama/Relasi4warna-main/internal/service"
	"github.com/bimsrama/Relasi4warna-main/internal/util"
	"github.com/gin-gonic/gin"
)

type ShareController struct {
	ShareService *service.ShareService
}

func NewShareController(shareService *service.ShareService) *ShareController {
	return &ShareController{
		ShareService: shareService,
	}
}

// GetCard godoc
// @Summary SVG share card for a result
// @Tags share
// @Produce  image/svg+xml
// @Param   id path string true "Result id"
// @Param   language query string false "id or en" default(id)
// @Success 200 {string} string "SVG image"
// @Failure 404 {object} util.Response "Result not found"
// @Router /api/share/card/{id} [get]
func (c *ShareController) GetCard(ctx *gin.Context) {
	svg, err := c.ShareService.ResultCard(ctx.Param("id"), queryLanguage(ctx))
	if err != nil {
		if errors.Is(err, util.ErrResultNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	ctx.Data(http.StatusOK, "image/svg+xml", []byte(svg))
}

// PublishCard godoc
// @Summary Upload the share card to storage and return its URL
// @Tags share
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Result id"
// @Param   language query string false "id or en" default(id)
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 404 {object} util.Response "Result not found"
// @Router /api/share/publish/{id} [post]
func (c *ShareController) PublishCard(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	url, err := c.ShareService.PublishResultCard(ctx.Request.Context(), ctx.Param("id"), queryLanguage(ctx))
	if err != nil {
		if errors.Is(err, util.ErrResultNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"url": url})
}

// GetData godoc
// @Summary Share metadata for a result
// @Tags share
// @Produce  json
// @Param   id path string true "Result id"
// @Param   language query string false "id or en" default(id)
// @Success 200 {object} util.Response{data=service.ShareData} "Success"
// @Failure 404 {object} util.Response "Result not found"
// @Router /api/share/data/{id} [get]
func (c *ShareController) GetData(ctx *gin.Context) {
	data, err := c.ShareService.Data(ctx.Param("id"), queryLanguage(ctx))
	if err != nil {
		if errors.Is(err, util.ErrResultNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, data)
}
