package controller

import (
	"errors"

	"github.com/bimsrama/Relasi4warna-main/internal/service"
	"github.com/bimsrama/Relasi4warna-main/internal/util"
	"github.com/gin-gonic/gin"
)

type CouplesController struct {
	CouplesService *service.CouplesService
	AuthService    *service.AuthService
}

func NewCouplesController(couplesService *service.CouplesService, authService *service.AuthService) *CouplesController {
	return &CouplesController{
		CouplesService: couplesService,
		AuthService:    authService,
	}
}

func packError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrPackNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrResultNotFound):
		util.NotFound(ctx)
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	case errors.Is(err, util.ErrAlreadyMember):
		util.Error(ctx, 409, "Already a member of this pack")
	case errors.Is(err, util.ErrPackFull):
		util.Error(ctx, 409, "Pack has no free member slots")
	case errors.Is(err, util.ErrPackNotReady):
		util.Error(ctx, 409, "Pack is missing linked results")
	default:
		util.LogInternalError(ctx, err)
	}
}

// swagger:model CreateCouplesPackRequest
type CreateCouplesPackRequest struct {
	PartnerEmail string `json:"partner_email" binding:"omitempty,email"`
}

// Create godoc
// @Summary Create a couples pack
// @Tags couples
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateCouplesPackRequest true "Optional partner email to invite"
// @Success 201 {object} util.Response{data=model.CouplesPack} "Created"
// @Router /api/couples/create [post]
func (c *CouplesController) Create(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateCouplesPackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	pack, err := c.CouplesService.Create(user, req.PartnerEmail)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, pack)
}

// Join godoc
// @Summary Join a couples pack by invite code
// @Tags couples
// @Produce  json
// @Security ApiKeyAuth
// @Param   code path string true "Invite code"
// @Success 200 {object} util.Response{data=model.CouplesPack} "Success"
// @Failure 404 {object} util.Response "Pack not found"
// @Router /api/couples/join/{code} [post]
func (c *CouplesController) Join(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	pack, err := c.CouplesService.Join(claims.UserID, ctx.Param("code"))
	if err != nil {
		packError(ctx, err)
		return
	}
	util.Success(ctx, pack)
}

// swagger:model LinkResultRequest
type LinkResultRequest struct {
	ResultID string `json:"result_id" binding:"required"`
}

// LinkResult godoc
// @Summary Link your quiz result into the pack
// @Tags couples
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Pack id"
// @Param   body body LinkResultRequest true "Result to link"
// @Success 200 {object} util.Response{data=model.CouplesPack} "Success"
// @Router /api/couples/{id}/link-result [post]
func (c *CouplesController) LinkResult(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req LinkResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	pack, err := c.CouplesService.LinkResult(claims.UserID, ctx.Param("id"), req.ResultID)
	if err != nil {
		packError(ctx, err)
		return
	}
	util.Success(ctx, pack)
}

// Get godoc
// @Summary Fetch one couples pack
// @Tags couples
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Pack id"
// @Success 200 {object} util.Response{data=model.CouplesPack} "Success"
// @Router /api/couples/{id} [get]
func (c *CouplesController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	pack, err := c.CouplesService.Get(claims.UserID, ctx.Param("id"))
	if err != nil {
		packError(ctx, err)
		return
	}
	util.Success(ctx, pack)
}

// MyPacks godoc
// @Summary Couples packs of the current user
// @Tags couples
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.CouplesPack} "Success"
// @Router /api/couples/my-packs [get]
func (c *CouplesController) MyPacks(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	packs, err := c.CouplesService.MyPacks(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, packs)
}

// Comparison godoc
// @Summary Compatibility comparison for the pack
// @Description Requires both members to have linked a result. Generated once
// and cached on the pack.
// @Tags couples
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Pack id"
// @Param   language query string false "id or en" default(id)
// @Success 200 {object} util.Response{data=service.CouplesComparison} "Success"
// @Failure 409 {object} util.Response "Pack is missing linked results"
// @Router /api/couples/{id}/comparison [get]
func (c *CouplesController) Comparison(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	comparison, err := c.CouplesService.Comparison(claims.UserID, ctx.Param("id"), queryLanguage(ctx))
	if err != nil {
		packError(ctx, err)
		return
	}
	util.Success(ctx, comparison)
}
