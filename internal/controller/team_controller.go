package controller

import (
	"github.com/bimsrama/Relasi4warna-main/internal/service"
	"github.com/bimsrama/Relasi4warna-main/internal/util"
	"github.com/gin-gonic/gin"
)

type TeamController struct {
	TeamService *service.TeamService
	AuthService *service.AuthService
}

func NewTeamController(teamService *service.TeamService, authService *service.AuthService) *TeamController {
	return &TeamController{
		TeamService: teamService,
		AuthService: authService,
	}
}

// swagger:model CreateTeamPackRequest
type CreateTeamPackRequest struct {
	Name       string `json:"name" binding:"required"`
	MaxMembers int    `json:"max_members"`
}

// Create godoc
// @Summary Create a team pack
// @Tags teams
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreateTeamPackRequest true "Team name and optional member limit"
// @Success 201 {object} util.Response{data=model.TeamPack} "Created"
// @Router /api/team/create [post]
func (c *TeamController) Create(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreateTeamPackRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	pack, err := c.TeamService.Create(user, req.Name, req.MaxMembers)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, pack)
}

// swagger:model TeamInviteRequest
type TeamInviteRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// Invite godoc
// @Summary Invite someone to the team by email
// @Tags teams
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Pack id"
// @Param   body body TeamInviteRequest true "Invitee email"
// @Success 200 {object} util.Response "Invited"
// @Router /api/team/{id}/invite [post]
func (c *TeamController) Invite(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req TeamInviteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.TeamService.Invite(user, ctx.Param("id"), req.Email); err != nil {
		packError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"status": "invited"})
}

// Join godoc
// @Summary Join a team pack by invite code
// @Tags teams
// @Produce  json
// @Security ApiKeyAuth
// @Param   code path string true "Invite code"
// @Success 200 {object} util.Response{data=model.TeamPack} "Success"
// @Failure 404 {object} util.Response "Pack not found"
// @Router /api/team/join/{code} [post]
func (c *TeamController) Join(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	pack, err := c.TeamService.Join(user, ctx.Param("code"))
	if err != nil {
		packError(ctx, err)
		return
	}
	util.Success(ctx, pack)
}

// LinkResult godoc
// @Summary Link your quiz result into the team
// @Tags teams
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Pack id"
// @Param   body body LinkResultRequest true "Result to link"
// @Success 200 {object} util.Response{data=model.TeamPack} "Success"
// @Router /api/team/{id}/link-result [post]
func (c *TeamController) LinkResult(ctx *gin.Context) {
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

	pack, err := c.TeamService.LinkResult(claims.UserID, ctx.Param("id"), req.ResultID)
	if err != nil {
		packError(ctx, err)
		return
	}
	util.Success(ctx, pack)
}

// Get godoc
// @Summary Fetch one team pack
// @Tags teams
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Pack id"
// @Success 200 {object} util.Response{data=model.TeamPack} "Success"
// @Router /api/team/{id} [get]
func (c *TeamController) Get(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	pack, err := c.TeamService.Get(claims.UserID, ctx.Param("id"))
	if err != nil {
		packError(ctx, err)
		return
	}
	util.Success(ctx, pack)
}

// MyPacks godoc
// @Summary Team packs of the current user
// @Tags teams
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.TeamPack} "Success"
// @Router /api/team/my-packs [get]
func (c *TeamController) MyPacks(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	packs, err := c.TeamService.MyPacks(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, packs)
}

// Leave godoc
// @Summary Leave a team pack
// @Tags teams
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Pack id"
// @Success 200 {object} util.Response "Success"
// @Router /api/team/{id}/leave [post]
func (c *TeamController) Leave(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.TeamService.Leave(claims.UserID, ctx.Param("id")); err != nil {
		packError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"status": "left"})
}

// Analysis godoc
// @Summary Pairwise compatibility analysis for the team
// @Description Requires at least two members with linked results. Cached
// until the member list changes.
// @Tags teams
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Pack id"
// @Param   language query string false "id or en" default(id)
// @Success 200 {object} util.Response{data=service.TeamAnalysis} "Success"
// @Failure 409 {object} util.Response "Not enough linked results"
// @Router /api/team/{id}/analysis [get]
func (c *TeamController) Analysis(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	analysis, err := c.TeamService.Analysis(claims.UserID, ctx.Param("id"), queryLanguage(ctx))
	if err != nil {
		packError(ctx, err)
		return
	}
	util.Success(ctx, analysis)
}
