package controller

import (
	"errors"

	"github.com/bimsrama/Relasi4warna-main/internal/archetype"
	"github.com/bimsrama/Relasi4warna-main/internal/model"
	"github.com/bimsrama/Relasi4warna-main/internal/scoring"
	"github.com/bimsrama/Relasi4warna-main/internal/service"
	"github.com/bimsrama/Relasi4warna-main/internal/util"
	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{
		QuizService: quizService,
	}
}

func queryLanguage(ctx *gin.Context) archetype.Language {
	return archetype.ParseLanguage(ctx.DefaultQuery("language", "id"))
}

// GetSeries godoc
// @Summary List question series
// @Tags quiz
// @Produce  json
// @Success 200 {object} util.Response{data=[]service.SeriesInfo} "Success"
// @Router /api/quiz/series [get]
func (c *QuizController) GetSeries(ctx *gin.Context) {
	util.Success(ctx, c.QuizService.Series())
}

// GetQuestions godoc
// @Summary Question bank for a series
// @Tags quiz
// @Produce  json
// @Param   series path string true "Series id"
// @Param   language query string false "id or en" default(id)
// @Success 200 {object} util.Response{data=[]service.QuestionView} "Success"
// @Failure 404 {object} util.Response "Unknown series"
// @Router /api/quiz/questions/{series} [get]
func (c *QuizController) GetQuestions(ctx *gin.Context) {
	questions, err := c.QuizService.Questions(ctx.Request.Context(), ctx.Param("series"), queryLanguage(ctx))
	if err != nil {
		if errors.Is(err, util.ErrSeriesNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, questions)
}

// swagger:model StartAttemptRequest
type StartAttemptRequest struct {
	Series   string `json:"series" binding:"required"`
	Language string `json:"language" binding:"omitempty,oneof=id en"`
}

// StartAttempt godoc
// @Summary Start a quiz attempt
// @Tags quiz
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body StartAttemptRequest true "Series and language"
// @Success 201 {object} util.Response{data=model.QuizAttempt} "Created"
// @Failure 404 {object} util.Response "Unknown series"
// @Router /api/quiz/start [post]
func (c *QuizController) StartAttempt(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req StartAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	attempt, err := c.QuizService.StartAttempt(claims.UserID, req.Series, req.Language)
	if err != nil {
		if errors.Is(err, util.ErrSeriesNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, attempt)
}

// swagger:model SubmitAttemptRequest
type SubmitAttemptRequest struct {
	AttemptID string           `json:"attempt_id" binding:"required"`
	Answers   []scoring.Answer `json:"answers"`
}

// SubmitAttempt godoc
// @Summary Submit answers and score the attempt
// @Description Scores the submitted answers. An attempt can be submitted
// once; the answer list may be empty.
// @Tags quiz
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body SubmitAttemptRequest true "Attempt id and answers"
// @Success 201 {object} util.Response{data=model.QuizResult} "Created"
// @Failure 404 {object} util.Response "Attempt not found"
// @Failure 409 {object} util.Response "Attempt already completed"
// @Router /api/quiz/submit [post]
func (c *QuizController) SubmitAttempt(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitAttemptRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.SubmitAttempt(claims.UserID, req.AttemptID, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAttemptNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrAttemptCompleted):
			util.Error(ctx, 409, "Attempt already completed")
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, result)
}

// GetResult godoc
// @Summary Fetch a scored result
// @Tags quiz
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Result id"
// @Success 200 {object} util.Response{data=model.QuizResult} "Success"
// @Failure 404 {object} util.Response "Result not found"
// @Router /api/quiz/result/{id} [get]
func (c *QuizController) GetResult(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	result, err := c.QuizService.GetResult(claims.UserID, ctx.Param("id"), claims.Role == model.RoleAdmin)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrResultNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	lang := queryLanguage(ctx)
	primary, _ := archetype.Parse(result.PrimaryArchetype)
	secondary, _ := archetype.Parse(result.SecondaryArchetype)

	util.Success(ctx, gin.H{
		"result":            result,
		"primary_profile":   primary.ProfileFor(lang),
		"secondary_profile": secondary.ProfileFor(lang),
	})
}

// GetHistory godoc
// @Summary Result history for the current user
// @Tags quiz
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.QuizResult} "Success"
// @Router /api/quiz/history [get]
func (c *QuizController) GetHistory(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	results, err := c.QuizService.History(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}

// GetArchetypes godoc
// @Summary All archetype profiles
// @Tags archetypes
// @Produce  json
// @Param   language query string false "id or en" default(id)
// @Success 200 {object} util.Response{data=object} "Success"
// @Router /api/archetypes [get]
func (c *QuizController) GetArchetypes(ctx *gin.Context) {
	lang := queryLanguage(ctx)
	out := make(map[string]archetype.Profile, 4)
	for _, a := range archetype.All() {
		out[string(a)] = a.ProfileFor(lang)
	}
	util.Success(ctx, out)
}

// GetArchetype godoc
// @Summary One archetype profile
// @Tags archetypes
// @Produce  json
// @Param   name path string true "driver, spark, anchor or analyst"
// @Param   language query string false "id or en" default(id)
// @Success 200 {object} util.Response{data=archetype.Profile} "Success"
// @Failure 404 {object} util.Response "Unknown archetype"
// @Router /api/archetypes/{name} [get]
func (c *QuizController) GetArchetype(ctx *gin.Context) {
	a, ok := archetype.Parse(ctx.Param("name"))
	if !ok {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, a.ProfileFor(queryLanguage(ctx)))
}
