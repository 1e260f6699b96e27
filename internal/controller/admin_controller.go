package controller

import (
	"errors"
	"strconv"

	"github.com/bimsrama/Relasi4warna-main/internal/model"
	"github.com/bimsrama/Relasi4warna-main/internal/repository"
	"github.com/bimsrama/Relasi4warna-main/internal/service"
	"github.com/bimsrama/Relasi4warna-main/internal/util"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type AdminController struct {
	UserRepo     *repository.UserRepository
	QuizRepo     *repository.QuizRepository
	PaymentRepo  *repository.PaymentRepository
	QuestionRepo *repository.QuestionRepository
	QuizService  *service.QuizService
}

func NewAdminController(
	userRepo *repository.UserRepository,
	quizRepo *repository.QuizRepository,
	paymentRepo *repository.PaymentRepository,
	questionRepo *repository.QuestionRepository,
	quizService *service.QuizService,
) *AdminController {
	return &AdminController{
		UserRepo:     userRepo,
		QuizRepo:     quizRepo,
		PaymentRepo:  paymentRepo,
		QuestionRepo: questionRepo,
		QuizService:  quizService,
	}
}

func pageParams(ctx *gin.Context) (int, int) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

// GetStats godoc
// @Summary Platform statistics
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=object} "Success"
// @Router /api/admin/stats [get]
func (c *AdminController) GetStats(ctx *gin.Context) {
	users, err := c.UserRepo.Count()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	results, err := c.QuizRepo.CountResults()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	stressFlagged, err := c.QuizRepo.CountStressFlagged()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	paidPayments, err := c.PaymentRepo.CountPaid()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	revenue, err := c.PaymentRepo.SumPaidAmount()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{
		"users":            users,
		"results":          results,
		"stress_flagged":   stressFlagged,
		"paid_payments":    paidPayments,
		"revenue":          revenue,
		"revenue_currency": "IDR",
	})
}

// GetUsers godoc
// @Summary Paged user listing
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   page query int false "Page" default(1)
// @Param   limit query int false "Page size" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse} "Success"
// @Router /api/admin/users [get]
func (c *AdminController) GetUsers(ctx *gin.Context) {
	page, limit := pageParams(ctx)
	users, total, err := c.UserRepo.List(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{
		List:  users,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// GetResults godoc
// @Summary Paged quiz result listing
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   page query int false "Page" default(1)
// @Param   limit query int false "Page size" default(20)
// @Success 200 {object} util.Response{data=util.PageResponse} "Success"
// @Router /api/admin/results [get]
func (c *AdminController) GetResults(ctx *gin.Context) {
	page, limit := pageParams(ctx)
	results, total, err := c.QuizRepo.ListResults(page, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, util.PageResponse{
		List:  results,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// GetQuestions godoc
// @Summary All questions of a series, inactive ones included
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   series path string true "Series id"
// @Success 200 {object} util.Response{data=[]model.Question} "Success"
// @Router /api/admin/questions/{series} [get]
func (c *AdminController) GetQuestions(ctx *gin.Context) {
	questions, err := c.QuestionRepo.FindAllBySeries(ctx.Param("series"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, questions)
}

// swagger:model QuestionRequest
type QuestionRequest struct {
	Series       string                 `json:"series" binding:"required,oneof=family business friendship couples"`
	SortOrder    int                    `json:"sort_order"`
	TextID       string                 `json:"text_id" binding:"required"`
	TextEN       string                 `json:"text_en" binding:"required"`
	Options      []model.QuestionOption `json:"options" binding:"required,len=4"`
	StressMarker bool                   `json:"stress_marker"`
	Active       *bool                  `json:"active"`
}

// CreateQuestion godoc
// @Summary Add a question to the bank
// @Tags admin
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body QuestionRequest true "Question"
// @Success 201 {object} util.Response{data=model.Question} "Created"
// @Router /api/admin/questions [post]
func (c *AdminController) CreateQuestion(ctx *gin.Context) {
	var req QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question := &model.Question{
		Series:       req.Series,
		SortOrder:    req.SortOrder,
		TextID:       req.TextID,
		TextEN:       req.TextEN,
		Options:      req.Options,
		StressMarker: req.StressMarker,
		Active:       true,
	}
	if req.Active != nil {
		question.Active = *req.Active
	}
	if err := c.QuestionRepo.Create(question); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	c.QuizService.InvalidateQuestionCache(ctx.Request.Context(), question.Series)
	util.Created(ctx, question)
}

// UpdateQuestion godoc
// @Summary Update a question
// @Tags admin
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Question id"
// @Param   body body QuestionRequest true "Question"
// @Success 200 {object} util.Response{data=model.Question} "Success"
// @Failure 404 {object} util.Response "Question not found"
// @Router /api/admin/questions/{id} [put]
func (c *AdminController) UpdateQuestion(ctx *gin.Context) {
	question, err := c.QuestionRepo.FindByID(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	var req QuestionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	question.Series = req.Series
	question.SortOrder = req.SortOrder
	question.TextID = req.TextID
	question.TextEN = req.TextEN
	question.Options = req.Options
	question.StressMarker = req.StressMarker
	if req.Active != nil {
		question.Active = *req.Active
	}
	if err := c.QuestionRepo.Update(question); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	c.QuizService.InvalidateQuestionCache(ctx.Request.Context(), question.Series)
	util.Success(ctx, question)
}

// DeleteQuestion godoc
// @Summary Remove a question from the bank
// @Tags admin
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Question id"
// @Success 200 {object} util.Response "Success"
// @Failure 404 {object} util.Response "Question not found"
// @Router /api/admin/questions/{id} [delete]
func (c *AdminController) DeleteQuestion(ctx *gin.Context) {
	question, err := c.QuestionRepo.FindByID(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	if err := c.QuestionRepo.Delete(question.ID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	c.QuizService.InvalidateQuestionCache(ctx.Request.Context(), question.Series)
	util.Success(ctx, gin.H{"status": "deleted"})
}
