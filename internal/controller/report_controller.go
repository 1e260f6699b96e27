package controller

import (
	"errors"

	"github.com/bimsrama/Relasi4warna-main/internal/service"
	"github.com/bimsrama/Relasi4warna-main/internal/util"
	"github.com/gin-gonic/gin"
)

type ReportController struct {
	ReportService *service.ReportService
}

func NewReportController(reportService *service.ReportService) *ReportController {
	return &ReportController{
		ReportService: reportService,
	}
}

// GenerateReport godoc
// @Summary Premium report for a paid result
// @Description Returns the cached report or generates it on first call.
// Requires the result to be unlocked by a payment.
// @Tags reports
// @Produce  json
// @Security ApiKeyAuth
// @Param   id path string true "Result id"
// @Success 200 {object} util.Response{data=object} "Success"
// @Failure 402 {object} util.Response "Payment required"
// @Failure 404 {object} util.Response "Result not found"
// @Router /api/reports/generate/{id} [post]
func (c *ReportController) GenerateReport(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	report, err := c.ReportService.Generate(claims.UserID, ctx.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, util.ErrResultNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrResultNotPaid):
			util.Error(ctx, 402, "Payment required for detailed report")
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"result_id": ctx.Param("id"), "report": report})
}
