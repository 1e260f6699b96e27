package controller

import (
	"errors"

	"github.com/bimsrama/Relasi4warna-main/internal/service"
	"github.com/bimsrama/Relasi4warna-main/internal/util"
	"github.com/bimsrama/Relasi4warna-main/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PaymentController struct {
	PaymentService *service.PaymentService
	AuthService    *service.AuthService
}

func NewPaymentController(paymentService *service.PaymentService, authService *service.AuthService) *PaymentController {
	return &PaymentController{
		PaymentService: paymentService,
		AuthService:    authService,
	}
}

// GetProducts godoc
// @Summary Product catalog
// @Tags payments
// @Produce  json
// @Success 200 {object} util.Response{data=[]service.Product} "Success"
// @Router /api/payments/products [get]
func (c *PaymentController) GetProducts(ctx *gin.Context) {
	util.Success(ctx, c.PaymentService.Products())
}

// swagger:model CreatePaymentRequest
type CreatePaymentRequest struct {
	ProductID string `json:"product_id" binding:"required"`
	ResultID  string `json:"result_id"`
}

// CreatePayment godoc
// @Summary Open a payment session
// @Description Creates a Midtrans Snap transaction and returns the token and
// redirect URL.
// @Tags payments
// @Accept  json
// @Produce  json
// @Security ApiKeyAuth
// @Param   body body CreatePaymentRequest true "Product and optional result"
// @Success 201 {object} util.Response{data=model.Payment} "Created"
// @Failure 400 {object} util.Response "Unknown product"
// @Router /api/payments/create [post]
func (c *PaymentController) CreatePayment(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CreatePaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	payment, err := c.PaymentService.CreatePayment(user, req.ProductID, req.ResultID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrProductNotFound):
			util.BadRequest(ctx, "Unknown product")
		case errors.Is(err, util.ErrResultNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Created(ctx, payment)
}

// Webhook godoc
// @Summary Midtrans payment notification
// @Description Verifies the SHA-512 signature and applies the transaction
// status. Always answers 200 to acknowledged notifications so the gateway
// stops retrying.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   body body service.Notification true "Midtrans notification payload"
// @Success 200 {object} util.Response "Received"
// @Failure 401 {object} util.Response "Invalid signature"
// @Router /api/payments/webhook [post]
func (c *PaymentController) Webhook(ctx *gin.Context) {
	var n service.Notification
	if err := ctx.ShouldBindJSON(&n); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.PaymentService.HandleNotification(n); err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidSignature):
			util.Error(ctx, 401, "Invalid signature")
		case errors.Is(err, util.ErrPaymentNotFound):
			// Unknown order ids are acknowledged so Midtrans stops
			// redelivering notifications for orders we never created.
			logger.Log.Warn("webhook for unknown order", zap.String("order_id", n.OrderID))
			util.Success(ctx, gin.H{"status": "ignored"})
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"status": "received"})
}

// SimulatePayment godoc
// @Summary Settle a payment without the gateway (demo only)
// @Tags payments
// @Produce  json
// @Security ApiKeyAuth
// @Param   orderId path string true "Merchant order id"
// @Success 200 {object} util.Response "Success"
// @Failure 404 {object} util.Response "Payment not found"
// @Router /api/payments/simulate/{orderId} [post]
func (c *PaymentController) SimulatePayment(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.PaymentService.SimulatePayment(claims.UserID, ctx.Param("orderId")); err != nil {
		switch {
		case errors.Is(err, util.ErrPaymentNotFound):
			util.NotFound(ctx)
		case errors.Is(err, util.ErrPermissionDenied):
			util.Forbidden(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"status": "success", "message": "Payment simulated successfully"})
}

// GetHistory godoc
// @Summary Payment history for the current user
// @Tags payments
// @Produce  json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response{data=[]model.Payment} "Success"
// @Router /api/payments/history [get]
func (c *PaymentController) GetHistory(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	payments, err := c.PaymentService.History(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, payments)
}
