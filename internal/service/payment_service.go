package service

import (
	"bytes"
	"crypto/sha512"
	"crypto/subtle"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bimsrama/Relasi4warna-main/internal/config"
	"github.com/bimsrama/Relasi4warna-main/internal/model"
	"github.com/bimsrama/Relasi4warna-main/internal/repository"
	"github.com/bimsrama/Relasi4warna-main/internal/util"
	"github.com/bimsrama/Relasi4warna-main/pkg/logger"
	"github.com/bimsrama/Relasi4warna-main/pkg/monitoring"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	snapSandboxURL    = "https://app.sandbox.midtrans.com/snap/v1/transactions"
	snapProductionURL = "https://app.midtrans.com/snap/v1/transactions"
)

// Product is one fixed catalog entry. Prices are constants of the product,
// not admin-editable rows.
type Product struct {
	ID       string  `json:"id"`
	NameID   string  `json:"name_id"`
	NameEN   string  `json:"name_en"`
	PriceIDR int64   `json:"price_idr"`
	PriceUSD float64 `json:"price_usd"`
}

var productCatalog = []Product{
	{ID: "single_report", NameID: "Laporan Lengkap", NameEN: "Full Report", PriceIDR: 99000, PriceUSD: 6.99},
	{ID: "family_pack", NameID: "Paket Keluarga (6 orang)", NameEN: "Family Pack (6 people)", PriceIDR: 349000, PriceUSD: 24.99},
	{ID: "team_pack", NameID: "Paket Tim (10 orang)", NameEN: "Team Pack (10 people)", PriceIDR: 499000, PriceUSD: 34.99},
	{ID: "couples_pack", NameID: "Paket Pasangan", NameEN: "Couples Pack", PriceIDR: 149000, PriceUSD: 9.99},
	{ID: "subscription", NameID: "Langganan Bulanan", NameEN: "Monthly Subscription", PriceIDR: 199000, PriceUSD: 14.99},
}

type PaymentService struct {
	PaymentRepo *repository.PaymentRepository
	QuizRepo    *repository.QuizRepository
	UserRepo    *repository.UserRepository
	Cfg         config.PaymentConfig
	client      *http.Client
}

func NewPaymentService(paymentRepo *repository.PaymentRepository, quizRepo *repository.QuizRepository, userRepo *repository.UserRepository, cfg config.PaymentConfig) *PaymentService {
	return &PaymentService{
		PaymentRepo: paymentRepo,
		QuizRepo:    quizRepo,
		UserRepo:    userRepo,
		Cfg:         cfg,
		client:      &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *PaymentService) Products() []Product {
	return productCatalog
}

func productByID(id string) (Product, bool) {
	for _, p := range productCatalog {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

type snapRequest struct {
	TransactionDetails struct {
		OrderID     string `json:"order_id"`
		GrossAmount int64  `json:"gross_amount"`
	} `json:"transaction_details"`
	CustomerDetails struct {
		FirstName string `json:"first_name"`
		Email     string `json:"email"`
	} `json:"customer_details"`
	ItemDetails []struct {
		ID       string `json:"id"`
		Price    int64  `json:"price"`
		Quantity int    `json:"quantity"`
		Name     string `json:"name"`
	} `json:"item_details"`
}

type snapResponse struct {
	Token         string   `json:"token"`
	RedirectURL   string   `json:"redirect_url"`
	ErrorMessages []string `json:"error_messages"`
}

// CreatePayment opens a Midtrans Snap session and records the pending
// payment. Currency is always IDR on the gateway side; the USD price is
// display information for international visitors.
func (s *PaymentService) CreatePayment(user *model.User, productID, resultID string) (*model.Payment, error) {
	product, ok := productByID(productID)
	if !ok {
		return nil, util.ErrProductNotFound
	}

	if productID == "single_report" {
		result, err := s.QuizRepo.FindResultByID(resultID)
		if err != nil {
			if err == gorm.ErrRecordNotFound {
				return nil, util.ErrResultNotFound
			}
			return nil, err
		}
		if result.UserID != user.ID {
			return nil, util.ErrPermissionDenied
		}
	}

	orderID := fmt.Sprintf("R4W-%s", strings.ReplaceAll(uuid.New().String(), "-", "")[:16])

	payment := &model.Payment{
		OrderID:   orderID,
		UserID:    user.ID,
		ProductID: productID,
		ResultID:  resultID,
		Amount:    product.PriceIDR,
		Currency:  "IDR",
		Status:    model.PaymentPending,
	}

	token, redirectURL, err := s.createSnapTransaction(orderID, product, user)
	if err != nil {
		return nil, err
	}
	payment.SnapToken = token
	payment.RedirectURL = redirectURL

	if err := s.PaymentRepo.Create(payment); err != nil {
		return nil, err
	}
	return payment, nil
}

func (s *PaymentService) snapURL() string {
	if s.Cfg.Production {
		return snapProductionURL
	}
	return snapSandboxURL
}

func (s *PaymentService) createSnapTransaction(orderID string, product Product, user *model.User) (string, string, error) {
	var req snapRequest
	req.TransactionDetails.OrderID = orderID
	req.TransactionDetails.GrossAmount = product.PriceIDR
	req.CustomerDetails.FirstName = user.Name
	req.CustomerDetails.Email = user.Email
	req.ItemDetails = append(req.ItemDetails, struct {
		ID       string `json:"id"`
		Price    int64  `json:"price"`
		Quantity int    `json:"quantity"`
		Name     string `json:"name"`
	}{ID: product.ID, Price: product.PriceIDR, Quantity: 1, Name: product.NameID})

	body, err := json.Marshal(req)
	if err != nil {
		return "", "", err
	}

	httpReq, err := http.NewRequest("POST", s.snapURL(), bytes.NewBuffer(body))
	if err != nil {
		return "", "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	auth := base64.StdEncoding.EncodeToString([]byte(s.Cfg.ServerKey + ":"))
	httpReq.Header.Set("Authorization", "Basic "+auth)

	resp, err := s.client.Do(httpReq)
	if err != nil {
		return "", "", err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode >= 300 {
		return "", "", fmt.Errorf("midtrans snap error (status %d): %s", resp.StatusCode, string(respBody))
	}

	var snap snapResponse
	if err := json.Unmarshal(respBody, &snap); err != nil {
		return "", "", err
	}
	if len(snap.ErrorMessages) > 0 {
		return "", "", fmt.Errorf("midtrans snap rejected: %s", strings.Join(snap.ErrorMessages, "; "))
	}
	return snap.Token, snap.RedirectURL, nil
}

// Notification is the subset of the Midtrans webhook payload the handler
// consumes. GrossAmount stays a string because the signature is computed over
// the exact characters Midtrans sent.
type Notification struct {
	OrderID           string `json:"order_id"`
	StatusCode        string `json:"status_code"`
	GrossAmount       string `json:"gross_amount"`
	TransactionStatus string `json:"transaction_status"`
	FraudStatus       string `json:"fraud_status"`
	SignatureKey      string `json:"signature_key"`
}

func (s *PaymentService) verifySignature(n Notification) bool {
	sum := sha512.Sum512([]byte(n.OrderID + n.StatusCode + n.GrossAmount + s.Cfg.ServerKey))
	expected := hex.EncodeToString(sum[:])
	return subtle.ConstantTimeCompare([]byte(expected), []byte(strings.ToLower(n.SignatureKey))) == 1
}

// HandleNotification applies a webhook. Settlement (or accepted capture)
// marks the payment paid and grants the product; deny/cancel/expire record
// the terminal status. Redeliveries are no-ops thanks to the status guard.
func (s *PaymentService) HandleNotification(n Notification) error {
	if !s.verifySignature(n) {
		return util.ErrInvalidSignature
	}

	payment, err := s.PaymentRepo.FindByOrderID(n.OrderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrPaymentNotFound
		}
		return err
	}

	switch n.TransactionStatus {
	case "settlement", "capture":
		if n.TransactionStatus == "capture" && n.FraudStatus != "accept" {
			return nil
		}
		return s.settle(payment)
	case "deny", "cancel":
		monitoring.PaymentsSettled.WithLabelValues(payment.ProductID, string(model.PaymentFailed)).Inc()
		return s.PaymentRepo.UpdateStatus(n.OrderID, model.PaymentFailed)
	case "expire":
		monitoring.PaymentsSettled.WithLabelValues(payment.ProductID, string(model.PaymentExpired)).Inc()
		return s.PaymentRepo.UpdateStatus(n.OrderID, model.PaymentExpired)
	default:
		// pending and other intermediate states leave the record untouched
		return nil
	}
}

func (s *PaymentService) settle(payment *model.Payment) error {
	rows, err := s.PaymentRepo.MarkPaid(payment.OrderID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return nil
	}

	monitoring.PaymentsSettled.WithLabelValues(payment.ProductID, string(model.PaymentPaid)).Inc()

	if payment.ResultID != "" {
		if err := s.QuizRepo.MarkResultPaid(payment.ResultID); err != nil {
			logger.Log.Error("failed to unlock result after settlement",
				zap.String("order_id", payment.OrderID),
				zap.String("result_id", payment.ResultID),
				zap.Error(err))
		}
	}
	if payment.ProductID == "subscription" {
		if err := s.UserRepo.SetSubscribed(payment.UserID, true); err != nil {
			logger.Log.Error("failed to activate subscription",
				zap.String("order_id", payment.OrderID), zap.Error(err))
		}
	}
	return nil
}

// SimulatePayment settles a pending payment without the gateway, for demo
// environments. Only the payment's owner may trigger it, and never in
// production mode.
func (s *PaymentService) SimulatePayment(userID uint, orderID string) error {
	if s.Cfg.Production {
		return util.ErrPermissionDenied
	}
	payment, err := s.PaymentRepo.FindByOrderID(orderID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return util.ErrPaymentNotFound
		}
		return err
	}
	if payment.UserID != userID {
		return util.ErrPermissionDenied
	}
	return s.settle(payment)
}

func (s *PaymentService) History(userID uint) ([]model.Payment, error) {
	return s.PaymentRepo.FindByUser(userID)
}
