package service

import (
	"crypto/sha512"
	"encoding/hex"
	"errors"
	"strings"
	"testing"

	"github.com/bimsrama/Relasi4warna-main/internal/config"
	"github.com/bimsrama/Relasi4warna-main/internal/util"
)

func signNotification(n Notification, serverKey string) string {
	sum := sha512.Sum512([]byte(n.OrderID + n.StatusCode + n.GrossAmount + serverKey))
	return hex.EncodeToString(sum[:])
}

func TestVerifySignature(t *testing.T) {
	svc := NewPaymentService(nil, nil, nil, config.PaymentConfig{ServerKey: "SB-Mid-server-testkey"})

	base := Notification{
		OrderID:     "R4W-abc123def456ab78",
		StatusCode:  "200",
		GrossAmount: "99000.00",
	}

	tests := []struct {
		name   string
		mutate func(n *Notification)
		want   bool
	}{
		{
			name:   "valid signature",
			mutate: func(n *Notification) { n.SignatureKey = signNotification(*n, "SB-Mid-server-testkey") },
			want:   true,
		},
		{
			name: "uppercase hex accepted",
			mutate: func(n *Notification) {
				n.SignatureKey = strings.ToUpper(signNotification(*n, "SB-Mid-server-testkey"))
			},
			want: true,
		},
		{
			name: "tampered amount",
			mutate: func(n *Notification) {
				n.SignatureKey = signNotification(*n, "SB-Mid-server-testkey")
				n.GrossAmount = "1.00"
			},
			want: false,
		},
		{
			name:   "signed with wrong key",
			mutate: func(n *Notification) { n.SignatureKey = signNotification(*n, "someone-elses-key") },
			want:   false,
		},
		{
			name:   "empty signature",
			mutate: func(n *Notification) { n.SignatureKey = "" },
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := base
			tt.mutate(&n)
			if got := svc.verifySignature(n); got != tt.want {
				t.Errorf("verifySignature() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHandleNotificationRejectsBadSignature(t *testing.T) {
	svc := NewPaymentService(nil, nil, nil, config.PaymentConfig{ServerKey: "SB-Mid-server-testkey"})

	err := svc.HandleNotification(Notification{
		OrderID:      "R4W-unknown",
		StatusCode:   "200",
		GrossAmount:  "99000.00",
		SignatureKey: "deadbeef",
	})
	if !errors.Is(err, util.ErrInvalidSignature) {
		t.Fatalf("HandleNotification() error = %v, want ErrInvalidSignature", err)
	}
}

func TestSnapURL(t *testing.T) {
	sandbox := NewPaymentService(nil, nil, nil, config.PaymentConfig{})
	if got := sandbox.snapURL(); got != snapSandboxURL {
		t.Errorf("snapURL() = %q, want sandbox endpoint", got)
	}

	production := NewPaymentService(nil, nil, nil, config.PaymentConfig{Production: true})
	if got := production.snapURL(); got != snapProductionURL {
		t.Errorf("snapURL() = %q, want production endpoint", got)
	}
}

func TestProductCatalog(t *testing.T) {
	svc := NewPaymentService(nil, nil, nil, config.PaymentConfig{})

	products := svc.Products()
	if len(products) != 5 {
		t.Fatalf("Products() returned %d entries, want 5", len(products))
	}

	report, ok := productByID("single_report")
	if !ok {
		t.Fatal("productByID(single_report) not found")
	}
	if report.PriceIDR != 99000 {
		t.Errorf("single_report price = %d, want 99000", report.PriceIDR)
	}

	if _, ok := productByID("gold_membership"); ok {
		t.Error("productByID(gold_membership) should not exist")
	}

	for _, p := range products {
		if p.PriceIDR <= 0 || p.PriceUSD <= 0 {
			t.Errorf("product %s has non-positive price", p.ID)
		}
		if p.NameID == "" || p.NameEN == "" {
			t.Errorf("product %s is missing a localized name", p.ID)
		}
	}
}

func TestSimulatePaymentBlockedInProduction(t *testing.T) {
	svc := NewPaymentService(nil, nil, nil, config.PaymentConfig{Production: true})

	err := svc.SimulatePayment(1, "R4W-whatever")
	if !errors.Is(err, util.ErrPermissionDenied) {
		t.Fatalf("SimulatePayment() error = %v, want ErrPermissionDenied", err)
	}
}
