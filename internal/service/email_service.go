package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bimsrama/Relasi4warna-main/internal/config"
	"github.com/bimsrama/Relasi4warna-main/pkg/logger"
	"go.uber.org/zap"
)

const resendEndpoint = "https://api.resend.com/emails"

// EmailService delivers transactional mail through the Resend HTTP API.
// Sending is best effort: callers fire it from goroutines and a failure must
// never fail the request that triggered it.
type EmailService struct {
	cfg    config.EmailConfig
	appURL string
	client *http.Client
}

func NewEmailService(cfg config.EmailConfig, appURL string) *EmailService {
	if appURL == "" {
		appURL = "https://relasi4warna.com"
	}
	return &EmailService{
		cfg:    cfg,
		appURL: appURL,
		client: &http.Client{Timeout: 15 * time.Second},
	}
}

type resendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (s *EmailService) send(to, subject, html string) error {
	if s.cfg.ResendAPIKey == "" {
		logger.Log.Warn("Resend API key not configured, skipping email",
			zap.String("to", to), zap.String("subject", subject))
		return nil
	}

	sender := s.cfg.SenderEmail
	if sender == "" {
		sender = "noreply@relasi4warna.com"
	}

	body, err := json.Marshal(resendRequest{
		From:    fmt.Sprintf("Relasi4Warna <%s>", sender),
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest("POST", resendEndpoint, bytes.NewBuffer(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.cfg.ResendAPIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("resend API error (status %d): %s", resp.StatusCode, string(respBody))
	}
	return nil
}

// SendPasswordReset mails the reset link. The link expires with the Redis
// token, one hour after issue.
func (s *EmailService) SendPasswordReset(to, name, token, language string) {
	resetLink := fmt.Sprintf("%s/reset-password?token=%s", s.appURL, token)

	intro := "Anda menerima email ini karena ada permintaan untuk mereset password akun Relasi4Warna Anda."
	action := "Klik tombol di bawah untuk membuat password baru:"
	expiry := "Link ini akan kadaluarsa dalam <strong>1 jam</strong>."
	ignore := "Jika Anda tidak meminta reset password, abaikan email ini. Password Anda tidak akan berubah."
	button := "Reset Password"
	subject := "Reset Password - Relasi4Warna"
	if language == "en" {
		intro = "You are receiving this email because a password reset was requested for your Relasi4Warna account."
		action = "Click the button below to set a new password:"
		expiry = "This link expires in <strong>1 hour</strong>."
		ignore = "If you did not request a password reset, ignore this email. Your password will not change."
		button = "Reset Password"
		subject = "Password Reset - Relasi4Warna"
	}

	html := fmt.Sprintf(`
	<div style="font-family: 'Merriweather', Georgia, serif; max-width: 600px; margin: 0 auto; background-color: #FDFCF8; padding: 40px; border-radius: 12px;">
		<div style="text-align: center; margin-bottom: 30px;">
			<h1 style="color: #4A3B32; margin: 0;">Relasi4Warna</h1>
			<p style="color: #7A6E62; font-size: 14px;">Human Relationship Intelligence</p>
		</div>
		<h2 style="color: #4A3B32; font-size: 20px;">%s</h2>
		<p style="color: #7A6E62; line-height: 1.6;">%s</p>
		<p style="color: #7A6E62; line-height: 1.6;">%s</p>
		<div style="text-align: center; margin: 30px 0;">
			<a href="%s" style="background-color: #4A3B32; color: white; padding: 15px 30px; text-decoration: none; border-radius: 25px; display: inline-block; font-weight: bold;">%s</a>
		</div>
		<p style="color: #7A6E62; font-size: 14px; line-height: 1.6;">%s</p>
		<p style="color: #7A6E62; font-size: 14px; line-height: 1.6;">%s</p>
		<hr style="border: none; border-top: 1px solid #E6E2D8; margin: 30px 0;">
		<p style="color: #7A6E62; font-size: 12px; text-align: center;">© %d Relasi4Warna. All rights reserved.</p>
	</div>`, button, intro, action, resetLink, button, expiry, ignore, time.Now().Year())

	if err := s.send(to, subject, html); err != nil {
		logger.Log.Error("failed to send password reset email", zap.String("to", to), zap.Error(err))
	}
}

// SendCouplesInvite mails the join link for a couples pack.
func (s *EmailService) SendCouplesInvite(to, inviterName, inviteCode string) {
	joinLink := fmt.Sprintf("%s/couples/join/%s", s.appURL, inviteCode)
	subject := "Undangan Tes Kecocokan Pasangan - Relasi4Warna"
	html := fmt.Sprintf(`
	<div style="font-family: Arial; max-width: 600px; margin: 0 auto;">
		<h2>Anda diundang!</h2>
		<p>%s mengundang Anda untuk mengikuti tes kecocokan pasangan di Relasi4Warna.</p>
		<p>Klik tombol di bawah untuk bergabung:</p>
		<a href="%s" style="background-color: #4A3B32; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">Bergabung Sekarang</a>
	</div>`, inviterName, joinLink)

	if err := s.send(to, subject, html); err != nil {
		logger.Log.Error("failed to send couples invite email", zap.String("to", to), zap.Error(err))
	}
}

// SendTeamInvite mails the join link for a team pack.
func (s *EmailService) SendTeamInvite(to, inviterName, packName, inviteCode string) {
	joinLink := fmt.Sprintf("%s/team/join/%s", s.appURL, inviteCode)
	subject := fmt.Sprintf("Undangan bergabung ke Paket Tim - %s", packName)
	html := fmt.Sprintf(`
	<div style="font-family: Arial; max-width: 600px; margin: 0 auto;">
		<h2>Anda diundang!</h2>
		<p>%s mengundang Anda untuk bergabung dengan paket tim "%s" di Relasi4Warna.</p>
		<p>Klik tombol di bawah untuk bergabung:</p>
		<a href="%s" style="background-color: #4A3B32; color: white; padding: 10px 20px; text-decoration: none; border-radius: 5px;">Bergabung Sekarang</a>
	</div>`, inviterName, packName, joinLink)

	if err := s.send(to, subject, html); err != nil {
		logger.Log.Error("failed to send team invite email", zap.String("to", to), zap.Error(err))
	}
}
