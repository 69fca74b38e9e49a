package notifier

import (
	"context"
	"fmt"
	"net/smtp"

	"partner-program/internal/config"
	"partner-program/internal/domain"
)

// EmailNotifier sends transactional partner email over SMTP.
type EmailNotifier struct {
	cfg config.AppConfig
}

func NewEmailNotifier(cfg config.AppConfig) *EmailNotifier {
	return &EmailNotifier{cfg: cfg}
}

// SendApplicationReceived confirms receipt of an application. Callers treat
// this as best-effort.
func (n *EmailNotifier) SendApplicationReceived(_ context.Context, p *domain.Partner) error {
	subject := "We received your partner application"
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html><head><meta charset="UTF-8"><title>Application Received</title></head>
		<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
			<div style="max-width: 600px; background-color: #ffffff; padding: 20px; border-radius: 8px;">
				<h2 style="color: #2E86C1;">Thanks for applying, %s!</h2>
				<p style="font-size: 16px; color: #333;">
					Your partner application is in. We review every application by hand
					and will email you once yours is approved.
				</p>
				<p style="margin-top: 30px; font-size: 14px; color: #999999;">
					The Partner Team
				</p>
			</div>
		</body>
		</html>`, p.Name)

	return n.send(p.Email, subject, body)
}

// SendApprovalCredentials delivers the one-time login secret. This send is
// critical: a failure must reach the administrator, so no retry or
// swallowing happens here.
func (n *EmailNotifier) SendApprovalCredentials(_ context.Context, p *domain.Partner, tempPassword string) error {
	subject := "Your partner account is approved"
	body := fmt.Sprintf(`
		<!DOCTYPE html>
		<html><head><meta charset="UTF-8"><title>Welcome</title></head>
		<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
			<div style="max-width: 600px; background-color: #ffffff; padding: 20px; border-radius: 8px;">
				<h2 style="color: #2E86C1;">Welcome aboard, %s!</h2>
				<p style="font-size: 16px; color: #333;">
					Your partner application has been approved.<br><br>
					Referral code: <strong>%s</strong><br>
					Temporary password: <strong>%s</strong><br><br>
					Sign in with your email and this password; you will be asked to
					choose a new one on first login.
				</p>
				<p style="margin-top: 30px; font-size: 14px; color: #999999;">
					The Partner Team
				</p>
			</div>
		</body>
		</html>`, p.Name, p.PartnerCode, tempPassword)

	return n.send(p.Email, subject, body)
}

func (n *EmailNotifier) send(to, subject, body string) error {
	if n.cfg.SMTPHost == "" || n.cfg.SMTPUser == "" {
		return fmt.Errorf("smtp not configured")
	}

	auth := smtp.PlainAuth("", n.cfg.SMTPUser, n.cfg.SMTPPass, n.cfg.SMTPHost)

	msg := []byte(fmt.Sprintf("To: %s\r\n"+
		"From: %s\r\n"+
		"Subject: %s\r\n"+
		"Content-Type: text/html; charset=utf-8\r\n"+
		"\r\n"+
		"%s\r\n", to, n.cfg.EmailFrom, subject, body))

	addr := n.cfg.SMTPHost + ":" + n.cfg.SMTPPort
	return smtp.SendMail(addr, auth, n.cfg.EmailFrom, []string{to}, msg)
}
