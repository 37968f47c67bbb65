package email

import (
	"fmt"

	"github.com/microcosm-cc/bluemonday"
	"gopkg.in/gomail.v2"

	"genturix/internal/shared/config"
	"genturix/internal/shared/logger"
)

// Service sends transactional mail. Sends are best effort: a mail failure
// never fails the operation that triggered it.
type Service interface {
	SendWelcomeEmail(to, fullName, condominiumName string) error
	SendPanicAlertEmail(to, condominiumName, panicType, location string) error
	Status() Status
}

// Status is exposed on the admin surface so operators can see whether mail
// is configured without reading server config.
type Status struct {
	Configured bool   `json:"configured"`
	Sender     string `json:"sender"`
	Host       string `json:"host"`
}

type SMTPService struct {
	cfg       config.EmailConfig
	dialer    *gomail.Dialer
	sanitizer *bluemonday.Policy
	logger    logger.Interface
}

func NewSMTPService(cfg config.EmailConfig, log logger.Interface) *SMTPService {
	return &SMTPService{
		cfg:       cfg,
		dialer:    gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		sanitizer: bluemonday.UGCPolicy(),
		logger:    log,
	}
}

func (s *SMTPService) configured() bool {
	return s.cfg.SMTPHost != "" && s.cfg.FromAddress != ""
}

func (s *SMTPService) SendWelcomeEmail(to, fullName, condominiumName string) error {
	// User-supplied values go through the sanitizer before landing in HTML.
	name := s.sanitizer.Sanitize(fullName)
	condo := s.sanitizer.Sanitize(condominiumName)

	subject := "Welcome to Genturix"
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Welcome, %s!</h2>
			<p>An account has been created for you at <strong>%s</strong>.</p>
			<p>Sign in with your email address to get started.</p>
		</body>
		</html>
	`, name, condo)
	plainBody := fmt.Sprintf("Welcome, %s!\n\nAn account has been created for you at %s.\nSign in with your email address to get started.\n", name, condo)

	return s.send(to, subject, htmlBody, plainBody)
}

func (s *SMTPService) SendPanicAlertEmail(to, condominiumName, panicType, location string) error {
	condo := s.sanitizer.Sanitize(condominiumName)
	ptype := s.sanitizer.Sanitize(panicType)
	loc := s.sanitizer.Sanitize(location)

	subject := fmt.Sprintf("Panic alert at %s", condo)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>Panic alert</h2>
			<p>A <strong>%s</strong> alert was triggered at %s.</p>
			<p>Location: %s</p>
		</body>
		</html>
	`, ptype, condo, loc)
	plainBody := fmt.Sprintf("Panic alert\n\nA %s alert was triggered at %s.\nLocation: %s\n", ptype, condo, loc)

	return s.send(to, subject, htmlBody, plainBody)
}

func (s *SMTPService) send(to, subject, htmlBody, plainBody string) error {
	if !s.configured() {
		s.logger.Debugw("email not configured, skipping send", "to", to, "subject", subject)
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromAddress, s.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (s *SMTPService) Status() Status {
	return Status{
		Configured: s.configured(),
		Sender:     s.cfg.FromAddress,
		Host:       s.cfg.SMTPHost,
	}
}
