package config

import (
	"crypto/tls"
	"fmt"
	"os"
	"strconv"
	"strings"

	mail "github.com/go-mail/mail/v2"
)

type MailerConfig struct {
	Host          string
	Port          int
	User          string
	Pass          string
	From          string // e.g. "Academic Directory <no-reply@your.org>"
	SkipTLSVerify bool
}

var mailer = loadMailerConfig()

func loadMailerConfig() MailerConfig {
	port, _ := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if port == 0 {
		port = 587
	}
	return MailerConfig{
		Host:          strings.TrimSpace(os.Getenv("SMTP_HOST")),
		Port:          port,
		User:          os.Getenv("SMTP_USER"),
		Pass:          os.Getenv("SMTP_PASS"),
		From:          strings.TrimSpace(os.Getenv("SMTP_FROM")),
		SkipTLSVerify: os.Getenv("SMTP_SKIP_TLS_VERIFY") == "1",
	}
}

// ReloadMailerConfig re-reads SMTP_* after godotenv has populated the environment.
func ReloadMailerConfig() {
	mailer = loadMailerConfig()
}

// MailerConfigured reports whether SMTP_HOST and SMTP_FROM are set.
func MailerConfigured() bool {
	return mailer.Host != "" && mailer.From != ""
}

func SendMail(to []string, subject, html string) error {
	if len(to) == 0 {
		return nil
	}
	if !MailerConfigured() {
		return fmt.Errorf("smtp not configured (SMTP_HOST/SMTP_FROM)")
	}

	m := mail.NewMessage()
	m.SetHeader("From", mailer.From)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	d := mail.NewDialer(mailer.Host, mailer.Port, mailer.User, mailer.Pass)
	d.StartTLSPolicy = mail.MandatoryStartTLS
	d.TLSConfig = &tls.Config{
		ServerName:         mailer.Host,
		InsecureSkipVerify: mailer.SkipTLSVerify, // dev only
	}

	return d.DialAndSend(m)
}
