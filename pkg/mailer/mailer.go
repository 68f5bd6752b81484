package mailer

//go:generate mockgen -source=mailer.go -destination=mock_mailer.go -package=mailer

import (
	"context"
	"crypto/tls"
	"net"
	"net/smtp"
	"strings"
	"time"

	"go.uber.org/zap"

	"taskly-api/pkg/config"
)

type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// New returns an SMTP mailer, or a mailer that only logs when no SMTP address is
// configured outside production.
func New(cfg config.SmtpConfig, isProduction bool, log *zap.Logger) Mailer {
	if cfg.Addr == "" && !isProduction {
		return &logMailer{
			log: log.With(zap.String("component", "mailer.log")),
		}
	}

	var auth smtp.Auth
	if cfg.User != "" || cfg.Password != "" {
		auth = smtp.PlainAuth("", cfg.User, cfg.Password, host(cfg.Addr))
	}

	return &smtpMailer{
		addr:    cfg.Addr,
		auth:    auth,
		useTls:  cfg.UseTls,
		timeout: cfg.Timeout,
		from:    cfg.From,
		log:     log.With(zap.String("component", "mailer.smtp")),
	}
}

type smtpMailer struct {
	addr    string
	auth    smtp.Auth
	useTls  bool
	timeout time.Duration
	from    string
	log     *zap.Logger
}

// Send runs the whole SMTP exchange under one deadline taken from ctx and the
// configured timeout. Plain connections upgrade with STARTTLS when offered.
func (m *smtpMailer) Send(ctx context.Context, to, subject, body string) error {
	msg := buildMessage(m.from, to, subject, body)

	start := time.Now()
	log := m.log.With(
		zap.String("smtpAddr", m.addr),
		zap.Bool("tls", m.useTls),
		zap.String("to", to),
		zap.String("subject", subject),
	)

	conn, err := m.dial(ctx)
	if err != nil {
		log.Error("smtp dial failed", zap.Error(err))
		return err
	}

	if deadline, ok := m.deadline(ctx); ok {
		if err = conn.SetDeadline(deadline); err != nil {
			_ = conn.Close()
			log.Error("smtp deadline failed", zap.Error(err))
			return err
		}
	}
	stop := context.AfterFunc(ctx, func() {
		_ = conn.Close()
	})
	defer stop()

	client, err := smtp.NewClient(conn, host(m.addr))
	if err != nil {
		_ = conn.Close()
		log.Error("smtp client failed", zap.Error(err))
		return err
	}
	defer func() { _ = client.Close() }()

	if !m.useTls {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err = client.StartTLS(m.tlsConfig()); err != nil {
				log.Error("smtp STARTTLS failed", zap.Error(err))
				return err
			}
		}
	}

	if m.auth != nil {
		if ok, _ := client.Extension("AUTH"); ok {
			if err = client.Auth(m.auth); err != nil {
				log.Error("smtp auth failed", zap.Error(err))
				return err
			}
		}
	}

	if err = client.Mail(m.from); err != nil {
		log.Error("smtp MAIL FROM failed", zap.Error(err))
		return err
	}
	if err = client.Rcpt(to); err != nil {
		log.Error("smtp RCPT TO failed", zap.Error(err))
		return err
	}

	writer, err := client.Data()
	if err != nil {
		log.Error("smtp DATA failed", zap.Error(err))
		return err
	}
	if _, err = writer.Write(msg); err != nil {
		log.Error("smtp write failed", zap.Error(err))
		return err
	}
	if err = writer.Close(); err != nil {
		log.Error("smtp close failed", zap.Error(err))
		return err
	}

	log.Info("email sent", zap.Duration("elapsed", time.Since(start)))
	return client.Quit()
}

func (m *smtpMailer) dial(ctx context.Context) (net.Conn, error) {
	netDialer := &net.Dialer{Timeout: m.timeout}
	if !m.useTls {
		return netDialer.DialContext(ctx, "tcp", m.addr)
	}

	dialer := &tls.Dialer{
		NetDialer: netDialer,
		Config:    m.tlsConfig(),
	}
	return dialer.DialContext(ctx, "tcp", m.addr)
}

// deadline is the earlier of the context deadline and now+timeout.
func (m *smtpMailer) deadline(ctx context.Context) (time.Time, bool) {
	deadline, ok := ctx.Deadline()
	if m.timeout > 0 {
		timeoutAt := time.Now().Add(m.timeout)
		if !ok || timeoutAt.Before(deadline) {
			return timeoutAt, true
		}
	}

	return deadline, ok
}

func (m *smtpMailer) tlsConfig() *tls.Config {
	return &tls.Config{ServerName: host(m.addr), MinVersion: tls.VersionTLS12}
}

type logMailer struct {
	log *zap.Logger
}

// Send writes the message to the debug log. Development only.
func (m *logMailer) Send(_ context.Context, to, subject, body string) error {
	m.log.Debug("email delivery skipped, smtp is not configured",
		zap.String("to", to),
		zap.String("subject", subject),
		zap.String("body", body),
	)
	return nil
}

func buildMessage(from, to, subject, body string) []byte {
	return []byte(
		"From: " + from + "\r\n" +
			"To: " + to + "\r\n" +
			"Subject: " + subject + "\r\n" +
			"MIME-Version: 1.0\r\n" +
			"Content-Type: text/plain; charset=utf-8\r\n" +
			"\r\n" + body + "\r\n")
}

func host(addr string) string {
	if i := strings.LastIndex(addr, ":"); i >= 0 {
		return addr[:i]
	}
	return addr
}
