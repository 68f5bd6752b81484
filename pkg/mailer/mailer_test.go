//go:build unit

package mailer

import (
	"context"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"taskly-api/pkg/config"
)

func TestNew(t *testing.T) {
	t.Run("when smtp address is empty in development should return log mailer", func(t *testing.T) {
		m := New(config.SmtpConfig{}, false, zap.NewNop())

		assert.IsType(t, &logMailer{}, m)
		assert.NoError(t, m.Send(context.Background(), "test@test.com", "subject", "body"))
	})

	t.Run("when smtp address is set should return smtp mailer", func(t *testing.T) {
		m := New(config.SmtpConfig{
			Addr:     "smtp.taskly.local:587",
			User:     "user",
			Password: "password",
		}, true, zap.NewNop())

		assert.IsType(t, &smtpMailer{}, m)
		assert.NotNil(t, m.(*smtpMailer).auth)
	})

	t.Run("when smtp server is unreachable should return error", func(t *testing.T) {
		m := New(config.SmtpConfig{
			Addr: "127.0.0.1:1",
			From: "no-reply@taskly.local",
		}, true, zap.NewNop())

		err := m.Send(context.Background(), "test@test.com", "subject", "body")

		assert.Error(t, err)
	})
}

// silentListener accepts connections and never writes a greeting.
func silentListener(t *testing.T) string {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = listener.Close()
	})

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			go func(conn net.Conn) {
				_, _ = io.Copy(io.Discard, conn)
				_ = conn.Close()
			}(conn)
		}
	}()

	return listener.Addr().String()
}

func TestSmtpMailer_Send(t *testing.T) {
	t.Run("when smtp server stalls should give up after timeout", func(t *testing.T) {
		m := New(config.SmtpConfig{
			Addr:    silentListener(t),
			From:    "no-reply@taskly.local",
			Timeout: 200 * time.Millisecond,
		}, true, zap.NewNop())

		start := time.Now()
		err := m.Send(context.Background(), "test@test.com", "subject", "body")

		assert.Error(t, err)
		assert.Less(t, time.Since(start), 5*time.Second)
	})

	t.Run("when context is cancelled should stop waiting", func(t *testing.T) {
		m := New(config.SmtpConfig{
			Addr:    silentListener(t),
			From:    "no-reply@taskly.local",
			Timeout: time.Minute,
		}, true, zap.NewNop())

		ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
		defer cancel()

		start := time.Now()
		err := m.Send(ctx, "test@test.com", "subject", "body")

		assert.Error(t, err)
		assert.Less(t, time.Since(start), 5*time.Second)
	})
}

func TestBuildMessage(t *testing.T) {
	msg := string(buildMessage("from@taskly.local", "to@taskly.local", "Password reset", "123456"))

	assert.Contains(t, msg, "From: from@taskly.local\r\n")
	assert.Contains(t, msg, "To: to@taskly.local\r\n")
	assert.Contains(t, msg, "Subject: Password reset\r\n")
	assert.Contains(t, msg, "\r\n\r\n123456\r\n")
}

func TestHost(t *testing.T) {
	assert.Equal(t, "smtp.taskly.local", host("smtp.taskly.local:587"))
	assert.Equal(t, "smtp.taskly.local", host("smtp.taskly.local"))
}
