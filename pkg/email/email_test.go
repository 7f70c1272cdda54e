package email

import (
	"errors"
	"net/smtp"
	"strings"
	"testing"

	"portfolio-backend/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService() *EmailService {
	return NewEmailService(&config.Config{
		SMTPHost:       "smtp.test",
		SMTPPort:       "587",
		SMTPUsername:   "user",
		SMTPPassword:   "secret",
		ContactEmailTo: "owner@test.io",
	})
}

func TestBuildContactMessage(t *testing.T) {
	s := testService()

	msg, err := s.BuildContactMessage(ContactEmailData{
		SenderName:  "Ann <script>",
		SenderEmail: "ann@x.io",
		Subject:     "Portfolio Contact\r\nBcc: evil@x.io",
		Message:     "Hi",
	})
	require.NoError(t, err)

	text := string(msg)
	assert.Contains(t, text, "From: user\r\n")
	assert.Contains(t, text, "To: owner@test.io\r\n")
	assert.Contains(t, text, "Reply-To: ann@x.io\r\n")
	assert.Contains(t, text, "Subject: Portfolio ContactBcc: evil@x.io\r\n")
	headers, _, _ := strings.Cut(text, "\r\n\r\n")
	assert.NotContains(t, headers, "\r\nBcc:")
	assert.Contains(t, text, "Ann &lt;script&gt;")
}

func TestSendContactEmail(t *testing.T) {
	t.Run("Should hand the message to the SMTP server", func(t *testing.T) {
		s := testService()
		var gotAddr string
		var gotTo []string
		s.sendMail = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotTo = addr, to
			assert.Equal(t, "user", from)
			assert.True(t, strings.HasPrefix(string(msg), "From: user"))
			return nil
		}

		require.NoError(t, s.SendContactEmail(ContactEmailData{SenderEmail: "ann@x.io"}))
		assert.Equal(t, "smtp.test:587", gotAddr)
		assert.Equal(t, []string{"owner@test.io"}, gotTo)
	})

	t.Run("Should wrap SMTP errors", func(t *testing.T) {
		s := testService()
		s.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
			return errors.New("535 auth failed")
		}
		assert.ErrorContains(t, s.SendContactEmail(ContactEmailData{}), "failed to send email")
	})

	t.Run("Should report missing configuration", func(t *testing.T) {
		assert.True(t, testService().IsConfigured())
		assert.False(t, NewEmailService(&config.Config{SMTPHost: "h"}).IsConfigured())
	})
}
