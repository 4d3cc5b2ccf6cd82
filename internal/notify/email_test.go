package notify

import (
	"errors"
	"net/smtp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezbooks/ezbooks/internal/common"
)

func TestSendSkipsWithoutConfig(t *testing.T) {
	m := NewMailer(common.SMTPConfig{}, nil)
	called := false
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		called = true
		return nil
	}

	require.NoError(t, m.Send("owner@example.com", "Weekly summary", "2 receipts need review"))
	assert.False(t, called, "no SMTP host configured, nothing should be sent")
}

func TestSendBuildsMessage(t *testing.T) {
	m := NewMailer(common.SMTPConfig{
		Host: "mail.example.com",
		Port: 587,
		From: "ezbooks@example.com",
	}, nil)

	var gotAddr, gotFrom string
	var gotTo []string
	var gotMsg []byte
	m.send = func(addr string, _ smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotMsg = addr, from, to, msg
		return nil
	}

	require.NoError(t, m.Send("owner@example.com", "Weekly summary", "2 receipts need review"))
	assert.Equal(t, "mail.example.com:587", gotAddr)
	assert.Equal(t, "ezbooks@example.com", gotFrom)
	assert.Equal(t, []string{"owner@example.com"}, gotTo)
	assert.Contains(t, string(gotMsg), "Subject: Weekly summary\r\n")
	assert.Contains(t, string(gotMsg), "\r\n\r\n2 receipts need review")
}

func TestSendSurfacesServerError(t *testing.T) {
	m := NewMailer(common.SMTPConfig{Host: "mail.example.com", Port: 25, From: "a@b.c"}, nil)
	m.send = func(string, smtp.Auth, string, []string, []byte) error {
		return errors.New("connection refused")
	}

	err := m.Send("owner@example.com", "subj", "body")
	require.Error(t, err)
}
