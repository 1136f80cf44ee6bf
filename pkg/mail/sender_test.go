package mail

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/mail.v2"
)

type mockDialer struct {
	SentMessage *mail.Message
	ShouldError bool
}

func (d *mockDialer) DialAndSend(m ...*mail.Message) error {
	if d.ShouldError {
		return errors.New("error")
	}
	if len(m) > 0 {
		d.SentMessage = m[0]
	}
	return nil
}

func TestSendMail(t *testing.T) {
	t.Run("sends text and html alternatives with attachment", func(t *testing.T) {
		dialer := &mockDialer{}
		s := &sender{
			email:  "from@example.com",
			dialer: dialer,
		}

		to := []string{"to@example.com"}
		err := s.SendMail(to, "Rotation Report", "<h1>Report</h1>", "Report", []Attachment{
			{Name: "nodes.csv", Content: strings.NewReader("id,status\n")},
		})
		require.NoError(t, err)
		require.NotNil(t, dialer.SentMessage)
		assert.Equal(t, s.email, dialer.SentMessage.GetHeader("From")[0])
		assert.Equal(t, to[0], dialer.SentMessage.GetHeader("To")[0])
		assert.Equal(t, "Rotation Report", dialer.SentMessage.GetHeader("Subject")[0])

		var body bytes.Buffer
		_, err = dialer.SentMessage.WriteTo(&body)
		require.NoError(t, err)
		assert.Contains(t, body.String(), "Content-Type: text/plain")
		assert.Contains(t, body.String(), "Content-Type: text/html")
		assert.Contains(t, body.String(), "<h1>Report</h1>")
		assert.Contains(t, body.String(), `filename="nodes.csv"`)
	})

	t.Run("sends plain text only", func(t *testing.T) {
		dialer := &mockDialer{}
		s := &sender{email: "from@example.com", dialer: dialer}

		require.NoError(t, s.SendMail([]string{"to@example.com"}, "Alert", "", "backend down", nil))

		var body bytes.Buffer
		_, err := dialer.SentMessage.WriteTo(&body)
		require.NoError(t, err)
		assert.Contains(t, body.String(), "backend down")
		assert.NotContains(t, body.String(), "text/html")
	})

	t.Run("returns an error without recipients", func(t *testing.T) {
		dialer := &mockDialer{}
		s := &sender{email: "from@example.com", dialer: dialer}
		err := s.SendMail(nil, "Subject", "Body", "", nil)
		assert.ErrorIs(t, err, ErrNoRecipients)
		assert.Nil(t, dialer.SentMessage)
	})

	t.Run("returns an error when dialer fails", func(t *testing.T) {
		s := &sender{
			email:  "from@example.com",
			dialer: &mockDialer{ShouldError: true},
		}
		err := s.SendMail([]string{"to@example.com"}, "Subject", "Body", "", nil)
		assert.Error(t, err)
	})
}
