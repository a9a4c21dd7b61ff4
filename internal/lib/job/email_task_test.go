package job

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWelcomeEmailTask(t *testing.T) {
	task, err := NewWelcomeEmailTask("walker@example.com", "walker")
	require.NoError(t, err)

	assert.Equal(t, TaskWelcome, task.Type())

	var payload WelcomeEmailPayload
	require.NoError(t, json.Unmarshal(task.Payload(), &payload))
	assert.Equal(t, WelcomeEmailPayload{To: "walker@example.com", Username: "walker"}, payload)
}

type recordingSender struct {
	to, username string
	err          error
}

func (r *recordingSender) SendWelcomeEmail(ctx context.Context, to, username string) error {
	r.to, r.username = to, username
	return r.err
}

func TestSendWelcome(t *testing.T) {
	logger := zerolog.Nop()
	task, err := NewWelcomeEmailTask("walker@example.com", "walker")
	require.NoError(t, err)

	sender := &recordingSender{}
	require.NoError(t, sendWelcome(context.Background(), &logger, sender, task))
	assert.Equal(t, "walker@example.com", sender.to)
	assert.Equal(t, "walker", sender.username)

	sender.err = errors.New("resend unavailable")
	err = sendWelcome(context.Background(), &logger, sender, task)
	require.Error(t, err)
	assert.NotErrorIs(t, err, asynq.SkipRetry)
}

func TestSendWelcomeSkipsRetryOnBadPayload(t *testing.T) {
	logger := zerolog.Nop()
	sender := &recordingSender{}

	for name, payload := range map[string]string{
		"not json":     `{"to":`,
		"no recipient": `{"username":"walker"}`,
	} {
		t.Run(name, func(t *testing.T) {
			err := sendWelcome(context.Background(), &logger, sender, asynq.NewTask(TaskWelcome, []byte(payload)))
			assert.ErrorIs(t, err, asynq.SkipRetry)
			assert.Empty(t, sender.to)
		})
	}
}
