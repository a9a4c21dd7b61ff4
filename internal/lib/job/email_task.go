package job

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

// TaskWelcome routes welcome email tasks to handleWelcomeEmailTask.
const TaskWelcome = "email:welcome"

// WelcomeEmailPayload is stored in Redis as JSON.
type WelcomeEmailPayload struct {
	To       string `json:"to"`
	Username string `json:"username"`
}

// NewWelcomeEmailTask builds the task sent after a traveler registers.
// It is retried three times and killed after 30 seconds.
func NewWelcomeEmailTask(to, username string) (*asynq.Task, error) {
	payload, err := json.Marshal(WelcomeEmailPayload{
		To:       to,
		Username: username,
	})
	if err != nil {
		return nil, err
	}

	return asynq.NewTask(
		TaskWelcome,
		payload,
		asynq.MaxRetry(3),
		asynq.Queue(QueueDefault),
		asynq.Timeout(30*time.Second),
	), nil
}
