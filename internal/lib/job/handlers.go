package job

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/deppfellow/travelog/internal/config"
	"github.com/deppfellow/travelog/internal/lib/email"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
)

// welcomeSender is the part of email.Client the welcome task needs.
type welcomeSender interface {
	SendWelcomeEmail(ctx context.Context, to, username string) error
}

// InitHandlers builds the dependencies the task handlers use. It must run
// before Start.
func (j *JobService) InitHandlers(cfg *config.Config, logger *zerolog.Logger) {
	j.email = email.NewClient(cfg, logger)
}

// decodeWelcome rejects payloads no retry can fix.
func decodeWelcome(t *asynq.Task) (WelcomeEmailPayload, error) {
	var p WelcomeEmailPayload
	if err := json.Unmarshal(t.Payload(), &p); err != nil {
		return p, fmt.Errorf("failed to unmarshal welcome email payload: %v: %w", err, asynq.SkipRetry)
	}
	if p.To == "" {
		return p, fmt.Errorf("welcome email payload has no recipient: %w", asynq.SkipRetry)
	}
	return p, nil
}

func (j *JobService) handleWelcomeEmailTask(ctx context.Context, t *asynq.Task) error {
	return sendWelcome(ctx, j.logger, j.email, t)
}

func sendWelcome(ctx context.Context, logger *zerolog.Logger, sender welcomeSender, t *asynq.Task) error {
	p, err := decodeWelcome(t)
	if err != nil {
		logger.Error().Err(err).Str("task", t.Type()).Msg("dropping welcome email task")
		return err
	}

	log := logger.With().Str("task", t.Type()).Str("username", p.Username).Logger()

	if err := sender.SendWelcomeEmail(ctx, p.To, p.Username); err != nil {
		// asynq retries up to the task's MaxRetry.
		log.Error().Err(err).Msg("failed to send welcome email")
		return err
	}

	log.Info().Msg("welcome email sent")
	return nil
}
