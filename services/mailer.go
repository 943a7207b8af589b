package services

import (
	"context"

	"github.com/rs/zerolog"
)

// LogMailer satisfies Mailer without sending anything. Deployments wire a
// real delivery backend in its place; development and tests log the token.
type LogMailer struct {
	logger zerolog.Logger
}

func NewLogMailer(logger zerolog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

func (m *LogMailer) SendPasswordReset(ctx context.Context, email, token string) error {
	m.logger.Info().
		Str("email", email).
		Str("token", token).
		Msg("password reset requested")
	return nil
}
