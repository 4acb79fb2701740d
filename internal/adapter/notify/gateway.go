package notify

import (
	"context"
	"errors"

	"revenue-recovery/config"
	"revenue-recovery/internal/core/domain"
	"revenue-recovery/internal/core/ports"
	"revenue-recovery/internal/resilience"

	"github.com/rs/zerolog"
)

// Gateway implements ports.NotificationGateway. Each channel goes through
// its own resilience client so a dead DM provider cannot take push
// delivery down with it.
type Gateway struct {
	push     Sender
	dm       Sender
	pushExec *resilience.Client
	dmExec   *resilience.Client
	cfg      config.RecoveryConfig
	log      zerolog.Logger
}

// NewGateway creates the reminder fan-out gateway.
func NewGateway(push, dm Sender, pushExec, dmExec *resilience.Client, cfg config.RecoveryConfig, log zerolog.Logger) *Gateway {
	return &Gateway{
		push:     push,
		dm:       dm,
		pushExec: pushExec,
		dmExec:   dmExec,
		cfg:      cfg,
		log:      log,
	}
}

// SendReminder delivers a reminder over every channel enabled both
// globally and in the company's settings. It returns the action type for
// each channel that succeeded; if any channel fails the error is returned
// alongside the successes so the caller can still record them.
func (g *Gateway) SendReminder(ctx context.Context, n ports.Notification, settings *domain.CreatorSettings) ([]domain.ActionType, error) {
	var delivered []domain.ActionType
	var errs []error

	if g.cfg.EnablePush && settings.EnablePush {
		err := g.pushExec.Do(ctx, "send-reminder", func(ctx context.Context) error {
			return g.push.Send(ctx, n)
		})
		if err != nil {
			g.log.Warn().Err(err).
				Str("case_id", n.CaseID.String()).
				Int("offset_day", n.OffsetDay).
				Msg("push reminder failed")
			errs = append(errs, err)
		} else {
			delivered = append(delivered, domain.ActionNudgePush)
		}
	}

	if g.cfg.EnableDM && settings.EnableDM {
		err := g.dmExec.Do(ctx, "send-reminder", func(ctx context.Context) error {
			return g.dm.Send(ctx, n)
		})
		if err != nil {
			g.log.Warn().Err(err).
				Str("case_id", n.CaseID.String()).
				Int("offset_day", n.OffsetDay).
				Msg("dm reminder failed")
			errs = append(errs, err)
		} else {
			delivered = append(delivered, domain.ActionNudgeDM)
		}
	}

	return delivered, errors.Join(errs...)
}
