// Package events invalidates cached reports when upstream data changes.
package events

import (
	"context"
	"fmt"
	"hotelier/config"
	"hotelier/infras/kafka"
	"hotelier/infras/otel"
	"hotelier/internal/domains/report/service"
	"hotelier/shared/constant"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// ChangeEvent is the payload published by the reservation and expense owners.
type ChangeEvent struct {
	Entity     string    `json:"entity"`
	ID         string    `json:"id"`
	Action     string    `json:"action"`
	OccurredAt time.Time `json:"occurred_at"`
}

type Listener struct {
	cfg    *config.Config
	client kafka.Client
	report service.Report
	otel   otel.Otel
}

func New(cfg *config.Config, client kafka.Client, report service.Report, otel otel.Otel) *Listener {
	return &Listener{
		cfg:    cfg,
		client: client,
		report: report,
		otel:   otel,
	}
}

func (l *Listener) topics() []string {
	topics := make([]string, 0, 2)

	for _, topic := range []string{l.cfg.Kafka.Topics.ReservationChanged, l.cfg.Kafka.Topics.ExpenseChanged} {
		if topic != "" {
			topics = append(topics, topic)
		}
	}

	return topics
}

// Start consumes the change topics until ctx is done. It returns immediately when Kafka is disabled.
func (l *Listener) Start(ctx context.Context) error {
	if !l.cfg.Kafka.Enable {
		log.Info().Msg("Kafka disabled, report caches expire by TTL only.")

		return nil
	}

	group, groupCtx := errgroup.WithContext(ctx)

	for _, topic := range l.topics() {
		group.Go(func() error {
			if err := l.client.Consume(groupCtx, topic, l.Handle); err != nil {
				return fmt.Errorf("consume %s: %w", topic, err)
			}

			return nil
		})
	}

	return group.Wait()
}

// Handle invalidates every cached report. A payload that fails to decode still invalidates.
func (l *Listener) Handle(ctx context.Context, message kafka.Message) (err error) {
	ctx, scope := l.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".report.Handle")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute("topic", message.Topic)

	event, decodeErr := kafka.Decode[ChangeEvent](message)
	if decodeErr != nil {
		log.Warn().Err(decodeErr).Str("topic", message.Topic).Msg("Unreadable change event, invalidating anyway.")
	} else {
		log.Debug().
			Str("topic", message.Topic).
			Str("entity", event.Entity).
			Str("id", event.ID).
			Str("action", event.Action).
			Msg("Change event received.")
	}

	if _, err = l.report.Invalidate(ctx, message.Topic); err != nil {
		return fmt.Errorf("invalidate reports on %s: %w", message.Topic, err)
	}

	return nil
}
