// Package events publica los eventos de cotización en Kafka.
package events

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/segmentio/kafka-go"

	"github.com/jhoicas/sigec-api/internal/application/ports"
	"github.com/jhoicas/sigec-api/pkg/config"
	"github.com/jhoicas/sigec-api/pkg/logger"
)

var (
	_ ports.EventPublisher = (*KafkaPublisher)(nil)
	_ ports.EventPublisher = NopPublisher{}
)

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// envelope cuerpo JSON del mensaje.
type envelope struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// KafkaPublisher escribe cada evento en un único topic; la clave es el id de la cotización
// para que los eventos de una misma cotización caigan en la misma partición.
type KafkaPublisher struct {
	writer messageWriter
	topic  string
	log    *logger.Logger
}

// NewKafkaPublisher construye el publisher con un kafka.Writer balanceado por hash de la clave.
func NewKafkaPublisher(cfg config.EventsConfig, log *logger.Logger) *KafkaPublisher {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireAll,
		AllowAutoTopicCreation: true,
		WriteTimeout:           5 * time.Second,
	}
	return &KafkaPublisher{writer: w, topic: cfg.Topic, log: log.Component("events")}
}

// Publish serializa y escribe el evento con headers event_id y event_type.
func (p *KafkaPublisher) Publish(ctx context.Context, evt ports.DomainEvent) error {
	msg, err := ToMessage(evt)
	if err != nil {
		return err
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("kafka: publicar %s en %s: %w", evt.Type, p.topic, err)
	}
	p.log.Debug().Str("event_id", evt.ID).Str("event_type", evt.Type).Msg("evento publicado")
	return nil
}

// Close cierra el writer; se llama en el shutdown.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// ToMessage convierte el evento al mensaje Kafka.
func ToMessage(evt ports.DomainEvent) (kafka.Message, error) {
	body, err := json.Marshal(envelope{ID: evt.ID, Type: evt.Type, OccurredAt: evt.OccurredAt, Payload: evt.Payload})
	if err != nil {
		return kafka.Message{}, fmt.Errorf("kafka: serializar %s: %w", evt.Type, err)
	}
	return kafka.Message{
		Key:   []byte(evt.Key),
		Value: body,
		Time:  evt.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte(evt.ID)},
			{Key: "event_type", Value: []byte(evt.Type)},
		},
	}, nil
}

// NopPublisher descarta los eventos (Kafka no configurado).
type NopPublisher struct{}

// Publish no hace nada.
func (NopPublisher) Publish(context.Context, ports.DomainEvent) error { return nil }
