package ports

import (
	"context"
	"time"
)

// Tipos de evento de cotización.
const (
	EventQuotationCreated  = "quotation.created"
	EventQuotationUpdated  = "quotation.updated"
	EventQuotationAnnulled = "quotation.annulled"
)

// DomainEvent evento publicado luego de confirmar la transacción. Key ordena los eventos
// de una misma cotización dentro de la partición.
type DomainEvent struct {
	ID         string
	Type       string
	Key        string
	OccurredAt time.Time
	Payload    any
}

// EventPublisher puerto de salida hacia el bus de eventos.
type EventPublisher interface {
	Publish(ctx context.Context, evt DomainEvent) error
}
