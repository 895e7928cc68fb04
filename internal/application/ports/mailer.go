package ports

import "context"

// MailMessage email HTML a enviar.
type MailMessage struct {
	To      string
	Subject string
	HTML    string
}

// Mailer puerto de salida para el envío de emails (activación de cuenta, recuperación de contraseña).
type Mailer interface {
	Send(ctx context.Context, msg MailMessage) error
}
