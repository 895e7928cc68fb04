// Package mail implementa ports.Mailer sobre SMTP con gomail.
package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/sigec-api/internal/application/ports"
	"github.com/jhoicas/sigec-api/pkg/config"
	"github.com/jhoicas/sigec-api/pkg/logger"
)

var (
	_ ports.Mailer = (*SMTPMailer)(nil)
	_ ports.Mailer = (*LogMailer)(nil)
)

// sender abstrae gomail.Dialer.
type sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPMailer envía emails HTML por SMTP.
type SMTPMailer struct {
	dialer sender
	from   string
	name   string
}

// NewSMTPMailer construye el mailer con la configuración SMTP.
func NewSMTPMailer(cfg config.MailConfig, appName string) *SMTPMailer {
	return &SMTPMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password),
		from:   cfg.From,
		name:   appName,
	}
}

// Send arma el mensaje y lo envía. gomail no acepta contexto: si ctx ya terminó no se intenta.
func (m *SMTPMailer) Send(ctx context.Context, msg ports.MailMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := m.dialer.DialAndSend(BuildMessage(m.from, m.name, msg)); err != nil {
		return fmt.Errorf("smtp: enviar a %s: %w", msg.To, err)
	}
	return nil
}

// BuildMessage arma el mensaje MIME con el cuerpo HTML.
func BuildMessage(from, fromName string, msg ports.MailMessage) *gomail.Message {
	gm := gomail.NewMessage(gomail.SetCharset("UTF-8"))
	gm.SetAddressHeader("From", from, fromName)
	gm.SetHeader("To", msg.To)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/html", msg.HTML)
	return gm
}

// LogMailer registra los emails en el log sin enviarlos (SMTP no configurado).
type LogMailer struct {
	log *logger.Logger
}

// NewLogMailer construye el mailer de desarrollo.
func NewLogMailer(log *logger.Logger) *LogMailer {
	return &LogMailer{log: log.Component("mail")}
}

// Send solo registra destinatario y asunto.
func (m *LogMailer) Send(_ context.Context, msg ports.MailMessage) error {
	m.log.Info().Str("to", msg.To).Str("subject", msg.Subject).Msg("SMTP no configurado; email no enviado")
	return nil
}
