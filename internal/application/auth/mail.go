package auth

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/jhoicas/sigec-api/internal/application/ports"
)

var mailTemplates = template.Must(template.New("mail").Parse(`
{{define "activation"}}
<p>¡Gracias por registrarte en SIGEC!</p>
<p>Tu legajo es: <strong>{{.Legajo}}</strong></p>
<p>Hacé clic en el siguiente enlace para confirmar tu dirección de correo:</p>
<p><a href="{{.URL}}" style="background-color:#28a745;color:white;padding:10px 15px;text-decoration:none;border-radius:5px;">Activar mi cuenta</a></p>
<p>Una vez confirmado, un administrador revisará tu solicitud para activar tu cuenta.</p>
{{end}}
{{define "reset"}}
<p>Hola {{.Name}},</p>
<p>Recibimos una solicitud para restablecer tu contraseña en SIGEC. Si no fuiste vos, ignorá este correo.</p>
<p>El enlace vence en 1 hora:</p>
<p><a href="{{.URL}}" style="background-color:#007bff;color:white;padding:10px 15px;text-decoration:none;border-radius:5px;">Restablecer mi contraseña</a></p>
<p>O copiá esta URL en tu navegador: {{.URL}}</p>
{{end}}
{{define "welcome"}}
<p>Hola {{.Name}},</p>
<p>Un administrador activó tu cuenta en SIGEC. Ya podés iniciar sesión con tu legajo y contraseña.</p>
<p><a href="{{.URL}}" style="background-color:#007bff;color:white;padding:10px 15px;text-decoration:none;border-radius:5px;">Iniciar sesión</a></p>
{{end}}
`))

type mailData struct {
	Legajo int64
	Name   string
	URL    string
}

func renderMail(to, subject, tmpl string, data mailData) (ports.MailMessage, error) {
	var buf bytes.Buffer
	if err := mailTemplates.ExecuteTemplate(&buf, tmpl, data); err != nil {
		return ports.MailMessage{}, fmt.Errorf("render %s: %w", tmpl, err)
	}
	return ports.MailMessage{To: to, Subject: subject, HTML: buf.String()}, nil
}

func activationMail(frontendURL, to string, legajo int64) (ports.MailMessage, error) {
	return renderMail(to, "¡Bienvenido a SIGEC! Activa tu cuenta", "activation", mailData{
		Legajo: legajo,
		URL:    fmt.Sprintf("%s/confirm-email/%d", frontendURL, legajo),
	})
}

func resetMail(frontendURL, to, name, token string) (ports.MailMessage, error) {
	return renderMail(to, "Solicitud de reseteo de contraseña - SIGEC", "reset", mailData{
		Name: name,
		URL:  frontendURL + "/reset-password/" + token,
	})
}

// WelcomeMail aviso de cuenta activada por un administrador.
func WelcomeMail(frontendURL, to, name string) (ports.MailMessage, error) {
	return renderMail(to, "¡Tu cuenta en SIGEC ha sido activada!", "welcome", mailData{
		Name: name,
		URL:  frontendURL + "/login",
	})
}
