package mailer

import (
	"bytes"
	"html/template"
	"time"

	"github.com/go-mail/mail/v2"
)

var signupTmpl = template.Must(template.New("signup").Parse(`
{{define "subject"}}New signup: {{.Userid}}{{end}}
{{define "plainBody"}}User {{.Userid}} signed up with role {{.Role}}.{{end}}
{{define "htmlBody"}}<p>User <strong>{{.Userid}}</strong> signed up with role <em>{{.Role}}</em>.</p>{{end}}
`))

// Mailer sends operational notifications over SMTP.
type Mailer struct {
	dialer *mail.Dialer
	sender string
}

func New(host string, port int, username, password, sender string) *Mailer {
	dialer := mail.NewDialer(host, port, username, password)
	dialer.Timeout = 10 * time.Second
	return &Mailer{dialer: dialer, sender: sender}
}

// NotifySignup mails the ops address about a new account.
func (m *Mailer) NotifySignup(to, userid, role string) error {
	data := struct{ Userid, Role string }{Userid: userid, Role: role}
	return m.send(to, signupTmpl, data)
}

func (m *Mailer) send(to string, tmpl *template.Template, data any) error {
	var subject, plainBody, htmlBody bytes.Buffer
	if err := tmpl.ExecuteTemplate(&subject, "subject", data); err != nil {
		return err
	}
	if err := tmpl.ExecuteTemplate(&plainBody, "plainBody", data); err != nil {
		return err
	}
	if err := tmpl.ExecuteTemplate(&htmlBody, "htmlBody", data); err != nil {
		return err
	}

	msg := mail.NewMessage()
	msg.SetHeader("To", to)
	msg.SetHeader("From", m.sender)
	msg.SetHeader("Subject", subject.String())
	msg.SetBody("text/plain", plainBody.String())
	msg.AddAlternative("text/html", htmlBody.String())

	var err error
	for i := 0; i < 3; i++ {
		if err = m.dialer.DialAndSend(msg); err == nil {
			return nil
		}
	}
	return err
}
