// services/mail_service.go
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strings"
	"time"

	"gopkg.in/gomail.v2"

	"uobsurvey/internal/config"
)

type IMailService interface {
	SendMailToNotifyUser(
		to, subject, body, ctaText, ctaURL string,
	) error
	// SendReportMail embeds the rendered report and attaches its Markdown source.
	SendReportMail(to, subject, intro string, reportHTML []byte, attachmentName string, markdown []byte) error
}

type smtpMailService struct {
	cfg     config.SMTPConfig
	appName string
	htmlTpl *template.Template
	textTpl *template.Template
	send    func(m ...*gomail.Message) error
}

func NewSMTPMailService(cfg config.SMTPConfig, appName string) IMailService {
	dialer := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Email, cfg.Password)
	return newMailService(cfg, appName, dialer.DialAndSend)
}

func newMailService(cfg config.SMTPConfig, appName string, send func(m ...*gomail.Message) error) *smtpMailService {
	return &smtpMailService{
		cfg:     cfg,
		appName: appName,
		htmlTpl: template.Must(template.New("html").Parse(baseHTMLTemplate)),
		textTpl: template.Must(template.New("text").Parse(plainTextTemplate)),
		send:    send,
	}
}

// ------------------- Public API -------------------

func (s *smtpMailService) SendMailToNotifyUser(
	to, subject, body, ctaText, ctaURL string,
) error {
	html, text, err := s.renderEmail(EmailData{
		Title:     subject,
		Intro:     body,
		ButtonURL: ctaURL,
		ButtonTxt: ctaText,
		AppName:   s.appName,
		Year:      time.Now().Year(),
	})
	if err != nil {
		return err
	}
	return s.deliver(s.newMessage(to, subject, html, text))
}

func (s *smtpMailService) SendReportMail(to, subject, intro string, reportHTML []byte, attachmentName string, markdown []byte) error {
	html, text, err := s.renderEmail(EmailData{
		Title:   subject,
		Intro:   intro,
		Content: template.HTML(reportHTML),
		AppName: s.appName,
		Year:    time.Now().Year(),
	})
	if err != nil {
		return err
	}

	m := s.newMessage(to, subject, html, text)
	if attachmentName != "" && len(markdown) > 0 {
		m.Attach(attachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(markdown)
			return err
		}))
	}
	return s.deliver(m)
}

// ------------------- Rendering -------------------

type EmailData struct {
	Title     string
	Intro     string
	Content   template.HTML
	ButtonURL string
	ButtonTxt string
	AppName   string
	Year      int
}

const baseHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; padding: 0; background: #f1f5f9; color: #0f172a; font-family: -apple-system, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; }
    .wrapper { width: 100%; padding: 32px 16px; box-sizing: border-box; }
    .container { max-width: 760px; margin: 0 auto; background: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 10px 30px rgba(0, 0, 0, 0.08); }
    .header { padding: 24px 32px; border-bottom: 1px solid #e2e8f0; font-weight: 700; color: #1e3a8a; text-transform: uppercase; letter-spacing: 0.5px; }
    .hero { padding: 32px; }
    h1 { margin: 0 0 16px; font-size: 24px; }
    p { margin: 0 0 16px; line-height: 1.6; color: #334155; }
    .report { margin-top: 24px; padding-top: 16px; border-top: 1px solid #e2e8f0; }
    .report table { border-collapse: collapse; }
    .report td, .report th { border: 1px solid #cbd5e1; padding: 4px 8px; }
    .btn { display: inline-block; padding: 12px 24px; background: #2563eb; color: #ffffff !important; text-decoration: none; border-radius: 8px; font-weight: 600; }
    .footer { padding: 20px 32px; color: #64748b; font-size: 13px; text-align: center; border-top: 1px solid #e2e8f0; }
  </style>
</head>
<body>
  <div class="wrapper">
    <div class="container">
      <div class="header">{{.AppName}}</div>
      <div class="hero">
        <h1>{{.Title}}</h1>
        <p>{{.Intro}}</p>
        {{if .ButtonURL}}<p><a class="btn" href="{{.ButtonURL}}">{{.ButtonTxt}}</a></p>{{end}}
        {{if .Content}}<div class="report">{{.Content}}</div>{{end}}
      </div>
      <div class="footer">© {{.Year}} {{.AppName}}. Confidential.</div>
    </div>
  </div>
</body>
</html>`

const plainTextTemplate = `{{.Title}}

{{.Intro}}

{{if .ButtonURL}}Open this link:
{{.ButtonURL}}
{{end}}
-- {{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) renderEmail(data EmailData) (html string, text string, err error) {
	var hb, tb bytes.Buffer

	if err = s.htmlTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err = s.textTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

// ------------------- SMTP Send -------------------

func (s *smtpMailService) newMessage(to, subject, htmlBody, textBody string) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.formatFromHeader(m))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", textBody)
	m.AddAlternative("text/html", htmlBody)
	return m
}

func (s *smtpMailService) deliver(m *gomail.Message) error {
	if err := s.send(m); err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}
	return nil
}

func (s *smtpMailService) formatFromHeader(m *gomail.Message) string {
	name := strings.TrimSpace(s.cfg.SenderName)
	if name == "" {
		return s.cfg.Email
	}
	return m.FormatAddress(s.cfg.Email, name)
}
