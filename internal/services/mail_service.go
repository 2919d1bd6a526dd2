package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"net"
	"net/smtp"
	"strings"
	"time"

	"selexia/internal/config"
	"selexia/internal/models/db_models"
	"selexia/pkg/utils"
)

// MailServiceInterface sends transactional notifications. Callers treat
// failures as non-fatal: a booking must never be lost because SMTP is down.
type MailServiceInterface interface {
	SendBookingCreated(booking *db_models.Booking, user *db_models.User) error
	SendBookingStatusChanged(booking *db_models.Booking, user *db_models.User) error
	SendApplicationReceived(application *db_models.Application) error
	SendWelcome(user *db_models.User) error
}

type smtpMailService struct {
	cfg     config.SMTPConfig
	appName string
	baseURL string

	// operatorEmail receives copies of new bookings and applications.
	operatorEmail string

	htmlTpl *template.Template
	textTpl *template.Template
}

func NewSMTPMailService(cfg *config.Config) MailServiceInterface {
	return &smtpMailService{
		cfg:           cfg.SMTP,
		appName:       cfg.SMTP.FromName,
		baseURL:       strings.TrimRight(cfg.AppBaseURL, "/"),
		operatorEmail: cfg.OperatorEmail,
		htmlTpl:       template.Must(template.New("html").Parse(mailHTMLTemplate)),
		textTpl:       template.Must(template.New("text").Parse(mailTextTemplate)),
	}
}

func (s *smtpMailService) SendBookingCreated(booking *db_models.Booking, user *db_models.User) error {
	date := booking.Date.Format(utils.DateLayout)
	subject := "Booking received: " + booking.Excursion.TitleRu

	err := s.deliver(booking.ContactEmail, subject, fmt.Sprintf(
		"We received your booking for %q on %s for %d people. Total: %.2f %s. "+
			"We will confirm it shortly.",
		booking.Excursion.TitleRu, date, booking.PeopleCount,
		booking.TotalPrice, booking.Excursion.Currency),
		"View my bookings", s.baseURL+"/account/bookings")
	if err != nil {
		return err
	}

	return s.deliver(s.operatorEmail, "New booking: "+booking.Excursion.TitleRu, fmt.Sprintf(
		"%s (%s, %s) booked %q on %s for %d people.",
		user.FullName(), booking.ContactEmail, booking.ContactPhone,
		booking.Excursion.TitleRu, date, booking.PeopleCount),
		"", "")
}

func (s *smtpMailService) SendBookingStatusChanged(booking *db_models.Booking, user *db_models.User) error {
	subject := fmt.Sprintf("Booking %s: %s", booking.Status, booking.Excursion.TitleRu)
	return s.deliver(booking.ContactEmail, subject, fmt.Sprintf(
		"Your booking for %q on %s is now %s.",
		booking.Excursion.TitleRu, booking.Date.Format(utils.DateLayout), booking.Status),
		"View my bookings", s.baseURL+"/account/bookings")
}

func (s *smtpMailService) SendApplicationReceived(application *db_models.Application) error {
	if err := s.deliver(application.Email, "We received your travel request",
		fmt.Sprintf("Hi %s, thanks for reaching out. Our team will contact you at %s shortly.",
			application.Name, application.Phone),
		"Browse excursions", s.baseURL+"/excursions"); err != nil {
		return err
	}

	body := fmt.Sprintf("%s (%s, %s) left a request: %s",
		application.Name, application.Email, application.Phone, application.Message)
	if application.Destination != "" {
		body += " Destination: " + application.Destination + "."
	}
	return s.deliver(s.operatorEmail, "New travel request from "+application.Name, body, "", "")
}

func (s *smtpMailService) SendWelcome(user *db_models.User) error {
	return s.deliver(user.Email, "Welcome to "+s.appName,
		"Your account is ready. Browse excursions, save favorites and book your next trip.",
		"Find an excursion", s.baseURL+"/excursions")
}

type mailData struct {
	Title     string
	Intro     string
	ButtonURL string
	ButtonTxt string
	AppName   string
	Year      int
}

const mailHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; padding: 0; background: #f4f6f8; color: #1f2933;
      font-family: -apple-system, "Segoe UI", Roboto, Helvetica, Arial, sans-serif; }
    .container { max-width: 600px; margin: 0 auto; padding: 32px 16px; }
    .card { background: #ffffff; border-radius: 12px; padding: 32px;
      box-shadow: 0 2px 8px rgba(31, 41, 51, 0.08); }
    .brand { font-weight: 700; font-size: 20px; color: #0b6e99; margin-bottom: 24px; }
    h1 { font-size: 22px; margin: 0 0 16px; }
    p { line-height: 1.6; margin: 0 0 20px; color: #3e4c59; }
    .btn { display: inline-block; padding: 12px 28px; background: #0b6e99;
      color: #ffffff !important; text-decoration: none; border-radius: 8px; font-weight: 600; }
    .footer { text-align: center; color: #7b8794; font-size: 12px; padding-top: 24px; }
  </style>
</head>
<body>
  <div class="container">
    <div class="card">
      <div class="brand">{{.AppName}}</div>
      <h1>{{.Title}}</h1>
      <p>{{.Intro}}</p>
      {{if .ButtonURL}}<a class="btn" href="{{.ButtonURL}}">{{.ButtonTxt}}</a>{{end}}
    </div>
    <div class="footer">© {{.Year}} {{.AppName}}</div>
  </div>
</body>
</html>`

const mailTextTemplate = `{{.Title}}

{{.Intro}}

{{if .ButtonURL}}{{.ButtonURL}}
{{end}}
— {{.AppName}} © {{.Year}}
`

func (s *smtpMailService) deliver(to, subject, intro, ctaText, ctaURL string) error {
	data := mailData{
		Title:     subject,
		Intro:     intro,
		ButtonURL: ctaURL,
		ButtonTxt: ctaText,
		AppName:   s.appName,
		Year:      time.Now().Year(),
	}

	var hb, tb bytes.Buffer
	if err := s.htmlTpl.Execute(&hb, data); err != nil {
		return err
	}
	if err := s.textTpl.Execute(&tb, data); err != nil {
		return err
	}
	return s.send(to, subject, hb.String(), tb.String())
}

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	boundary := fmt.Sprintf("alt_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = msg.WriteString(fmt.Sprintf(format, a...)) }

	write("From: %s <%s>\r\n", s.cfg.FromName, s.cfg.From)
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", subject)
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)

	dialer := &net.Dialer{Timeout: 10 * time.Second}
	conn, err := dialer.Dial("tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if ok, _ := c.Extension("STARTTLS"); ok {
		tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}
		if err = c.StartTLS(tlsCfg); err != nil {
			return err
		}
	}

	if err = c.Auth(auth); err != nil {
		return err
	}
	if err = c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err = c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg.Bytes()); err != nil {
		return err
	}
	return w.Close()
}
