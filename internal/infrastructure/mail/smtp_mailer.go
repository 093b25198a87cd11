package mail

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log"

	"doorway_ops/internal/domain/entities"
	"doorway_ops/internal/usecase/interfaces"

	gomail "github.com/wneessen/go-mail"
)

var ErrMailerNotConfigured = errors.New("smtp mailer not configured")

// SMTPMailer sends invoice emails over authenticated SMTP.
type SMTPMailer struct {
	client *gomail.Client
	from   string
	tmpl   *template.Template
}

var _ interfaces.IInvoiceMailer = (*SMTPMailer)(nil)

func NewSMTPMailer(host string, port int, username, password, from string) (*SMTPMailer, error) {
	if host == "" || from == "" {
		return nil, ErrMailerNotConfigured
	}

	opts := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	}
	if username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(username),
			gomail.WithPassword(password),
		)
	}

	client, err := gomail.NewClient(host, opts...)
	if err != nil {
		log.Printf("[mail][smtp] client init failed host=%s err=%v", host, err)
		return nil, err
	}
	log.Printf("[mail][smtp] client initialized host=%s from=%s", host, from)

	return &SMTPMailer{client: client, from: from, tmpl: invoiceTemplate}, nil
}

func (m *SMTPMailer) SendInvoice(ctx context.Context, job entities.Job, inv entities.Invoice) error {
	body, err := renderInvoice(m.tmpl, job, inv)
	if err != nil {
		return err
	}

	msg := gomail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return err
	}
	if err := msg.To(job.Email); err != nil {
		return err
	}
	msg.Subject(fmt.Sprintf("Invoice for %s", job.Service))
	msg.SetBodyString(gomail.TypeTextHTML, body)

	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Printf("[mail][smtp] send failed to=%s job_id=%s err=%v", job.Email, job.ID, err)
		return err
	}
	log.Printf("[mail][smtp] invoice sent to=%s job_id=%s total=%.2f", job.Email, job.ID, entities.RoundCents(inv.Total))
	return nil
}

func renderInvoice(tmpl *template.Template, job entities.Job, inv entities.Invoice) (string, error) {
	data := invoiceTemplateData{
		Name:      job.Name,
		Service:   job.Service,
		Address:   job.Address,
		Notes:     job.InvoiceNotes,
		Price:     fmt.Sprintf("%.2f", entities.RoundCents(inv.Price)),
		Discount:  fmt.Sprintf("%.2f", entities.RoundCents(inv.Discount)),
		Subtotal:  fmt.Sprintf("%.2f", entities.RoundCents(inv.Subtotal)),
		TaxRate:   fmt.Sprintf("%.4g", inv.TaxRate),
		TaxAmount: fmt.Sprintf("%.2f", entities.RoundCents(inv.TaxAmount)),
		Total:     fmt.Sprintf("%.2f", entities.RoundCents(inv.Total)),
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

type invoiceTemplateData struct {
	Name      string
	Service   string
	Address   string
	Notes     string
	Price     string
	Discount  string
	Subtotal  string
	TaxRate   string
	TaxAmount string
	Total     string
}

var invoiceTemplate = template.Must(template.New("invoice").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #333;">
  <h2>Invoice</h2>
  <p>Hi {{.Name}},</p>
  <p>Thanks for choosing us. Here is the invoice for your <strong>{{.Service}}</strong>{{if .Address}} at {{.Address}}{{end}}.</p>
  <table cellpadding="6" style="border-collapse: collapse;">
    <tr><td>Price</td><td align="right">${{.Price}}</td></tr>
    <tr><td>Discount</td><td align="right">-${{.Discount}}</td></tr>
    <tr><td>Subtotal</td><td align="right">${{.Subtotal}}</td></tr>
    <tr><td>Tax ({{.TaxRate}}%)</td><td align="right">${{.TaxAmount}}</td></tr>
    <tr><td><strong>Total due</strong></td><td align="right"><strong>${{.Total}}</strong></td></tr>
  </table>
  {{if .Notes}}<p>{{.Notes}}</p>{{end}}
  <p>Please reply to this email with any questions.</p>
</body>
</html>
`))
