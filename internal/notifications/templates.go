package notifications

import (
	"bytes"
	"fmt"
	"html/template"
)

const layout = `{{define "layout"}}<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <div style="background: {{.Accent}}; padding: 30px; text-align: center;">
    <h1 style="color: white; margin: 0; font-size: 28px;">{{.Title}}</h1>
  </div>
  <div style="padding: 30px; background: #f8fafc;">{{template "body" .}}</div>
  <div style="background: #1e293b; padding: 20px; text-align: center;">
    <p style="color: #94a3b8; margin: 0; font-size: 14px;">{{.Brand}}</p>
  </div>
</div>{{end}}`

var (
	bookingCustomerTmpl = mustParse("booking_customer", `{{define "body"}}
<p>Dear {{.Event.ContactName}},</p>
<p>Your booking for <strong>{{.Event.TargetName}}</strong> is confirmed.</p>
<div style="background: white; padding: 20px; border-radius: 8px; border-left: 4px solid #0ea5e9;">
  <p><strong>Booking:</strong> #{{.Event.BookingID}}</p>
  {{with .Event.TravelDate}}<p><strong>Travel date:</strong> {{.}}</p>{{end}}
  <p><strong>Travellers:</strong> {{.Event.Adults}} adult(s), {{.Event.Children}} child(ren)</p>
  <p><strong>Paid:</strong> {{.Event.TotalAmount.StringFixed 2}} {{.Event.Currency}}</p>
  <p><strong>Payment reference:</strong> {{.Event.PaymentID}}</p>
</div>
<p>We will be in touch with the final itinerary before departure.</p>
{{end}}`)

	bookingAdminTmpl = mustParse("booking_admin", `{{define "body"}}
<h2>New booking received</h2>
<div style="background: white; padding: 20px; border-radius: 8px; border-left: 4px solid #dc2626;">
  <p><strong>Booking:</strong> #{{.Event.BookingID}} ({{.Event.Target}})</p>
  <p><strong>For:</strong> {{.Event.TargetName}}</p>
  <p><strong>Customer:</strong> {{.Event.ContactName}} ({{.Event.ContactEmail}}, {{or .Event.ContactPhone "no phone"}})</p>
  {{with .Event.TravelDate}}<p><strong>Travel date:</strong> {{.}}</p>{{end}}
  <p><strong>Travellers:</strong> {{.Event.Adults}} adult(s), {{.Event.Children}} child(ren)</p>
  <p><strong>Amount:</strong> {{.Event.TotalAmount.StringFixed 2}} {{.Event.Currency}}</p>
  <p><strong>Order:</strong> {{.Event.OrderID}} / {{.Event.PaymentID}}</p>
</div>
<p><a href="{{.DashboardURL}}">View in admin dashboard</a></p>
{{end}}`)

	queryCustomerTmpl = mustParse("query_customer", `{{define "body"}}
<h2>Thank you for contacting us!</h2>
<p>Dear {{.Event.Name}},</p>
<p>We have received your message and our team will get back to you within 24 hours.</p>
<div style="background: white; padding: 20px; border-radius: 8px; border-left: 4px solid #0ea5e9;">
  <p><strong>Query ID:</strong> #{{.Event.QueryID}}</p>
  <p><strong>Subject:</strong> {{.Event.Subject}}</p>
  <p style="color: #64748b; font-style: italic;">{{.Event.Message}}</p>
</div>
{{end}}`)

	queryAdminTmpl = mustParse("query_admin", `{{define "body"}}
<h2>New contact query received</h2>
<div style="background: white; padding: 20px; border-radius: 8px; border-left: 4px solid #dc2626;">
  <p><strong>Query ID:</strong> #{{.Event.QueryID}}</p>
  <p><strong>From:</strong> {{.Event.Name}} ({{.Event.Email}})</p>
  <p><strong>Phone:</strong> {{or .Event.Phone "Not provided"}}</p>
  <p><strong>Subject:</strong> {{.Event.Subject}}</p>
  <p style="color: #64748b; font-style: italic;">{{.Event.Message}}</p>
  <p style="font-size: 12px; color: #94a3b8;">Received on {{.Event.CreatedAt.Format "02 Jan 2006 15:04 MST"}}</p>
</div>
<p>Please respond within 24 hours.</p>
<p><a href="{{.DashboardURL}}">View in admin dashboard</a></p>
{{end}}`)
)

type templateData struct {
	Title        string
	Accent       string
	Brand        string
	DashboardURL string
	Event        any
}

func mustParse(name, body string) *template.Template {
	return template.Must(template.Must(template.New(name).Parse(layout)).Parse(body))
}

func render(t *template.Template, data templateData) (string, error) {
	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", t.Name(), err)
	}

	return buf.String(), nil
}
