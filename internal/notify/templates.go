package notify

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	"text/template"
)

const notProvided = "Not provided"

// leadEmailData is the view model shared by the text and HTML bodies.
type leadEmailData struct {
	SiteName    string
	Address     string
	Phone       string
	Email       string
	SubmittedAt string
}

var leadTextTemplate = template.Must(template.New("lead_text").Option("missingkey=error").Parse(
	`New cash offer request from the website.

Property address: {{.Address}}
Phone: {{.Phone}}
Email: {{.Email}}
Submitted: {{.SubmittedAt}}

Reach out within 24 hours to prepare the offer.

— {{.SiteName}}
`))

// html/template escapes every field; address and contact text come straight
// from the public form.
var leadHTMLTemplate = htmltemplate.Must(htmltemplate.New("lead_html").Option("missingkey=error").Parse(
	`<div style="font-family: sans-serif; max-width: 600px;">
<h2 style="color: #16a34a;">New Cash Offer Request</h2>
<table style="border-collapse: collapse; margin: 20px 0;">
  <tr><td style="padding: 8px; border-bottom: 1px solid #e5e7eb;"><strong>Property:</strong></td><td style="padding: 8px; border-bottom: 1px solid #e5e7eb;">{{.Address}}</td></tr>
  <tr><td style="padding: 8px; border-bottom: 1px solid #e5e7eb;"><strong>Phone:</strong></td><td style="padding: 8px; border-bottom: 1px solid #e5e7eb;">{{.Phone}}</td></tr>
  <tr><td style="padding: 8px; border-bottom: 1px solid #e5e7eb;"><strong>Email:</strong></td><td style="padding: 8px; border-bottom: 1px solid #e5e7eb;">{{.Email}}</td></tr>
  <tr><td style="padding: 8px; border-bottom: 1px solid #e5e7eb;"><strong>Submitted:</strong></td><td style="padding: 8px; border-bottom: 1px solid #e5e7eb;">{{.SubmittedAt}}</td></tr>
</table>
<p style="background: #f0fdf4; padding: 12px; border-radius: 8px; border-left: 4px solid #16a34a;">Reach out within 24 hours to prepare the offer.</p>
<p style="color: #6b7280; font-size: 12px; margin-top: 20px;">— {{.SiteName}}</p>
</div>`))

func renderLeadEmail(data leadEmailData) (text string, html string, err error) {
	var tb, hb bytes.Buffer
	if err := leadTextTemplate.Execute(&tb, data); err != nil {
		return "", "", fmt.Errorf("notify: render text: %w", err)
	}
	if err := leadHTMLTemplate.Execute(&hb, data); err != nil {
		return "", "", fmt.Errorf("notify: render html: %w", err)
	}
	return tb.String(), hb.String(), nil
}

func orNotProvided(v string) string {
	if v == "" {
		return notProvided
	}
	return v
}
