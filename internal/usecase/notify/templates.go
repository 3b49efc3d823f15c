package notify

import (
	"fmt"
	htmltpl "html/template"
	"strings"
	texttpl "text/template"

	"fintech-directory/internal/domain/notification"
	"fintech-directory/internal/domain/onboarding"

	"github.com/shopspring/decimal"
)

// ApplicationData feeds the admin alert and the applicant confirmation.
type ApplicationData struct {
	ApplicationID       string
	CompanyName         string
	InstitutionName     string
	ContactName         string
	ContactEmail        string
	EstimatedTurnover   decimal.Decimal
	BusinessDescription string
}

// StatusData feeds every status_* template.
type StatusData struct {
	ContactName     string
	InstitutionName string
	Notes           string
}

type SubscriberData struct {
	Email string
}

type ContactData struct {
	Name    string
	Email   string
	Company string
	Phone   string
	Subject string
	Message string
}

// Site is available to every template as .Site.
type Site struct {
	Name    string
	BaseURL string
}

type view struct {
	Site Site
	D    any
}

type layout struct {
	subject *texttpl.Template
	body    *htmltpl.Template
}

var funcs = map[string]any{
	"nl2br": func(s string) htmltpl.HTML {
		return htmltpl.HTML(strings.ReplaceAll(htmltpl.HTMLEscapeString(s), "\n", "<br>"))
	},
	"money": func(d decimal.Decimal) string { return "€" + d.StringFixed(2) },
}

const signature = `<p>Best regards,<br>The {{.Site.Name}} Team</p>`

var sources = map[notification.Template][2]string{
	notification.TemplateAdminNewApplication: {
		`New Onboarding Request - {{.D.CompanyName}}`,
		`<h2>New Onboarding Request</h2>
<p><strong>Company:</strong> {{.D.CompanyName}}</p>
<p><strong>Institution:</strong> {{.D.InstitutionName}}</p>
<p><strong>Contact:</strong> {{.D.ContactName}} ({{.D.ContactEmail}})</p>
<p><strong>Estimated Turnover:</strong> {{money .D.EstimatedTurnover}}</p>
<p><strong>Business Description:</strong> {{.D.BusinessDescription}}</p>
<p><a href="{{.Site.BaseURL}}/admin">View in Admin Dashboard</a></p>`,
	},
	notification.TemplateApplicationReceived: {
		`Application Received - {{.D.InstitutionName}}`,
		`<h2>Application Received</h2>
<p>Dear {{.D.ContactName}},</p>
<p>Thank you for your application to {{.D.InstitutionName}} through {{.Site.Name}}.</p>
<p>We have received your application and it is currently being reviewed. You will receive updates on the status via this email address.</p>
<p><strong>Application ID:</strong> {{.D.ApplicationID}}</p>
<p><strong>Next Steps:</strong> Our team will review your application and the institution will be notified. You can expect to hear back within 3-5 business days.</p>
` + signature,
	},
	notification.TemplateStatusReview: {
		`Application Under Review - {{.D.InstitutionName}}`,
		`<h2>Application Under Review</h2>
<p>Dear {{.D.ContactName}},</p>
<p>Your application to {{.D.InstitutionName}} is now under review.</p>
<p>We will contact you with updates shortly.</p>
{{with .D.Notes}}<p><strong>Notes:</strong> {{.}}</p>{{end}}
` + signature,
	},
	notification.TemplateStatusApproved: {
		`Application Approved - {{.D.InstitutionName}}`,
		`<h2>Application Approved!</h2>
<p>Dear {{.D.ContactName}},</p>
<p>Congratulations! Your application to {{.D.InstitutionName}} has been approved.</p>
<p>The institution will contact you directly within the next 24-48 hours to proceed with the onboarding process.</p>
{{with .D.Notes}}<p><strong>Next Steps:</strong> {{.}}</p>{{end}}
` + signature,
	},
	notification.TemplateStatusRejected: {
		`Application Update - {{.D.InstitutionName}}`,
		`<h2>Application Update</h2>
<p>Dear {{.D.ContactName}},</p>
<p>Thank you for your application to {{.D.InstitutionName}}.</p>
<p>Unfortunately, your application was not approved at this time.</p>
{{with .D.Notes}}<p><strong>Reason:</strong> {{.}}</p>{{end}}
<p>We encourage you to explore other institutions in our directory that might be a better fit for your business.</p>
` + signature,
	},
	notification.TemplateStatusCompleted: {
		`Onboarding Complete - {{.D.InstitutionName}}`,
		`<h2>Onboarding Complete!</h2>
<p>Dear {{.D.ContactName}},</p>
<p>Your onboarding with {{.D.InstitutionName}} has been completed successfully.</p>
<p>You should now have full access to their services.</p>
{{with .D.Notes}}<p><strong>Additional Information:</strong> {{.}}</p>{{end}}
<p>We hope you have a great experience with {{.D.InstitutionName}}!</p>
` + signature,
	},
	notification.TemplateNewsletterWelcome: {
		`Welcome to {{.Site.Name}} Newsletter!`,
		`<h2>Welcome to {{.Site.Name}}!</h2>
<p>Thank you for subscribing to our newsletter!</p>
<p>You'll now receive:</p>
<ul>
<li>Latest fintech industry insights</li>
<li>New institution additions to our directory</li>
<li>Exclusive guides and tips for choosing the right fintech</li>
<li>Regulatory updates and compliance news</li>
</ul>
<p>Stay tuned for valuable content to help you find the perfect fintech solutions for your business.</p>
<hr>
<p><small>Don't want to receive these emails? <a href="{{.Site.BaseURL}}/unsubscribe?email={{.D.Email}}">Unsubscribe here</a></small></p>
` + signature,
	},
	notification.TemplateContactAdmin: {
		`Contact Form: {{.D.Subject}}`,
		`<h2>New Contact Form Submission</h2>
<p><strong>Name:</strong> {{.D.Name}}</p>
<p><strong>Email:</strong> {{.D.Email}}</p>
{{with .D.Company}}<p><strong>Company:</strong> {{.}}</p>{{end}}
{{with .D.Phone}}<p><strong>Phone:</strong> {{.}}</p>{{end}}
<p><strong>Subject:</strong> {{.D.Subject}}</p>
<p><strong>Message:</strong></p>
<p>{{nl2br .D.Message}}</p>
<hr>
<p><small>Sent from {{.Site.Name}} contact form</small></p>`,
	},
	notification.TemplateContactConfirmation: {
		`Message Received - {{.Site.Name}}`,
		`<h2>Thank you for contacting us!</h2>
<p>Dear {{.D.Name}},</p>
<p>We have received your message and will respond within 24 hours.</p>
<p><strong>Your message:</strong></p>
<div style="background-color: #f5f5f5; padding: 15px; border-radius: 5px; margin: 10px 0;">
<p><strong>Subject:</strong> {{.D.Subject}}</p>
<p>{{nl2br .D.Message}}</p>
</div>
` + signature,
	},
}

var layouts = mustParse()

func mustParse() map[notification.Template]layout {
	out := make(map[notification.Template]layout, len(sources))
	for name, src := range sources {
		out[name] = layout{
			subject: texttpl.Must(texttpl.New(string(name)).Funcs(funcs).Parse(src[0])),
			body:    htmltpl.Must(htmltpl.New(string(name)).Funcs(funcs).Parse(src[1])),
		}
	}
	return out
}

// Render produces subject and html for t.
func Render(t notification.Template, site Site, data any) (subject, html string, err error) {
	l, ok := layouts[t]
	if !ok {
		return "", "", fmt.Errorf("unknown template %q", t)
	}
	v := view{Site: site, D: data}

	var sb, hb strings.Builder
	if err := l.subject.Execute(&sb, v); err != nil {
		return "", "", fmt.Errorf("render %s subject: %w", t, err)
	}
	if err := l.body.Execute(&hb, v); err != nil {
		return "", "", fmt.Errorf("render %s body: %w", t, err)
	}
	return sb.String(), hb.String(), nil
}

// StatusTemplate maps a new onboarding status to its applicant email. PENDING has none.
func StatusTemplate(s onboarding.Status) (notification.Template, bool) {
	switch s {
	case onboarding.StatusReview:
		return notification.TemplateStatusReview, true
	case onboarding.StatusApproved:
		return notification.TemplateStatusApproved, true
	case onboarding.StatusRejected:
		return notification.TemplateStatusRejected, true
	case onboarding.StatusCompleted:
		return notification.TemplateStatusCompleted, true
	}
	return "", false
}
