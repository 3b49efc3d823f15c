package notification

import "context"

// Template identifies one outbound email layout.
type Template string

const (
	TemplateAdminNewApplication Template = "admin_new_application"
	TemplateApplicationReceived Template = "application_received"
	TemplateStatusReview        Template = "status_review"
	TemplateStatusApproved      Template = "status_approved"
	TemplateStatusRejected      Template = "status_rejected"
	TemplateStatusCompleted     Template = "status_completed"
	TemplateNewsletterWelcome   Template = "newsletter_welcome"
	TemplateContactAdmin        Template = "contact_admin"
	TemplateContactConfirmation Template = "contact_confirmation"
)

// Envelope is a request to send Template to To, rendered with Data.
type Envelope struct {
	Template Template
	To       string
	ReplyTo  string
	Data     any
}

// Message is a rendered email ready for a transport.
type Message struct {
	Template Template `json:"template"`
	From     string   `json:"from"`
	To       string   `json:"to"`
	ReplyTo  string   `json:"replyTo,omitempty"`
	Subject  string   `json:"subject"`
	HTML     string   `json:"html"`
}

// Sender delivers one message. Implementations make a single attempt.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

// Dispatcher is what usecases notify through.
type Dispatcher interface {
	// Send delivers synchronously and returns the transport error.
	Send(ctx context.Context, e Envelope) error
	// Dispatch delivers in the background; failures are only logged.
	Dispatch(e Envelope)
	AdminEmail() string
}
