package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Template selects a named template rendered by the worker; Text/HTML are
// used as-is when no template is given.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	Text     string         `json:"text,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // e.g. "welcome"
	Data     map[string]any `json:"data,omitempty"`
}

// NewWelcomeJob builds the job published after a successful registration.
func NewWelcomeJob(to, name string) EmailJob {
	return EmailJob{
		To:       to,
		Template: TemplateWelcome,
		Data:     map[string]any{"Name": name, "Email": to},
	}
}
