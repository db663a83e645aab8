package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// The only producer today is signup, which enqueues a "welcome" job.
type EmailJob struct {
	To       string         `json:"to"`
	Template string         `json:"template"`
	Data     map[string]any `json:"data,omitempty"`
}
