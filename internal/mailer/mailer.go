// Package mailer is the notification collaborator boundary: the core hands
// it a recipient, a template and data, and does not care how delivery
// happens.
package mailer

type Mailer interface {
	Send(recipient, templateFile string, data any) error
}
