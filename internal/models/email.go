package models

// Email is a plain-text message handed to a mail sender.
type Email struct {
	To      []string
	Subject string
	Body    string
}
