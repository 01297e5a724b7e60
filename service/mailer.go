package service

import (
	"fmt"

	mail "github.com/go-mail/mail/v2"

	"github.com/curiokids/backend/models"
)

// Mailer sends course review notifications to instructors over SMTP.
// A nil *Mailer is valid and the status handler skips it.
type Mailer struct {
	dialer *mail.Dialer
	from   string
}

func NewMailer(host string, port int, username, password, from string) *Mailer {
	d := mail.NewDialer(host, port, username, password)
	d.StartTLSPolicy = mail.MandatoryStartTLS
	return &Mailer{dialer: d, from: from}
}

// SendCourseReviewed emails the owning instructor the admin's decision.
func (m *Mailer) SendCourseReviewed(to string, course *models.Course) error {
	msg := mail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", fmt.Sprintf("Your course %q was %s", course.Title, course.Status))
	body := fmt.Sprintf("Hi,\n\nYour course %q has been %s.", course.Title, course.Status)
	if course.Feedback != nil && *course.Feedback != "" {
		body += "\n\nReviewer feedback:\n" + *course.Feedback
	}
	body += "\n\nCurio Kids Team"
	msg.SetBody("text/plain", body)
	return m.dialer.DialAndSend(msg)
}
