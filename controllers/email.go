package controllers

import (
	"fmt"
	"io"
	"os"

	"github.com/AdityaTidake/MedPlus/configuration"

	"github.com/go-gomail/gomail"
)

// SendEmail sends an email with an optional attachment. With no SMTP
// credentials configured the mail is skipped and logged, never failed.
func SendEmail(subject, msg, email, attachmentName string, attachmentData []byte) error {
	senderEmail := os.Getenv("SMTP_EMAIL")
	senderPassword := os.Getenv("SMTP_PASSWORD")
	if senderEmail == "" {
		configuration.Log.Warnf("SMTP not configured, skipping mail to %s", email)
		return nil
	}

	m := gomail.NewMessage()
	m.SetHeader("From", senderEmail)
	m.SetHeader("To", email)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", msg)

	if len(attachmentData) > 0 {
		m.Attach(attachmentName, gomail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(attachmentData)
			return err
		}))
	}

	d := gomail.NewDialer("smtp.gmail.com", 587, senderEmail, senderPassword)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("error sending email: %v", err)
	}

	return nil
}
