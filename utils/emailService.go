package utils

import (
	"fmt"
	"log"

	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"

	"studiofit/config"
)

// SendEmail sends an HTML email through SendGrid
func SendEmail(to []string, subject string, htmlBody string) error {
	if config.AppConfig.SendGridKey == "" {
		log.Println("SendGrid key not configured, skipping email:", subject)
		return nil
	}

	message := sgmail.NewV3Mail()
	message.SetFrom(sgmail.NewEmail(config.AppConfig.AppName, config.AppConfig.EmailSender))
	message.Subject = subject

	personalization := sgmail.NewPersonalization()
	for _, recipient := range to {
		personalization.AddTos(sgmail.NewEmail("", recipient))
	}
	message.AddPersonalizations(personalization)
	message.AddContent(sgmail.NewContent("text/html", htmlBody))

	client := sendgrid.NewSendClient(config.AppConfig.SendGridKey)
	response, err := client.Send(message)
	if err != nil {
		log.Printf("Error sending email: %v", err)
		return err
	}
	if response.StatusCode >= 400 {
		log.Printf("Failed to send email, response code: %d", response.StatusCode)
		return fmt.Errorf("failed to send email, code: %d", response.StatusCode)
	}

	log.Println("Email sent successfully to", to)
	return nil
}
