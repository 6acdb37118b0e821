// internal/email/mailer/notification.go
package mailer

import "github.com/campusforge/ideabank/internal/email"

// NotificationTemplateData contains data for the notification email template
type NotificationTemplateData struct {
	Name    string
	Message string
	BaseURL string
}

// SendNotificationEmail mirrors an in-app notification to the user's inbox.
func SendNotificationEmail(s *email.Service, to, name, message, baseURL string) error {
	templateData := NotificationTemplateData{
		Name:    name,
		Message: message,
		BaseURL: baseURL,
	}

	emailData := email.EmailData{
		To:           to,
		FromName:     "Idea Bank",
		Subject:      "You have new activity on Idea Bank",
		TemplateName: "notification",
		TemplateData: templateData,
	}

	return s.SendEmail(emailData)
}
