package services

import (
	"fmt"
	"time"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/bhoomikart/backend/internal/config"
	"github.com/bhoomikart/backend/internal/utils"
)

// NotificationService delivers OTP codes to users. Delivery is best-effort:
// failures are logged and never propagated, so a dead SMS gateway cannot
// roll back an account registration.
type NotificationService interface {
	SendOTP(phone string, email *string, code string)
}

type notificationService struct {
	cfg            *config.Config
	twilioClient   *twilio.RestClient
	sendgridClient *sendgrid.Client
}

func NewNotificationService(cfg *config.Config) NotificationService {
	twClient := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.TwilioAccountSID,
		Password: cfg.TwilioAuthToken,
	})
	sgClient := sendgrid.NewSendClient(cfg.SendGridAPIKey)

	return &notificationService{
		cfg:            cfg,
		twilioClient:   twClient,
		sendgridClient: sgClient,
	}
}

func (s *notificationService) SendOTP(phone string, email *string, code string) {
	s.sendSMS(phone, code)
	if email != nil && *email != "" {
		s.sendEmail(*email, code)
	}
}

func (s *notificationService) sendSMS(phone, code string) {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(s.cfg.LDFlag_TwilioFromPhone)
	params.SetBody(fmt.Sprintf("Your %s verification code is %s", s.cfg.OrganizationName, code))

	if _, err := s.twilioClient.Api.CreateMessage(params); err != nil {
		utils.Logger.WithError(err).Errorf("Failed to send verification SMS to %s via Twilio", phone)
	}
}

func (s *notificationService) sendEmail(email, code string) {
	from := mail.NewEmail(s.cfg.OrganizationName, s.cfg.LDFlag_SendgridFromEmail)
	to := mail.NewEmail("", email)
	subject := s.cfg.OrganizationName + " - Verification Code"
	plainTextContent := fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", code)
	htmlContent := fmt.Sprintf(
		"<p>Your verification code is <strong>%s</strong>. It expires in 10 minutes.</p><p>%d %s</p>",
		code, time.Now().Year(), s.cfg.OrganizationName,
	)
	message := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)

	if s.cfg.LDFlag_SendgridSandboxMode {
		ms := mail.NewMailSettings()
		ms.SetSandboxMode(mail.NewSetting(true))
		message.MailSettings = ms
	}

	if _, err := s.sendgridClient.Send(message); err != nil {
		utils.Logger.WithError(err).Errorf("Failed to send verification email to %s via SendGrid", email)
	}
}
