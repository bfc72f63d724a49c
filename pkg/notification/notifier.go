package notification

import (
	"context"
	"fmt"

	"vetrox-backend/pkg/utils"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// emailTemplate wraps the message in the same simple container the
// transactional emails have always used.
const emailTemplate = `
<html>
  <head>
    <style>
      body { font-family: Arial, sans-serif; }
      .email-container { max-width: 600px; margin: 0 auto; padding: 20px; border: 1px solid #ddd; border-radius: 10px; }
      .email-header { font-size: 24px; font-weight: bold; color: #333; }
      .email-body { font-size: 16px; color: #555; }
    </style>
  </head>
  <body>
    <div class="email-container">
      <div class="email-header">%s</div>
      <div class="email-body">%s</div>
    </div>
  </body>
</html>`

// Notifier sends email through SMTP and SMS through Twilio.
type Notifier struct {
	mailClient *mail.Client
	smsClient  *twilio.RestClient
	emailFrom  string
	smsFrom    string
	log        *zap.Logger
}

func NewNotifier(emailCfg utils.EmailConfig, smsCfg utils.SMSConfig, log *zap.Logger) (*Notifier, error) {
	mailClient, err := mail.NewClient(emailCfg.Host,
		mail.WithPort(emailCfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(emailCfg.User),
		mail.WithPassword(emailCfg.Password),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
	)
	if err != nil {
		return nil, fmt.Errorf("create mail client: %w", err)
	}

	smsClient := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: smsCfg.AccountSID,
		Password: smsCfg.AuthToken,
	})

	return &Notifier{
		mailClient: mailClient,
		smsClient:  smsClient,
		emailFrom:  emailCfg.From,
		smsFrom:    smsCfg.From,
		log:        log.With(zap.String("component", "notifier")),
	}, nil
}

func (n *Notifier) SendEmail(ctx context.Context, to, subject, body string) error {
	msg := mail.NewMsg()
	if err := msg.From(n.emailFrom); err != nil {
		return fmt.Errorf("set email from %s: %w", n.emailFrom, err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("set email recipient %s: %w", to, err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, fmt.Sprintf(emailTemplate, subject, body))

	if err := n.mailClient.DialAndSendWithContext(ctx, msg); err != nil {
		n.log.Error("Failed to send email",
			zap.Error(err),
			zap.String("to", to),
			zap.String("subject", subject))
		return fmt.Errorf("send email to %s: %w", to, err)
	}

	n.log.Info("Email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}

func (n *Notifier) SendSMS(ctx context.Context, to, body string) error {
	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(n.smsFrom)
	params.SetBody(body)

	if _, err := n.smsClient.Api.CreateMessage(params); err != nil {
		n.log.Error("Failed to send SMS",
			zap.Error(err),
			zap.String("to", to))
		return fmt.Errorf("send sms to %s: %w", to, err)
	}

	n.log.Info("SMS sent", zap.String("to", to))
	return nil
}
