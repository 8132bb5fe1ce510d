// services/notifier.go
package services

import (
	"os"

	"powercare-backend/utils"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"go.uber.org/zap"
)

// Notifier is the fire-and-forget message sink. Callers do not depend on its
// delivery behavior.
type Notifier interface {
	Send(to, body string) error
}

// TwilioNotifier delivers over SMS.
type TwilioNotifier struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioNotifier() *TwilioNotifier {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &TwilioNotifier{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: os.Getenv("TWILIO_PHONE_NUMBER"),
	}
}

func (t *TwilioNotifier) Send(to, body string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(body)
	params.SetFrom(t.from)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return err
	}
	if resp.Sid != nil {
		utils.GetLogger().Info("Message sent",
			zap.String("to", to), zap.String("sid", *resp.Sid))
	}
	return nil
}

// LogNotifier only logs, used in development and tests.
type LogNotifier struct{}

func (LogNotifier) Send(to, body string) error {
	utils.GetLogger().Info("notification",
		zap.String("to", to), zap.String("body", body))
	return nil
}
