// Package alerts notifies operators about conditions that need a human,
// currently only total persistence-fallback exhaustion.
package alerts

import (
	"fmt"
	"log/slog"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Notifier delivers an operator alert.
type Notifier interface {
	Notify(message string) error
}

// SMSNotifier sends alerts through Twilio.
type SMSNotifier struct {
	client     *twilio.RestClient
	fromNumber string
	toNumber   string
	logger     *slog.Logger
}

func NewSMSNotifier(accountSID, authToken, fromNumber, toNumber string, logger *slog.Logger) *SMSNotifier {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &SMSNotifier{
		client:     client,
		fromNumber: fromNumber,
		toNumber:   toNumber,
		logger:     logger,
	}
}

func (n *SMSNotifier) Notify(message string) error {
	params := &twilioApi.CreateMessageParams{
		To:   &n.toNumber,
		From: &n.fromNumber,
		Body: &message,
	}

	sent, err := n.client.Api.CreateMessage(params)
	if err != nil {
		n.logger.Error("Failed to send alert SMS",
			slog.String("error", err.Error()),
			slog.String("to", n.toNumber))
		return fmt.Errorf("failed to send alert SMS: %w", err)
	}

	n.logger.Info("Alert SMS sent",
		slog.String("message_sid", *sent.Sid))
	return nil
}
