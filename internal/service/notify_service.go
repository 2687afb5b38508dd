package service

import (
	"fmt"
	"strings"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/twilio/twilio-go"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

func (c SendGridConfig) enabled() bool {
	return c.APIKey != "" && c.FromEmail != ""
}

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
}

func (c TwilioConfig) enabled() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != ""
}

func newSendGridEmailer(cfg SendGridConfig) func(toEmail, subject, plain, html string) error {
	client := sendgrid.NewSendClient(cfg.APIKey)
	return func(toEmail, subject, plain, html string) error {
		from := mail.NewEmail(cfg.FromName, cfg.FromEmail)
		to := mail.NewEmail("", toEmail)
		message := mail.NewSingleEmail(from, subject, to, plain, html)

		response, err := client.Send(message)
		if err != nil {
			return fmt.Errorf("sendgrid send to %s failed: %w", toEmail, err)
		}
		if response.StatusCode < 200 || response.StatusCode >= 300 {
			return fmt.Errorf("sendgrid returned status %d: %s", response.StatusCode, response.Body)
		}
		return nil
	}
}

func newTwilioTexter(cfg TwilioConfig) func(toNumber, body string) error {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username:   cfg.AccountSID,
		Password:   cfg.AuthToken,
		AccountSid: cfg.AccountSID,
	})
	return func(toNumber, body string) error {
		if !strings.HasPrefix(toNumber, "+") {
			return fmt.Errorf("phone number %q is not in E.164 format", toNumber)
		}
		params := &openapi.CreateMessageParams{}
		params.SetTo(toNumber)
		params.SetFrom(cfg.FromNumber)
		params.SetBody(body)

		if _, err := client.Api.CreateMessage(params); err != nil {
			return fmt.Errorf("twilio send to %s failed: %w", toNumber, err)
		}
		return nil
	}
}
