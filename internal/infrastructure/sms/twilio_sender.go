package sms

import (
	"context"
	"errors"
	"log"

	"doorway_ops/internal/usecase/interfaces"

	"github.com/twilio/twilio-go"
	twilioapi "github.com/twilio/twilio-go/rest/api/v2010"
)

var ErrSMSNotConfigured = errors.New("twilio sms not configured")

// TwilioSender delivers SMS through the Twilio REST API.
type TwilioSender struct {
	client *twilio.RestClient
	from   string
}

var _ interfaces.ISMSSender = (*TwilioSender)(nil)

func NewTwilioSender(accountSID, authToken, from string) (*TwilioSender, error) {
	if accountSID == "" || authToken == "" || from == "" {
		return nil, ErrSMSNotConfigured
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	log.Printf("[sms][twilio] client initialized from=%s", from)

	return &TwilioSender{client: client, from: from}, nil
}

// Send delivers one message. The twilio-go client has no context-aware
// call, so ctx only guards the early-out before the request.
func (s *TwilioSender) Send(ctx context.Context, to, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	params := &twilioapi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom(s.from)
	params.SetBody(body)

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("[sms][twilio] send failed to=%s err=%v", to, err)
		return err
	}

	sid := ""
	if resp.Sid != nil {
		sid = *resp.Sid
	}
	log.Printf("[sms][twilio] sent message_sid=%s to=%s", sid, to)
	return nil
}
