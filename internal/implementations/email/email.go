package email

import (
	"context"
	"errors"
	"registration/internal/core/domain/activation"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

const charset = "UTF-8"

type sesAPI interface {
	SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error)
}

type SESMailer struct {
	ses sesAPI
}

func NewSESMailer(awsConfig aws.Config) *SESMailer {
	return &SESMailer{ses: ses.NewFromConfig(awsConfig)}
}

// Send delivers a plain text message. The sender address must be verified with Amazon SES.
func (m *SESMailer) Send(ctx context.Context, message activation.Message) error {
	if message.From == "" {
		return errors.New("sender email is not defined")
	}
	if message.To == "" {
		return errors.New("recipient email is not defined")
	}
	_, err := m.ses.SendEmail(ctx, buildInput(message))
	return err
}

func buildInput(message activation.Message) *ses.SendEmailInput {
	return &ses.SendEmailInput{
		Source: aws.String(string(message.From)),
		Destination: &types.Destination{
			CcAddresses: []string{},
			ToAddresses: []string{string(message.To)},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(message.Subject), Charset: aws.String(charset)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(message.Body), Charset: aws.String(charset)},
			},
		},
	}
}
