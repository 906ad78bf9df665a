package activation

import (
	"context"
	c "registration/internal/core/domain/common"
)

type TemplateName string

const (
	SubjectTemplate = TemplateName("registration/activation_email_subject.txt")
	BodyTemplate    = TemplateName("registration/activation_email.txt")
)

type TemplateData struct {
	Site           Site
	ActivationKey  Key
	ExpirationDays int
}

type TemplateRenderer interface {
	Render(name TemplateName, data TemplateData) (string, error)
}

type Message struct {
	From    c.Email
	To      c.Email
	Subject string
	Body    string
}

type Mailer interface {
	Send(ctx context.Context, message Message) error
}
