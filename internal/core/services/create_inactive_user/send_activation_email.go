package createinactiveuser

import (
	"context"
	"fmt"
	"registration/internal/core/domain/activation"
	c "registration/internal/core/domain/common"
	"registration/internal/core/domain/user"
)

type activationEmail struct {
	renderer activation.TemplateRenderer
	mailer   activation.Mailer
	config   activation.Config
}

func newActivationEmail(
	renderer activation.TemplateRenderer,
	mailer activation.Mailer,
	config activation.Config,
) *activationEmail {
	return &activationEmail{renderer: renderer, mailer: mailer, config: config}
}

func (m *activationEmail) send(ctx context.Context, u user.User, p activation.Profile) error {
	data := activation.TemplateData{
		Site:           m.config.Site,
		ActivationKey:  p.Key,
		ExpirationDays: m.config.ExpirationDays,
	}
	subject, err := m.renderer.Render(activation.SubjectTemplate, data)
	if err != nil {
		return fmt.Errorf("could not render activation email subject: %w", err)
	}
	body, err := m.renderer.Render(activation.BodyTemplate, data)
	if err != nil {
		return fmt.Errorf("could not render activation email body: %w", err)
	}
	return m.mailer.Send(ctx, activation.Message{
		From:    m.config.DefaultFromEmail,
		To:      u.Email,
		Subject: c.SingleLine(subject),
		Body:    body,
	})
}
