package email

import (
	"encoding/json"

	"github.com/gallerykit/portal/internal"
	"github.com/gallerykit/portal/internal/config"
	"github.com/gallerykit/portal/internal/validate"
	"github.com/sendgrid/sendgrid-go"
)

const sendGridHost = "https://api.sendgrid.com"

type client struct {
	cfg     config.SendGrid
	appName string
	host    string
	sender  Email
}

func New(appName string, cfg config.SendGrid) Client {
	return &client{
		cfg:     cfg,
		appName: appName,
		host:    sendGridHost,
		sender: Email{
			Name:  cfg.SenderName,
			Email: cfg.SenderEmail,
		},
	}
}

// send marshals a single personalization against a dynamic template and
// posts it to SendGrid
func (c *client) send(templateID string, to string, personalization *Personalization) error {
	if err := validate.Var(to, "email"); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeInvalidArgument, "Value, %s, provided for the argument `to` must be a valid email", to)
	}
	pay := Payload{
		From:             c.sender,
		TemplateID:       templateID,
		Personalizations: []*Personalization{personalization},
	}
	body, err := json.Marshal(pay)
	if err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to marshal email payload for %s", to)
	}
	request := sendgrid.GetRequest(c.cfg.APIKey, "/v3/mail/send", c.host)
	request.Method = "POST"
	request.Body = body
	if _, err := sendgrid.API(request); err != nil {
		return internal.WrapErrorf(err, internal.ErrorCodeInternal, "Failed to send email to %s", to)
	}
	return nil
}
