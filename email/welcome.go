package email

import (
	"github.com/gallerykit/portal/user/account"
)

// SendWelcome sends a welcome email to a new account
func (c *client) SendWelcome(to string, acct account.Account) error {
	return c.send(c.cfg.WelcomeTemplateID, to, &Personalization{
		To: []*Email{
			{
				Email: to,
				Name:  acct.Username,
			},
		},
		DynamicTemplateData: map[string]interface{}{
			"ApplicationName": c.appName,
			"Username":        acct.Username,
		},
	})
}
