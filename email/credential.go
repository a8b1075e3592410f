package email

import (
	"github.com/gallerykit/portal/pkg/emailaddr"
	"github.com/gallerykit/portal/user/account"
)

// SendCredentialAdded notifies an account that an external credential
// was linked to it. The account email is masked in the template so the
// notification itself cannot leak the full address.
func (c *client) SendCredentialAdded(to string, acct account.Account, provider string) error {
	return c.send(c.cfg.CredentialAddedTemplateID, to, c.credentialPersonalization(to, acct, provider))
}

// SendCredentialChanged notifies an account that its external credential
// was swapped for a different one
func (c *client) SendCredentialChanged(to string, acct account.Account, provider string) error {
	return c.send(c.cfg.CredentialChangedTemplateID, to, c.credentialPersonalization(to, acct, provider))
}

func (c *client) credentialPersonalization(to string, acct account.Account, provider string) *Personalization {
	masked := acct.Email
	if m, err := emailaddr.Mask(acct.Email); err == nil {
		masked = m
	}
	return &Personalization{
		To: []*Email{
			{
				Email: to,
				Name:  acct.Username,
			},
		},
		DynamicTemplateData: map[string]interface{}{
			"ApplicationName": c.appName,
			"Username":        acct.Username,
			"MaskedEmail":     masked,
			"Provider":        provider,
		},
	}
}
