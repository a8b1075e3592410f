package email

import (
	"github.com/gallerykit/portal/user/account"
)

// SendMembershipRequest asks an organization admin to confirm a pending
// membership request
func (c *client) SendMembershipRequest(to string, org account.Account, requester account.Account, confirmURL string) error {
	return c.send(c.cfg.MembershipRequestTemplateID, to, &Personalization{
		To: []*Email{
			{
				Email: to,
			},
		},
		DynamicTemplateData: map[string]interface{}{
			"ApplicationName": c.appName,
			"Organization":    org.Username,
			"Requester":       requester.Username,
			"ConfirmURL":      confirmURL,
		},
	})
}
