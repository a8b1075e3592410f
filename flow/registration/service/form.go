package service

import (
	"github.com/gallerykit/portal/ui/form"
	"github.com/gallerykit/portal/ui/node"
)

func generateForm(action string, csrfToken string) form.Form {
	return form.Form{
		Action: action,
		Method: form.POST,
		Nodes: node.Nodes{
			{
				Type:  node.Input,
				Group: node.Default,
				Attributes: &node.InputAttribute{
					Required: true,
					Type:     "hidden",
					Value:    csrfToken,
					Name:     "csrf_token",
				},
			},
			{
				Type:  node.Input,
				Group: node.Password,
				Attributes: &node.InputAttribute{
					Required: true,
					Type:     "text",
					Label:    "Username",
					Name:     "username",
				},
			},
			{
				Type:  node.Input,
				Group: node.Password,
				Attributes: &node.InputAttribute{
					Required: true,
					Type:     "email",
					Name:     "email",
					Label:    "Email Address",
				},
			},
			{
				Type:  node.Input,
				Group: node.Password,
				Attributes: &node.InputAttribute{
					Required: true,
					Type:     "password",
					Name:     "password",
					Label:    "Password",
				},
			},
		},
	}
}
