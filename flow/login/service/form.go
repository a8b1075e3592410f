package service

import (
	"github.com/gallerykit/portal/ui/form"
	"github.com/gallerykit/portal/ui/node"
)

func generateForm(action string, csrfToken string, providers []string, challenges map[string]string) form.Form {
	nodes := node.Nodes{
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
				Name:     "identifier",
				Label:    "Email or username",
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
	}
	// Surface a sign-in button per registry provider flagged for the
	// login form
	for _, name := range providers {
		nodes = append(nodes, &node.Node{
			Type:  node.Link,
			Group: node.External,
			Attributes: &node.LinkAttribute{
				Name:  name,
				Label: "Sign in with " + name,
				Value: challenges[name],
			},
		})
	}
	return form.Form{
		Action: action,
		Method: form.POST,
		Nodes:  nodes,
	}
}
