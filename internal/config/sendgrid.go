package config

type SendGrid struct {
	APIKey      string `validate:"required"`
	SenderName  string `validate:"required"`
	SenderEmail string `validate:"required,email"`

	WelcomeTemplateID           string `validate:"required"`
	CredentialAddedTemplateID   string `validate:"required"`
	CredentialChangedTemplateID string `validate:"required"`
	MembershipRequestTemplateID string `validate:"required"`
}
