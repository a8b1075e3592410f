package config

// Provider configures a single external identity provider. Providers are
// declared statically here and loaded into an explicit registry at process
// start. There is no runtime discovery.
type Provider struct {
	// Name of the provider. Doubles as the registry key and the value
	// persisted on external credentials.
	Name string `validate:"required"`
	// Enabled providers may complete sign-in and linking.
	Enabled bool
	// ShowOnLogin surfaces the provider button on the sign-in form.
	ShowOnLogin bool

	// OIDC handshake settings
	//

	IssuerURL    string `validate:"required,url"`
	ClientID     string `validate:"required"`
	ClientSecret string `validate:"required"`
	RedirectURL  string `validate:"required,url"`
	Scopes       []string
}

type Providers struct {
	// Entries lists every configured provider.
	Entries []Provider
	// EnforcedPolicy is a semicolon delimited list of credential types
	// that administrators must sign in with. Empty disables the check.
	// Consulted only when the authenticating account is an
	// administrator; sign-in with a credential type outside the list
	// re-challenges with the first listed provider.
	//
	// Example: "AAD;MSA"
	EnforcedPolicy string
}
