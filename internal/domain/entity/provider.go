package entity

// AuthProvider identifies how an account authenticates. It is set once at
// creation and never changes afterwards.
type AuthProvider string

const (
	// AuthProviderLocal is an email/password account.
	AuthProviderLocal AuthProvider = "local"
	// AuthProviderGoogle is an account created through Google Sign-In.
	AuthProviderGoogle AuthProvider = "google"
	// AuthProviderSpotify is an account created through Spotify OAuth.
	AuthProviderSpotify AuthProvider = "spotify"
)

// Placeholder names assigned when a federated profile carries no usable
// name. Reconciliation treats them as "not customized by the user" and may
// replace them with real provider data on a later login.
const (
	DefaultGivenName  = "Usuario"
	DefaultFamilyName = "Desconocido"
)

// IsValid reports whether p is one of the known providers.
func (p AuthProvider) IsValid() bool {
	switch p {
	case AuthProviderLocal, AuthProviderGoogle, AuthProviderSpotify:
		return true
	}

	return false
}
