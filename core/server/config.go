package server

// Config holds configuration for the HTTP server.
type Config struct {
	// Host is the interface the server binds to.
	Host string `mapstructure:"host" default:"127.0.0.1"`
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"8080"`
	// ApiKey is the secret key required to access the API.
	// An empty key disables authentication, which is only allowed on loopback hosts.
	ApiKey string `mapstructure:"api_key" default:""`
}

// Addr returns the listen address.
func (c Config) Addr() string {
	return c.Host + ":" + c.Port
}

// IsLoopback reports whether the server binds to a local-only interface.
func (c Config) IsLoopback() bool {
	switch c.Host {
	case "127.0.0.1", "localhost", "::1":
		return true
	default:
		return false
	}
}

// Validate rejects an unauthenticated server exposed beyond loopback, since the
// API can reveal account data.
func (c Config) Validate() error {
	if c.ApiKey == "" && !c.IsLoopback() {
		return ErrAPIKeyRequired
	}
	return nil
}
