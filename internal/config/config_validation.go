package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// An unset or invalid database DSN is deliberately not an error: the
// application degrades to its static fallback dataset. The insecure default
// sign key is likewise accepted here and reported loudly at startup instead
// (see [Auth.UsesFallbackSignKey]).
func (cfg *StructuredConfig) validate() error {
	if cfg.Auth.AdminUsername == "" || cfg.Auth.AdminPassword == "" || cfg.Auth.TokenDuration <= 0 {
		return ErrInvalidAuthConfigs
	}

	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	return nil
}
