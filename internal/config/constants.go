package config

// DefaultMissionCatalogPath is where the mission catalog lives relative to the working directory
const DefaultMissionCatalogPath = "configs/missions/catalog.json"

// Example values shipped in .env.example. Running with them only produces a warning.
const (
	ExampleDBPassword = "change_this_secure_password"
	ExampleAPIKey     = "generate_with_openssl_rand_hex_32"
)

// Error messages
const (
	ErrMsgParseEnv       = "failed to parse environment"
	ErrMsgAPIKeyRequired = "API_KEY environment variable must be set for security"
	ErrMsgInvalidConfig  = "invalid configuration"
)

// Warning messages
const (
	WarnMsgExampleDBPassword = "DB_PASSWORD appears to be using the example value - please use a secure password"
	WarnMsgExampleAPIKey     = "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32"
	WarnMsgDevModeInProd     = "DEV_MODE bypasses mission cooldowns and should not be enabled in production"
)
