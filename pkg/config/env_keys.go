package config

// EnvPrefix namespaces every environment variable read by envconfig.
const EnvPrefix = "MOTORHAUS"

const (
	AppEnvDev  = "development"
	AppEnvProd = "production"
)

const (
	EnvDBDSN  = "MOTORHAUS_DB_DSN"
	EnvDBHost = "MOTORHAUS_DB_HOST"
	EnvDBUser = "MOTORHAUS_DB_USER"
	EnvDBName = "MOTORHAUS_DB_NAME"
)

// legacyDBEnvVars are the discrete connection vars accepted when a full DSN is
// not provided.
var legacyDBEnvVars = []string{EnvDBHost, EnvDBUser, EnvDBName}
