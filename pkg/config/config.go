package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App          AppConfig
	DB           DBConfig
	Redis        RedisConfig
	JWT          JWTConfig
	Password     PasswordConfig
	Orders       OrdersConfig
	FeatureFlags FeatureFlagsConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.DB.ensureDSN(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"MOTORHAUS_APP_ENV" required:"true"`
	Port         string `envconfig:"MOTORHAUS_APP_PORT" required:"true"`
	LogLevel     string `envconfig:"MOTORHAUS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"MOTORHAUS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type DBConfig struct {
	DSN    string `envconfig:"MOTORHAUS_DB_DSN"`
	Driver string `envconfig:"MOTORHAUS_DB_DRIVER" default:"postgres"`

	LegacyHost     string `envconfig:"MOTORHAUS_DB_HOST"`
	LegacyPort     int    `envconfig:"MOTORHAUS_DB_PORT" default:"5432"`
	LegacyUser     string `envconfig:"MOTORHAUS_DB_USER"`
	LegacyPassword string `envconfig:"MOTORHAUS_DB_PASSWORD"`
	LegacyName     string `envconfig:"MOTORHAUS_DB_NAME"`
	LegacySSLMode  string `envconfig:"MOTORHAUS_DB_SSLMODE" default:"disable"`

	MaxOpenConns    int           `envconfig:"MOTORHAUS_DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"MOTORHAUS_DB_MAX_IDLE_CONNS" default:"10"`
	ConnMaxLifetime time.Duration `envconfig:"MOTORHAUS_DB_CONN_MAX_LIFETIME" default:"1h"`
	ConnMaxIdleTime time.Duration `envconfig:"MOTORHAUS_DB_CONN_MAX_IDLE_TIME" default:"10m"`
}

type RedisConfig struct {
	URL          string        `envconfig:"MOTORHAUS_REDIS_URL" required:"true"`
	Address      string        `envconfig:"MOTORHAUS_REDIS_ADDR"`
	Password     string        `envconfig:"MOTORHAUS_REDIS_PASSWORD"`
	DB           int           `envconfig:"MOTORHAUS_REDIS_DB" default:"0"`
	PoolSize     int           `envconfig:"MOTORHAUS_REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `envconfig:"MOTORHAUS_REDIS_MIN_IDLE_CONNS" default:"2"`
	DialTimeout  time.Duration `envconfig:"MOTORHAUS_REDIS_DIAL_TIMEOUT" default:"5s"`
	ReadTimeout  time.Duration `envconfig:"MOTORHAUS_REDIS_READ_TIMEOUT" default:"5s"`
	WriteTimeout time.Duration `envconfig:"MOTORHAUS_REDIS_WRITE_TIMEOUT" default:"5s"`
}

type JWTConfig struct {
	Secret            string `envconfig:"MOTORHAUS_JWT_SECRET" required:"true"`
	Issuer            string `envconfig:"MOTORHAUS_JWT_ISSUER" required:"true"`
	ExpirationMinutes int    `envconfig:"MOTORHAUS_JWT_EXPIRATION_MINUTES" required:"true"`
}

type PasswordConfig struct {
	ArgonMemoryKB    int `envconfig:"MOTORHAUS_ARGON_MEMORY_KB" default:"65536"`
	ArgonTime        int `envconfig:"MOTORHAUS_ARGON_TIME" default:"3"`
	ArgonParallelism int `envconfig:"MOTORHAUS_ARGON_PARALLELISM" default:"2"`
	ArgonSaltLen     int `envconfig:"MOTORHAUS_ARGON_SALT_LEN" default:"16"`
	ArgonKeyLen      int `envconfig:"MOTORHAUS_ARGON_KEY_LEN" default:"32"`
}

type OrdersConfig struct {
	// IdempotencyTTL bounds how long a checkout response is replayed for a
	// reused Idempotency-Key.
	IdempotencyTTL time.Duration `envconfig:"MOTORHAUS_ORDERS_IDEMPOTENCY_TTL" default:"168h"`
}

type FeatureFlagsConfig struct {
	AutoMigrate bool `envconfig:"MOTORHAUS_AUTO_MIGRATE" default:"false"`
}

func (db *DBConfig) ensureDSN() error {
	if db.DSN != "" {
		return nil
	}

	missing := []string{}
	legacyValues := map[string]string{
		EnvDBHost: db.LegacyHost,
		EnvDBUser: db.LegacyUser,
		EnvDBName: db.LegacyName,
	}
	for _, env := range legacyDBEnvVars {
		if legacyValues[env] == "" {
			missing = append(missing, env)
		}
	}

	if len(missing) > 0 {
		return fmt.Errorf("either %s or %s are required", EnvDBDSN, strings.Join(missing, ", "))
	}

	userInfo := url.User(db.LegacyUser)
	if db.LegacyPassword != "" {
		userInfo = url.UserPassword(db.LegacyUser, db.LegacyPassword)
	}

	u := &url.URL{
		Scheme: "postgres",
		User:   userInfo,
		Host:   fmt.Sprintf("%s:%d", db.LegacyHost, db.LegacyPort),
		Path:   db.LegacyName,
	}

	if db.LegacySSLMode != "" {
		q := u.Query()
		q.Set("sslmode", db.LegacySSLMode)
		u.RawQuery = q.Encode()
	}

	db.DSN = u.String()
	return nil
}
