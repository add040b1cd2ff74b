package config

import "time"

// Config is the root application configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Auth     AuthConfig     `yaml:"auth"`
	Registry RegistryConfig `yaml:"registry"`
	Archive  ArchiveConfig  `yaml:"archive"`
	Log      LogConfig      `yaml:"log"`
	Tracing  TracingConfig  `yaml:"tracing"`
	CORS     CORSConfig     `yaml:"cors"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PATCH,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type"`
	ExposedHeaders   string `yaml:"exposed_headers"   env:"CORS_EXPOSED_HEADERS"   env-default:"X-Request-Id,Content-Disposition"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"false"`
}

// AuthConfig holds password and JWT settings.
// Required makes every mutating route demand a bearer token.
type AuthConfig struct {
	JWTSecret        string        `yaml:"jwt_secret"         env:"AUTH_JWT_SECRET"         env-required:"true"`
	JWTIssuer        string        `yaml:"jwt_issuer"         env:"AUTH_JWT_ISSUER"         env-default:"inspection-registry"`
	AccessTokenTTL   time.Duration `yaml:"access_token_ttl"   env:"AUTH_ACCESS_TOKEN_TTL"   env-default:"1h"`
	PasswordHashCost int           `yaml:"password_hash_cost" env:"AUTH_PASSWORD_HASH_COST" env-default:"12"`
	Required         bool          `yaml:"required"           env:"AUTH_REQUIRED"           env-default:"true"`
}

// RegistryConfig holds domain limits.
type RegistryConfig struct {
	MaxBatchSize int    `yaml:"max_batch_size" env:"REGISTRY_MAX_BATCH_SIZE" env-default:"500"`
	Timezone     string `yaml:"timezone"       env:"REGISTRY_TIMEZONE"       env-default:"Europe/Sarajevo"`
}

// ArchiveConfig selects where inspection reports are archived.
// Driver is one of: none, fs, s3.
type ArchiveConfig struct {
	Driver        string `yaml:"driver"           env:"ARCHIVE_DRIVER"           env-default:"none"`
	Dir           string `yaml:"dir"              env:"ARCHIVE_DIR"              env-default:"./reports"`
	S3Bucket      string `yaml:"s3_bucket"        env:"ARCHIVE_S3_BUCKET"`
	S3Region      string `yaml:"s3_region"        env:"ARCHIVE_S3_REGION"        env-default:"eu-central-1"`
	S3Endpoint    string `yaml:"s3_endpoint"      env:"ARCHIVE_S3_ENDPOINT"`
	S3PathStyle   bool   `yaml:"s3_path_style"    env:"ARCHIVE_S3_PATH_STYLE"    env-default:"false"`
	S3AccessKeyID string `yaml:"s3_access_key_id" env:"ARCHIVE_S3_ACCESS_KEY_ID"`
	S3SecretKey   string `yaml:"s3_secret_key"    env:"ARCHIVE_S3_SECRET_KEY"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// TracingConfig holds OpenTelemetry settings.
type TracingConfig struct {
	Enabled     bool    `yaml:"enabled"      env:"TRACING_ENABLED"      env-default:"false"`
	ServiceName string  `yaml:"service_name" env:"TRACING_SERVICE_NAME" env-default:"inspection-registry"`
	SampleRate  float64 `yaml:"sample_rate"  env:"TRACING_SAMPLE_RATE"  env-default:"1.0"`
}
