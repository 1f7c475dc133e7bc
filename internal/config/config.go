package config

import "time"

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL"`
	DatabaseURL string `env:"DATABASE_URL"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"finance.db"`

	Redis Redis `envPrefix:"REDIS_"`
	JWT   JWT   `envPrefix:"JWT_"`
	Kafka Kafka `envPrefix:"KAFKA_"`
	SMS   SMS   `envPrefix:"SMS_"`
	OTP   OTP   `envPrefix:"OTP_"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

type Redis struct {
	Addr     string `env:"ADDR" envDefault:"localhost:6379"`
	Password string `env:"PASSWORD"`
	DB       int    `env:"DB" envDefault:"0"`
}

type JWT struct {
	Secret     string        `env:"SECRET" envDefault:"dev-secret-change-me"`
	AccessTTL  time.Duration `env:"ACCESS_TTL" envDefault:"1h"`
	RefreshTTL time.Duration `env:"REFRESH_TTL" envDefault:"720h"`
	Issuer     string        `env:"ISSUER" envDefault:"yuancity"`
}

type Kafka struct {
	Brokers []string `env:"BROKERS" envDefault:"localhost:9092"`
	Topic   string   `env:"TOPIC" envDefault:"push-notifications"`
}

type SMS struct {
	BaseApiURL string `env:"BASE_API_URL"`
	AccountSID string `env:"ACCOUNT_SID"`
	AuthToken  string `env:"AUTH_TOKEN"`
	FromNumber string `env:"FROM_NUMBER"`
}

type OTP struct {
	TTL    time.Duration `env:"TTL" envDefault:"10m"`
	Length int           `env:"LENGTH" envDefault:"8"`
}
