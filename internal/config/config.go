package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel int      `env:"LOG_LEVEL" envDefault:"0"`
	HTTP     HTTP     `envPrefix:"HTTP_"`
	Database Database `envPrefix:"DB_"`
	JWT      JWT      `envPrefix:"JWT_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port               string `env:"PORT" envDefault:"3000"`
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
}

// Database contains document store connection parameters. The
// connection string is assembled from the credentials and cluster host.
type Database struct {
	User     string `env:"USER" envDefault:"userauth"`
	Password string `env:"PASS" envDefault:"userauth"`
	Host     string `env:"HOST" envDefault:"localhost:27017"`
	Name     string `env:"NAME" envDefault:"userauth"`
	Scheme   string `env:"SCHEME" envDefault:"mongodb"`
}

// URI builds the MongoDB connection string. Remote clusters use the
// mongodb+srv scheme via DB_SCHEME.
func (d Database) URI() string {
	return fmt.Sprintf("%s://%s:%s@%s/?retryWrites=true&w=majority", d.Scheme, d.User, d.Password, d.Host)
}

// JWT contains JWT-related parameters.
type JWT struct {
	Secret string `env:"SECRET" envDefault:"devsecret"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
