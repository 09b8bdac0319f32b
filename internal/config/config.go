// Package config loads the service configuration from a yaml file and lets
// the usual DATABASE_* environment variables override the database section,
// so containerized deployments need no config file edits.
package config

import (
	"os"
	"time"

	"github.com/go-yaml/yaml"
)

type Config struct {
	Database Database `yaml:"database"`
	Server   Server   `yaml:"server"`
	Fixtures Fixtures `yaml:"fixtures"`
}

type Database struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	DBName   string `yaml:"dbname"`
	Hostname string `yaml:"hostname"`
	Port     string `yaml:"port"`

	MaxOpenConns    int           `yaml:"maxOpenConns"`
	MaxIdleConns    int           `yaml:"maxIdleConns"`
	ConnMaxLifetime time.Duration `yaml:"connMaxLifetime"`
}

type Server struct {
	Listen        string `yaml:"listen"`
	EnableTrace   bool   `yaml:"enableTrace"`
	TraceEndpoint string `yaml:"traceEndpoint"`
}

type Fixtures struct {
	// Extra fixture roots searched after the built-in default.
	Roots []string `yaml:"roots"`
}

// Load reads path if it exists, fills in defaults, and applies environment
// overrides. A missing file is not an error; the defaults alone describe a
// local postgres.
func Load(path string) (Config, error) {
	config := Config{
		Database: Database{
			Username: "postgres",
			Password: "postgres",
			DBName:   "postgres",
			Hostname: "localhost",
			Port:     "5432",
		},
		Server: Server{
			Listen: ":8000",
		},
	}

	file, err := os.Open(path)
	if err == nil {
		defer file.Close()
		if err := yaml.NewDecoder(file).Decode(&config); err != nil {
			return Config{}, err
		}
	} else if !os.IsNotExist(err) {
		return Config{}, err
	}

	applyEnv(&config.Database.Username, "DATABASE_USERNAME")
	applyEnv(&config.Database.Password, "DATABASE_PASSWORD")
	applyEnv(&config.Database.DBName, "DATABASE_DB_NAME")
	applyEnv(&config.Database.Hostname, "DATABASE_HOSTNAME")
	applyEnv(&config.Database.Port, "DATABASE_PORT")

	return config, nil
}

func applyEnv(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}
