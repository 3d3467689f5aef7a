package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	keyPort         = "port"
	keyReadTimeout  = "read_timeout"
	keyWriteTimeout = "write_timeout"
	keyLogLevel     = "log_level"
	keyLogFormat    = "log_format"
	keyAppName      = "app_name"
	keyServer       = "server"

	envPrefix = "SHELTER"
	envConfig = envPrefix + "_CONFIG"
)

// Config agrupa lo que necesitan cmd/api y cmd/shelter.
type Config struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	LogLevel  string
	LogFormat string
	AppName   string

	// Server es la URL base de la API; vacío = modo in-process.
	Server string
}

// Addr devuelve ":<port>" para http.Server.
func (c Config) Addr() string {
	return ":" + strings.TrimPrefix(strings.TrimSpace(c.Port), ":")
}

// Load lee defaults, luego el archivo de config, luego env.
// El archivo es path o, si viene vacío, SHELTER_CONFIG. Si se pidió un archivo
// y no existe, es error.
// Env acepta tanto las variables históricas (PORT, LOG_LEVEL, ...) como SHELTER_*.
func Load(path string) (Config, error) {
	v := viper.New()

	if strings.TrimSpace(path) == "" {
		path = os.Getenv(envConfig)
	}

	v.SetDefault(keyPort, "8080")
	v.SetDefault(keyReadTimeout, 5*time.Second)
	v.SetDefault(keyWriteTimeout, 10*time.Second)
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyLogFormat, "text")
	v.SetDefault(keyAppName, "animal-shelter")
	v.SetDefault(keyServer, "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Aliases sin prefijo (compatibles con el despliegue anterior).
	binds := map[string][]string{
		keyPort:      {"SHELTER_PORT", "PORT"},
		keyLogLevel:  {"SHELTER_LOG_LEVEL", "LOG_LEVEL"},
		keyLogFormat: {"SHELTER_LOG_FORMAT", "LOG_FORMAT"},
		keyAppName:   {"SHELTER_APP_NAME", "APP_NAME"},
		keyServer:    {"SHELTER_SERVER"},
	}
	for key, envs := range binds {
		args := append([]string{key}, envs...)
		if err := v.BindEnv(args...); err != nil {
			return Config{}, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		Port:         v.GetString(keyPort),
		ReadTimeout:  v.GetDuration(keyReadTimeout),
		WriteTimeout: v.GetDuration(keyWriteTimeout),
		LogLevel:     v.GetString(keyLogLevel),
		LogFormat:    v.GetString(keyLogFormat),
		AppName:      v.GetString(keyAppName),
		Server:       strings.TrimRight(strings.TrimSpace(v.GetString(keyServer)), "/"),
	}

	if strings.TrimSpace(cfg.Port) == "" {
		return Config{}, errors.New("config: port required")
	}
	if cfg.ReadTimeout <= 0 || cfg.WriteTimeout <= 0 {
		return Config{}, errors.New("config: timeouts must be positive")
	}

	return cfg, nil
}
