package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App           App           `mapstructure:",squash"`
	Server        Server        `mapstructure:",squash"`
	Database      Database      `mapstructure:",squash"`
	Everflow      Everflow      `mapstructure:",squash"`
	Report        Report        `mapstructure:",squash"`
	ReportRefresh ReportRefresh `mapstructure:",squash"`
	Cors          Cors          `mapstructure:",squash"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	Enabled  bool   `mapstructure:"database_enabled"`
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`

	MaxOpenConns    int           `mapstructure:"database_max_open_conns"`
	ConnMaxLifetime time.Duration `mapstructure:"database_conn_max_lifetime"`
}

type Everflow struct {
	BaseURL         string        `mapstructure:"everflow_base_url"`
	APIKey          string        `mapstructure:"everflow_api_key"`
	CurrencyID      string        `mapstructure:"everflow_currency_id"`
	DefaultPlatform string        `mapstructure:"everflow_default_platform"`
	Timeout         time.Duration `mapstructure:"everflow_timeout"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

// Report controla a geração das linhas sintéticas
type Report struct {
	// RandomSeed fixa a semente do gerador. Zero usa o relógio.
	RandomSeed int64 `mapstructure:"report_random_seed"`
	Padding    bool  `mapstructure:"report_padding"`
}

type ReportRefresh struct {
	CronSchedule string `mapstructure:"report_refresh_cron"`
	Enabled      bool   `mapstructure:"report_refresh_enabled"`
}

type Cors struct {
	AllowedOrigins []string `mapstructure:"cors_allowed_origins"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_ENABLED", false)
	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/everflow_reporting")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "")
	viper.SetDefault("DATABASE_MAX_OPEN_CONNS", 5)
	viper.SetDefault("DATABASE_CONN_MAX_LIFETIME", "30m")

	viper.SetDefault("EVERFLOW_BASE_URL", "https://api.eflow.team")
	viper.SetDefault("EVERFLOW_API_KEY", "")
	viper.SetDefault("EVERFLOW_CURRENCY_ID", "USD")
	viper.SetDefault("EVERFLOW_DEFAULT_PLATFORM", "IPad")
	viper.SetDefault("EVERFLOW_TIMEOUT", "30s")

	viper.SetDefault("REPORT_RANDOM_SEED", 0)
	viper.SetDefault("REPORT_PADDING", false)

	viper.SetDefault("REPORT_REFRESH_CRON", "0 * * * *") // A cada hora
	viper.SetDefault("REPORT_REFRESH_ENABLED", false)

	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")

	viper.SetDefault("LOG_LEVEL", "debug")
}

// NewConfig carrega o arquivo de ambiente (ENV_FILE, padrão .env) e as variáveis do processo.
// Variáveis já definidas no processo têm precedência sobre o arquivo.
func NewConfig() (*Config, error) {
	loadEnvFile(envFilePath())

	SetDefaults()
	viper.AutomaticEnv()

	config := &Config{}
	err := viper.Unmarshal(config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, fmt.Errorf("erro ao decodificar configuração: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	if config.Everflow.APIKey == "" {
		logrus.Warn("EVERFLOW_API_KEY não configurada, as consultas ao Everflow serão rejeitadas")
	}

	config.Database.DSN = config.Database.dsn()

	return config, nil
}

func (c *Config) validate() error {
	if c.Everflow.Timeout <= 0 {
		return fmt.Errorf("EVERFLOW_TIMEOUT deve ser positivo, recebido %s", c.Everflow.Timeout)
	}
	if c.Database.Enabled && c.Database.URL == "" {
		return errors.New("DATABASE_URL é obrigatória com DATABASE_ENABLED=true")
	}
	return nil
}

// dsn monta a conexão escapando usuário e senha
func (d Database) dsn() string {
	return fmt.Sprintf("%s://%s@%s", d.Driver, url.UserPassword(d.User, d.Password).String(), d.URL)
}

func envFilePath() string {
	if path := os.Getenv("ENV_FILE"); path != "" {
		return path
	}
	return ".env"
}

func loadEnvFile(path string) {
	if _, err := os.Stat(path); err != nil {
		logrus.Debugf("Arquivo de ambiente %s não encontrado, usando apenas variáveis do processo", path)
		return
	}

	if err := godotenv.Load(path); err != nil {
		logrus.WithError(err).Warnf("Não foi possível carregar %s", path)
		return
	}

	logrus.Infof("Arquivo de ambiente carregado de %s", path)
}
