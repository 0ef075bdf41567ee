package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App            App            `mapstructure:",squash"`
	Server         Server         `mapstructure:",squash"`
	Database       Database       `mapstructure:",squash"`
	Store          Store          `mapstructure:",squash"`
	Narrative      Narrative      `mapstructure:",squash"`
	Deck           Deck           `mapstructure:",squash"`
	Metrics        Metrics        `mapstructure:",squash"`
	ArchiveCleanup ArchiveCleanup `mapstructure:",squash"`
	Auth           Auth           `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type Database struct {
	DSN      string `mapstructure:"-"`
	Driver   string `mapstructure:"database_driver"`
	Password string `mapstructure:"database_password"`
	URL      string `mapstructure:"database_url"`
	User     string `mapstructure:"database_user"`
}

// Store contém a identidade da loja exibida no overview e embutida no prompt do deck
type Store struct {
	Name          string `mapstructure:"store_name"`
	URL           string `mapstructure:"store_url"`
	Established   string `mapstructure:"store_established"`
	BusinessModel string `mapstructure:"store_business_model"`
}

// Narrative contém a configuração do serviço externo de geração de texto
type Narrative struct {
	BaseURL        string `mapstructure:"narrative_base_url"`
	APIKey         string `mapstructure:"narrative_api_key"`
	Model          string `mapstructure:"narrative_model"`
	Version        string `mapstructure:"narrative_api_version"`
	MaxTokens      int    `mapstructure:"narrative_max_tokens"`
	TimeoutSeconds int    `mapstructure:"narrative_timeout_seconds"`
}

// Deck contém os diretórios de trabalho e publicação dos arquivos .pptx
type Deck struct {
	OutputDir     string `mapstructure:"deck_output_dir"`
	ScratchDir    string `mapstructure:"deck_scratch_dir"`
	PublicBaseURL string `mapstructure:"deck_public_base_url"`
}

// Metrics contém janelas padrão e estimativas que não são deriváveis do banco
type Metrics struct {
	DefaultWindowDays          int     `mapstructure:"metrics_default_window_days"`
	EstimatedCAC               string  `mapstructure:"metrics_estimated_cac"`
	MarketShareEstimatePercent float64 `mapstructure:"metrics_market_share_estimate_percent"`
	SatisfactionPercent        float64 `mapstructure:"metrics_satisfaction_percent"`
}

// ArchiveCleanup configura o job de retenção dos decks publicados
type ArchiveCleanup struct {
	CronSchedule  string `mapstructure:"archive_cleanup_cron"`
	RetentionDays int    `mapstructure:"archive_cleanup_retention_days"`
	Enabled       bool   `mapstructure:"archive_cleanup_enabled"`
}

type Auth struct {
	Secret string `mapstructure:"auth_secret"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("DATABASE_DRIVER", "postgres")
	viper.SetDefault("DATABASE_URL", "localhost:5432/store")
	viper.SetDefault("DATABASE_USER", "postgres")
	viper.SetDefault("DATABASE_PASSWORD", "root")

	viper.SetDefault("STORE_NAME", "Minha Loja")
	viper.SetDefault("STORE_URL", "https://localhost")
	viper.SetDefault("STORE_ESTABLISHED", "Not set")
	viper.SetDefault("STORE_BUSINESS_MODEL", "E-commerce")

	viper.SetDefault("NARRATIVE_BASE_URL", "https://api.anthropic.com")
	viper.SetDefault("NARRATIVE_API_KEY", "") // vazio desabilita a narrativa
	viper.SetDefault("NARRATIVE_MODEL", "claude-3-opus-20240229")
	viper.SetDefault("NARRATIVE_API_VERSION", "2023-06-01")
	viper.SetDefault("NARRATIVE_MAX_TOKENS", 1500)
	viper.SetDefault("NARRATIVE_TIMEOUT_SECONDS", 30)

	viper.SetDefault("DECK_OUTPUT_DIR", "./uploads")
	viper.SetDefault("DECK_SCRATCH_DIR", os.TempDir())
	viper.SetDefault("DECK_PUBLIC_BASE_URL", "http://localhost:8000/uploads")

	viper.SetDefault("METRICS_DEFAULT_WINDOW_DAYS", 30)
	viper.SetDefault("METRICS_ESTIMATED_CAC", "0.00")
	viper.SetDefault("METRICS_MARKET_SHARE_ESTIMATE_PERCENT", 0)
	viper.SetDefault("METRICS_SATISFACTION_PERCENT", 0)

	viper.SetDefault("ARCHIVE_CLEANUP_CRON", "0 5 * * *") // Todos os dias às 5h da manhã
	viper.SetDefault("ARCHIVE_CLEANUP_RETENTION_DAYS", 30)
	viper.SetDefault("ARCHIVE_CLEANUP_ENABLED", false)

	viper.SetDefault("AUTH_SECRET", "your_secret_key")

	viper.SetDefault("LOG_LEVEL", "debug")
}

func NewConfig() (*Config, error) {
	// Primeiro carregar o arquivo .env usando godotenv
	loadEnvFile() // ONLY LOCAL

	config := &Config{}

	// Configurar valores padrão
	SetDefaults()

	// Configurar o Viper
	viper.SetConfigType("env")
	viper.SetConfigFile(".env")
	viper.AutomaticEnv() // Isso permite que o Viper leia variáveis de ambiente

	// Tentar ler o arquivo .env com o Viper (opcional, já que usamos godotenv)
	if err := viper.ReadInConfig(); err != nil {
		logrus.Info("Usando variáveis carregadas pelo godotenv (viper não conseguiu ler .env):", err)
	} else {
		logrus.Info("Arquivo .env lido pelo Viper com sucesso")
	}

	err := viper.Unmarshal(&config, viper.DecodeHook(
		mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	))
	if err != nil {
		return nil, err
	}

	config.Database.DSN = fmt.Sprintf(
		"%s://%s:%s@%s",
		config.Database.Driver,
		config.Database.User,
		config.Database.Password,
		config.Database.URL,
	)

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(filepath.Dir(cwd), ".env"),
		filepath.Join(cwd, "../.env"),
		filepath.Join(cwd, "../../.env"),
	}

	for _, location := range locations {
		err := godotenv.Load(location)
		if err == nil {
			logrus.Info("Arquivo .env carregado com sucesso de:", location)
			return
		}
	}

	logrus.Warn("Não foi possível carregar o arquivo .env de nenhuma localização conhecida")
}
