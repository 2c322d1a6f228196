package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mitchellh/mapstructure"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	App        App        `mapstructure:",squash"`
	Server     Server     `mapstructure:",squash"`
	IMDb       IMDb       `mapstructure:",squash"`
	DailyBuild DailyBuild `mapstructure:",squash"`
	Trending   Trending   `mapstructure:",squash"`
}

type App struct {
	LogLevel string `mapstructure:"log_level"`
}

type Server struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
}

type IMDb struct {
	BaseURL string `mapstructure:"imdb_base_url"`
}

type DailyBuild struct {
	OutRoot           string `mapstructure:"out_root"`
	CronSchedule      string `mapstructure:"daily_build_cron"`
	Enabled           bool   `mapstructure:"daily_build_enabled"`
	MinVotes          int    `mapstructure:"min_votes"`
	DatabaseFilename  string `mapstructure:"database_filename"`
	DownloadOverwrite bool   `mapstructure:"download_overwrite"`
}

type Trending struct {
	TopN                  int `mapstructure:"top_n"`
	MinOldVotesForPercent int `mapstructure:"min_old_votes_for_percent"`
	NewTitleMinVotes      int `mapstructure:"new_title_min_votes"`
}

func SetDefaults() {
	viper.SetDefault("HOST", "localhost")
	viper.SetDefault("PORT", 8000)

	viper.SetDefault("IMDB_BASE_URL", "https://datasets.imdbws.com")

	// Defaults do pipeline diário
	viper.SetDefault("OUT_ROOT", "./data")
	viper.SetDefault("DAILY_BUILD_CRON", "0 2 * * *") // Todos os dias às 2h da manhã
	viper.SetDefault("DAILY_BUILD_ENABLED", false)
	viper.SetDefault("MIN_VOTES", 0) // 0 = sem catálogo filtrado
	viper.SetDefault("DATABASE_FILENAME", "media_catalog.db")
	viper.SetDefault("DOWNLOAD_OVERWRITE", false)

	// Defaults dos leaderboards (mesmos do script original de comparação)
	viper.SetDefault("TOP_N", 50)
	viper.SetDefault("MIN_OLD_VOTES_FOR_PERCENT", 1000)
	viper.SetDefault("NEW_TITLE_MIN_VOTES", 0)

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

	// Parâmetros de trending nunca descem abaixo do mínimo legal
	if config.Trending.TopN < 1 {
		config.Trending.TopN = 1
	}
	if config.Trending.MinOldVotesForPercent < 0 {
		config.Trending.MinOldVotesForPercent = 0
	}
	if config.Trending.NewTitleMinVotes < 0 {
		config.Trending.NewTitleMinVotes = 0
	}

	return config, nil
}

// Função auxiliar para carregar o arquivo .env usando godotenv
func loadEnvFile() {
	// Obter diretório atual
	cwd, err := os.Getwd()
	if err != nil {
		logrus.Warn("Não foi possível obter o diretório atual:", err)
		return
	}

	// Tentar várias localizações possíveis para o arquivo .env
	locations := []string{
		filepath.Join(cwd, ".env"),               // Diretório atual
		filepath.Join(filepath.Dir(cwd), ".env"), // Diretório pai
		filepath.Join(cwd, "../.env"),            // Diretório acima
		filepath.Join(cwd, "../../.env"),         // Dois diretórios acima
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
