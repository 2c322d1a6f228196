package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/media-trends-api/infrastructure/etl"
	"github.com/vfg2006/media-trends-api/infrastructure/imdb/imdbclient"
	"github.com/vfg2006/media-trends-api/infrastructure/repository"
	"github.com/vfg2006/media-trends-api/internal/api"
	"github.com/vfg2006/media-trends-api/internal/api/handler"
	"github.com/vfg2006/media-trends-api/internal/config"
	"github.com/vfg2006/media-trends-api/internal/scheduler"
	"github.com/vfg2006/media-trends-api/internal/usecases/diffing"
	"github.com/vfg2006/media-trends-api/internal/usecases/loading"
	"github.com/vfg2006/media-trends-api/internal/usecases/reporting"
	"github.com/vfg2006/media-trends-api/internal/usecases/trending"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Serviços do núcleo de comparação
	loader := loading.NewService()
	differ := diffing.NewService()
	trendsBuilder := trending.NewService()
	renderer := reporting.NewService()

	// Colaboradores do pipeline diário
	imdbClient := imdbclient.NewClient(cfg)
	etlBuilder := etl.NewService()
	catalogStore := repository.NewCatalogStore()

	dailyBuildService := scheduler.NewDailyBuildService(
		imdbClient,
		etlBuilder,
		catalogStore,
		loader,
		differ,
		trendsBuilder,
		renderer,
		cfg,
	)

	if err := dailyBuildService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador do pipeline diário")
	} else {
		logrus.Info("Agendador do pipeline diário iniciado com sucesso")
	}

	trendsServices := handler.TrendsServices{
		Loader:   loader,
		Differ:   differ,
		Trends:   trendsBuilder,
		Renderer: renderer,
		Config:   cfg,
	}

	server, err := api.New(cfg, trendsServices, dailyBuildService)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}
