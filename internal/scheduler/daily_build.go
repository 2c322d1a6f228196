// Package scheduler contém os serviços de agendamento do pipeline diário
package scheduler

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/media-trends-api/infrastructure/catalogfile"
	"github.com/vfg2006/media-trends-api/infrastructure/etl"
	"github.com/vfg2006/media-trends-api/infrastructure/imdb/imdbclient"
	"github.com/vfg2006/media-trends-api/infrastructure/repository"
	"github.com/vfg2006/media-trends-api/internal/config"
	"github.com/vfg2006/media-trends-api/internal/domain"
	"github.com/vfg2006/media-trends-api/internal/usecases/diffing"
	"github.com/vfg2006/media-trends-api/internal/usecases/loading"
	"github.com/vfg2006/media-trends-api/internal/usecases/reporting"
	"github.com/vfg2006/media-trends-api/internal/usecases/trending"
)

type DailyBuildConfig struct {
	CronSchedule      string
	Enabled           bool
	OutRoot           string
	MinVotes          int
	DatabaseFilename  string
	DownloadOverwrite bool
}

// BuildStatus é o estado observável do pipeline, exposto pela API
type BuildStatus struct {
	Running         bool       `json:"running"`
	LastStartedAt   *time.Time `json:"last_started_at,omitempty"`
	LastCompletedAt *time.Time `json:"last_completed_at,omitempty"`
	LastBuildDir    string     `json:"last_build_dir,omitempty"`
	LastReportPath  string     `json:"last_report_path,omitempty"`
}

type DailyBuildService struct {
	scheduler *gocron.Scheduler
	config    DailyBuildConfig
	appConfig *config.Config

	imdbClient imdbclient.Client
	builder    etl.Builder
	store      repository.CatalogStorer
	loader     loading.Loader
	differ     diffing.Differ
	trends     trending.Builder
	renderer   reporting.Renderer

	buildRunning         bool
	buildMutex           sync.Mutex
	lastBuildStartedAt   time.Time
	lastBuildCompletedAt time.Time
	lastBuildDir         string
	lastReportPath       string
}

func NewDailyBuildService(
	imdbClient imdbclient.Client,
	builder etl.Builder,
	store repository.CatalogStorer,
	loader loading.Loader,
	differ diffing.Differ,
	trends trending.Builder,
	renderer reporting.Renderer,
	appConfig *config.Config,
) *DailyBuildService {
	buildConfig := DailyBuildConfig{
		CronSchedule:      appConfig.DailyBuild.CronSchedule,
		Enabled:           appConfig.DailyBuild.Enabled,
		OutRoot:           appConfig.DailyBuild.OutRoot,
		MinVotes:          appConfig.DailyBuild.MinVotes,
		DatabaseFilename:  appConfig.DailyBuild.DatabaseFilename,
		DownloadOverwrite: appConfig.DailyBuild.DownloadOverwrite,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": buildConfig.CronSchedule,
		"out_root":      buildConfig.OutRoot,
		"min_votes":     buildConfig.MinVotes,
		"enabled":       buildConfig.Enabled,
	}).Info("Configuração do agendador do pipeline diário carregada")

	return &DailyBuildService{
		scheduler:  scheduler,
		config:     buildConfig,
		appConfig:  appConfig,
		imdbClient: imdbClient,
		builder:    builder,
		store:      store,
		loader:     loader,
		differ:     differ,
		trends:     trends,
		renderer:   renderer,
	}
}

func (s *DailyBuildService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Cron do pipeline diário desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando cron do pipeline diário")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunDailyBuild(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na execução do pipeline diário")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar o pipeline diário: %w", err)
	}

	// Executar o cron em uma goroutine separada
	s.scheduler.StartAsync()

	// Configurar o cancelamento do cron quando o contexto for cancelado
	go func() {
		<-ctx.Done()
		logrus.Info("Parando cron do pipeline diário")
		s.scheduler.Stop()
	}()

	return nil
}

// TriggerManualSync dispara uma execução fora do horário agendado
func (s *DailyBuildService) TriggerManualSync() {
	go func() {
		if err := s.RunDailyBuild(context.Background()); err != nil {
			logrus.WithError(err).Error("Erro na execução manual do pipeline diário")
		}
	}()
}

// Status retorna uma fotografia do estado do pipeline
func (s *DailyBuildService) Status() BuildStatus {
	s.buildMutex.Lock()
	defer s.buildMutex.Unlock()

	status := BuildStatus{
		Running:        s.buildRunning,
		LastBuildDir:   s.lastBuildDir,
		LastReportPath: s.lastReportPath,
	}
	if !s.lastBuildStartedAt.IsZero() {
		started := s.lastBuildStartedAt
		status.LastStartedAt = &started
	}
	if !s.lastBuildCompletedAt.IsZero() {
		completed := s.lastBuildCompletedAt
		status.LastCompletedAt = &completed
	}
	return status
}

// RunDailyBuild executa o pipeline completo: download, catálogo, filtro,
// banco do snapshot e, havendo snapshot anterior, o relatório de tendências
func (s *DailyBuildService) RunDailyBuild(ctx context.Context) error {
	s.buildMutex.Lock()
	if s.buildRunning {
		s.buildMutex.Unlock()
		logrus.Warn("Pipeline diário já está em execução")
		return nil
	}
	s.buildRunning = true
	s.lastBuildStartedAt = time.Now()
	s.buildMutex.Unlock()

	defer func() {
		s.buildMutex.Lock()
		s.buildRunning = false
		s.lastBuildCompletedAt = time.Now()
		s.buildMutex.Unlock()
	}()

	logrus.Info("Iniciando execução do pipeline diário")

	dailyDir, err := makeDailyDir(s.config.OutRoot, time.Now().Format("2006-01-02"))
	if err != nil {
		return err
	}

	s.buildMutex.Lock()
	s.lastBuildDir = dailyDir
	s.buildMutex.Unlock()

	if err := s.imdbClient.DownloadDatasets(ctx, dailyDir, s.config.DownloadOverwrite); err != nil {
		return err
	}

	table, err := s.builder.BuildCatalog(dailyDir)
	if err != nil {
		return err
	}

	if err := catalogfile.Write(filepath.Join(dailyDir, etl.CatalogFilename), table); err != nil {
		return err
	}

	// Catálogo usado para o banco e para a comparação diária: o filtrado,
	// quando o filtro de votos mínimos está configurado
	csvName := etl.CatalogFilename
	if s.config.MinVotes > 0 {
		table = s.builder.FilterCatalog(table, s.config.MinVotes)
		csvName = fmt.Sprintf("media_catalog_%d.csv", s.config.MinVotes)
		if err := catalogfile.Write(filepath.Join(dailyDir, csvName), table); err != nil {
			return err
		}
	}

	label := filepath.Base(dailyDir)
	relation, err := s.loader.Load(table, label)
	if err != nil {
		return err
	}

	stored, err := s.store.StoreCatalog(ctx, filepath.Join(dailyDir, s.config.DatabaseFilename), relation.Entries)
	if err != nil {
		return err
	}

	logrus.WithFields(logrus.Fields{
		"pasta":    dailyDir,
		"entradas": stored,
	}).Info("Snapshot diário gravado no banco local")

	reportPath, err := s.compareWithPrevious(dailyDir, csvName, relation)
	if err != nil {
		return err
	}
	if reportPath != "" {
		s.buildMutex.Lock()
		s.lastReportPath = reportPath
		s.buildMutex.Unlock()
	}

	logrus.Info("Pipeline diário finalizado com sucesso")
	return nil
}

// compareWithPrevious procura o snapshot anterior mais recente e gera o
// relatório de tendências entre ele e o snapshot recém-construído
func (s *DailyBuildService) compareWithPrevious(dailyDir, csvName string, newRel *domain.CatalogRelation) (string, error) {
	prevDir, ok := previousSnapshotDir(s.config.OutRoot, dailyDir, csvName)
	if !ok {
		logrus.Info("Nenhum snapshot anterior encontrado, relatório de tendências não gerado")
		return "", nil
	}

	oldTable, err := catalogfile.Read(filepath.Join(prevDir, csvName))
	if err != nil {
		return "", err
	}

	oldRel, err := s.loader.Load(oldTable, filepath.Base(prevDir))
	if err != nil {
		return "", err
	}

	diff := s.differ.Diff(oldRel, newRel)

	params := domain.TrendingParams{
		TopN:                  s.appConfig.Trending.TopN,
		MinOldVotesForPercent: s.appConfig.Trending.MinOldVotesForPercent,
		NewTitleMinVotes:      s.appConfig.Trending.NewTitleMinVotes,
	}

	boards := s.trends.Build(diff, params)
	report := s.renderer.Render(diff, boards, time.Now())

	html, err := s.renderer.RenderHTML(report)
	if err != nil {
		return "", err
	}

	reportPath := filepath.Join(dailyDir, fmt.Sprintf("catalog_diff_%s_to_%s.html", diff.OldLabel, diff.NewLabel))
	if err := os.WriteFile(reportPath, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("erro ao gravar o relatório %s: %w", reportPath, err)
	}

	logrus.WithFields(logrus.Fields{
		"antigo":    diff.OldLabel,
		"novo":      diff.NewLabel,
		"relatorio": reportPath,
	}).Info("Relatório de tendências gerado")

	return reportPath, nil
}

// makeDailyDir cria a pasta do dia sob outRoot. Se já existir, usa sufixos
// _2, _3, ... como as execuções repetidas do mesmo dia
func makeDailyDir(outRoot, baseName string) (string, error) {
	if err := os.MkdirAll(outRoot, 0o755); err != nil {
		return "", fmt.Errorf("erro ao criar a pasta raiz %s: %w", outRoot, err)
	}

	candidate := filepath.Join(outRoot, baseName)
	if _, err := os.Stat(candidate); os.IsNotExist(err) {
		if err := os.Mkdir(candidate, 0o755); err != nil {
			return "", fmt.Errorf("erro ao criar a pasta diária %s: %w", candidate, err)
		}
		return candidate, nil
	}

	for i := 2; ; i++ {
		candidate = filepath.Join(outRoot, fmt.Sprintf("%s_%d", baseName, i))
		if _, err := os.Stat(candidate); os.IsNotExist(err) {
			if err := os.Mkdir(candidate, 0o755); err != nil {
				return "", fmt.Errorf("erro ao criar a pasta diária %s: %w", candidate, err)
			}
			return candidate, nil
		}
	}
}

// previousSnapshotDir retorna a pasta de snapshot mais recente diferente da
// atual que contenha o catálogo esperado
func previousSnapshotDir(outRoot, currentDir, csvName string) (string, bool) {
	entries, err := os.ReadDir(outRoot)
	if err != nil {
		return "", false
	}

	var candidates []string
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(outRoot, entry.Name())
		if dir == currentDir {
			continue
		}
		if _, err := os.Stat(filepath.Join(dir, csvName)); err == nil {
			candidates = append(candidates, dir)
		}
	}

	if len(candidates) == 0 {
		return "", false
	}

	// Nomes de pasta são datas ISO (com sufixo opcional), então a ordem
	// lexicográfica coincide com a cronológica
	sort.Strings(candidates)
	return candidates[len(candidates)-1], true
}
