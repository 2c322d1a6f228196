package handler

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/media-trends-api/infrastructure/catalogfile"
	"github.com/vfg2006/media-trends-api/internal/config"
	"github.com/vfg2006/media-trends-api/internal/domain"
	"github.com/vfg2006/media-trends-api/internal/usecases/diffing"
	"github.com/vfg2006/media-trends-api/internal/usecases/loading"
	"github.com/vfg2006/media-trends-api/internal/usecases/reporting"
	"github.com/vfg2006/media-trends-api/internal/usecases/trending"
	"github.com/vfg2006/media-trends-api/pkg/apiErrors"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// TrendsServices agrupa os serviços do núcleo usados pelos handlers de tendências
type TrendsServices struct {
	Loader   loading.Loader
	Differ   diffing.Differ
	Trends   trending.Builder
	Renderer reporting.Renderer
	Config   *config.Config
}

// catalogFilename é o nome do catálogo comparável dentro de cada snapshot,
// o filtrado quando o filtro de votos mínimos está configurado
func (s TrendsServices) catalogFilename() string {
	if s.Config.DailyBuild.MinVotes > 0 {
		return fmt.Sprintf("media_catalog_%d.csv", s.Config.DailyBuild.MinVotes)
	}
	return "media_catalog.csv"
}

// GetTrendsReport retorna o relatório de tendências em JSON entre dois snapshots
func GetTrendsReport(services TrendsServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, apiErr := buildTrendsReport(services, r)
		if apiErr != nil {
			apiErrors.WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(report); err != nil {
			logrus.WithError(err).Error("Erro ao enviar o relatório de tendências")
		}
	}
}

// GetTrendsReportHTML retorna o relatório de tendências como documento HTML
func GetTrendsReportHTML(services TrendsServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, apiErr := buildTrendsReport(services, r)
		if apiErr != nil {
			apiErrors.WriteError(w, apiErr.Code, apiErr.Message, apiErr.Details)
			return
		}

		html, err := services.Renderer.RenderHTML(report)
		if err != nil {
			logrus.WithError(err).Error("Erro ao renderizar o relatório HTML")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao renderizar o relatório", nil)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if _, err := w.Write([]byte(html)); err != nil {
			logrus.WithError(err).Error("Erro ao enviar o relatório HTML")
		}
	}
}

// buildTrendsReport resolve os snapshots pedidos (ou os dois mais recentes),
// carrega os catálogos e executa o núcleo de comparação
func buildTrendsReport(services TrendsServices, r *http.Request) (*domain.Report, *apiErrors.APIError) {
	csvName := services.catalogFilename()
	dbName := services.Config.DailyBuild.DatabaseFilename

	snapshots, err := catalogfile.ListSnapshots(services.Config.DailyBuild.OutRoot, csvName, dbName)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar snapshots")
		return nil, &apiErrors.APIError{Code: apiErrors.ErrInternalServer, Message: "Erro ao listar snapshots"}
	}

	oldSnap, newSnap, apiErr := resolveSnapshotPair(snapshots, r.URL.Query().Get("old"), r.URL.Query().Get("new"))
	if apiErr != nil {
		return nil, apiErr
	}

	params, apiErr := trendingParams(services.Config, r)
	if apiErr != nil {
		return nil, apiErr
	}

	oldRel, apiErr := loadSnapshot(services.Loader, oldSnap)
	if apiErr != nil {
		return nil, apiErr
	}
	newRel, apiErr := loadSnapshot(services.Loader, newSnap)
	if apiErr != nil {
		return nil, apiErr
	}

	diff := services.Differ.Diff(oldRel, newRel)
	boards := services.Trends.Build(diff, params)
	return services.Renderer.Render(diff, boards, time.Now()), nil
}

func resolveSnapshotPair(snapshots []catalogfile.Snapshot, oldLabel, newLabel string) (catalogfile.Snapshot, catalogfile.Snapshot, *apiErrors.APIError) {
	// Sem rótulos pedidos, comparar os dois snapshots mais recentes
	if oldLabel == "" && newLabel == "" {
		if len(snapshots) < 2 {
			return catalogfile.Snapshot{}, catalogfile.Snapshot{}, &apiErrors.APIError{
				Code:    apiErrors.ErrReportUnavailable,
				Message: "São necessários pelo menos dois snapshots para comparar",
			}
		}
		return snapshots[len(snapshots)-2], snapshots[len(snapshots)-1], nil
	}

	if oldLabel == "" || newLabel == "" {
		return catalogfile.Snapshot{}, catalogfile.Snapshot{}, &apiErrors.APIError{
			Code:    apiErrors.ErrMissingRequiredData,
			Message: "Os parâmetros old e new devem ser informados juntos",
		}
	}

	oldSnap, ok := catalogfile.FindSnapshot(snapshots, oldLabel)
	if !ok {
		return catalogfile.Snapshot{}, catalogfile.Snapshot{}, &apiErrors.APIError{
			Code:    apiErrors.ErrSnapshotNotFound,
			Message: "Snapshot não encontrado",
			Details: map[string]string{"label": oldLabel},
		}
	}

	newSnap, ok := catalogfile.FindSnapshot(snapshots, newLabel)
	if !ok {
		return catalogfile.Snapshot{}, catalogfile.Snapshot{}, &apiErrors.APIError{
			Code:    apiErrors.ErrSnapshotNotFound,
			Message: "Snapshot não encontrado",
			Details: map[string]string{"label": newLabel},
		}
	}

	return oldSnap, newSnap, nil
}

// trendingParams monta os parâmetros de leaderboard da configuração, com o
// parâmetro opcional top da query string por cima
func trendingParams(cfg *config.Config, r *http.Request) (domain.TrendingParams, *apiErrors.APIError) {
	params := domain.TrendingParams{
		TopN:                  cfg.Trending.TopN,
		MinOldVotesForPercent: cfg.Trending.MinOldVotesForPercent,
		NewTitleMinVotes:      cfg.Trending.NewTitleMinVotes,
	}

	if raw := r.URL.Query().Get("top"); raw != "" {
		top, err := strconv.Atoi(raw)
		if err != nil {
			return params, &apiErrors.APIError{
				Code:    apiErrors.ErrInvalidFormat,
				Message: "O parâmetro top deve ser um inteiro",
			}
		}
		params.TopN = top
	}

	return params.Sanitize(), nil
}

func loadSnapshot(loader loading.Loader, snapshot catalogfile.Snapshot) (*domain.CatalogRelation, *apiErrors.APIError) {
	table, err := catalogfile.Read(snapshot.CatalogPath)
	if err != nil {
		logrus.WithError(err).WithField("snapshot", snapshot.Label).Error("Erro ao ler o catálogo do snapshot")
		return nil, &apiErrors.APIError{
			Code:    apiErrors.ErrCatalogUnreadable,
			Message: "Erro ao ler o catálogo do snapshot",
			Details: map[string]string{"label": snapshot.Label},
		}
	}

	relation, err := loader.Load(table, snapshot.Label)
	if err != nil {
		logrus.WithError(err).WithField("snapshot", snapshot.Label).Error("Erro ao carregar o catálogo do snapshot")
		return nil, &apiErrors.APIError{
			Code:    apiErrors.ErrCatalogUnreadable,
			Message: "Catálogo do snapshot com esquema inválido",
			Details: map[string]string{"label": snapshot.Label},
		}
	}

	return relation, nil
}
