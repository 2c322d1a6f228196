package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/media-trends-api/infrastructure/catalogfile"
	"github.com/vfg2006/media-trends-api/internal/domain"
	"github.com/vfg2006/media-trends-api/internal/usecases/diffing"
	"github.com/vfg2006/media-trends-api/internal/usecases/loading"
	"github.com/vfg2006/media-trends-api/internal/usecases/reporting"
	"github.com/vfg2006/media-trends-api/internal/usecases/trending"
	"github.com/vfg2006/media-trends-api/pkg/utils"
)

func main() {
	oldPath := flag.String("old", "", "Catálogo antigo (csv)")
	newPath := flag.String("new", "", "Catálogo novo (csv)")
	outPath := flag.String("out", "", "Arquivo HTML de saída (padrão: catalog_diff_<antigo>_to_<novo>.html)")
	outDir := flag.String("dir", ".", "Pasta de saída quando -out não é informado")
	topN := flag.Int("top", 50, "Linhas por tabela")
	minOldVotes := flag.Int("min-old-votes-for-percent", 1000, "Votos antigos mínimos para o ranking percentual")
	newTitleMinVotes := flag.Int("new-title-min-votes", 0, "Votos mínimos para listar títulos novos")
	flag.Parse()

	if *oldPath == "" || *newPath == "" {
		fmt.Fprintln(os.Stderr, "Uso: compare -old <catalogo_antigo.csv> -new <catalogo_novo.csv> [-out relatorio.html]")
		os.Exit(2)
	}

	loader := loading.NewService()
	differ := diffing.NewService()
	trendsBuilder := trending.NewService()
	renderer := reporting.NewService()

	oldRel := loadCatalog(loader, *oldPath)
	newRel := loadCatalog(loader, *newPath)

	diff := differ.Diff(oldRel, newRel)

	params := domain.TrendingParams{
		TopN:                  *topN,
		MinOldVotesForPercent: *minOldVotes,
		NewTitleMinVotes:      *newTitleMinVotes,
	}.Sanitize()

	boards := trendsBuilder.Build(diff, params)
	report := renderer.Render(diff, boards, time.Now())

	html, err := renderer.RenderHTML(report)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao renderizar o relatório")
	}

	target := *outPath
	if target == "" {
		target = filepath.Join(*outDir, fmt.Sprintf("catalog_diff_%s_to_%s.html", diff.OldLabel, diff.NewLabel))
	}

	if err := os.WriteFile(target, []byte(html), 0o644); err != nil {
		logrus.WithError(err).Fatal("Erro ao gravar o relatório")
	}

	fmt.Println(target)
}

func loadCatalog(loader loading.Loader, path string) *domain.CatalogRelation {
	table, err := catalogfile.Read(path)
	if err != nil {
		logrus.WithError(err).Fatalf("Erro ao ler o catálogo %s", path)
	}

	relation, err := loader.Load(table, utils.SnapshotLabel(path))
	if err != nil {
		logrus.WithError(err).Fatalf("Erro ao carregar o catálogo %s", path)
	}

	return relation
}
