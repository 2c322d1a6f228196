// Package etl projeta os dumps brutos do IMDb (title.basics e title.ratings)
// no catálogo tabular consumido pelo restante do pipeline
package etl

import (
	"bufio"
	"compress/gzip"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/media-trends-api/internal/domain"
)

const (
	BasicsFilename  = "title.basics.tsv.gz"
	RatingsFilename = "title.ratings.tsv.gz"
	CatalogFilename = "media_catalog.csv"
)

// Tipos de título que entram no catálogo
var allowedTypes = map[string]bool{
	"movie":    true,
	"tvSeries": true,
}

// CatalogColumns é a ordem das colunas do media_catalog.csv gerado
var CatalogColumns = []string{
	domain.ColumnTitle,
	domain.ColumnYear,
	domain.ColumnIMDbID,
	domain.ColumnType,
	domain.ColumnPrimaryGenre,
	domain.ColumnRuntime,
	domain.ColumnRating,
	domain.ColumnVotes,
}

type Builder interface {
	BuildCatalog(dir string) (*domain.CatalogTable, error)
	FilterCatalog(table *domain.CatalogTable, minVotes int) *domain.CatalogTable
}

type Service struct{}

func NewService() Builder {
	return &Service{}
}

type basicsRow struct {
	title        string
	year         string
	titleType    string
	primaryGenre string
	runtime      string
}

type ratingsRow struct {
	rating string
	votes  string
}

// BuildCatalog lê os dois dumps em dir, filtra os tipos suportados, junta as
// avaliações por tconst e devolve o catálogo ordenado por votos e nota
// decrescentes. Títulos sem nome ou sem ano são descartados.
func (s *Service) BuildCatalog(dir string) (*domain.CatalogTable, error) {
	basics, err := readBasics(filepath.Join(dir, BasicsFilename))
	if err != nil {
		return nil, err
	}

	ratings, err := readRatings(filepath.Join(dir, RatingsFilename))
	if err != nil {
		return nil, err
	}

	rows := make([]map[string]string, 0, len(basics))
	order := make([]string, 0, len(basics))
	byID := make(map[string]map[string]string, len(basics))

	for id, b := range basics {
		row := map[string]string{
			domain.ColumnTitle:        b.title,
			domain.ColumnYear:         b.year,
			domain.ColumnIMDbID:       id,
			domain.ColumnType:         b.titleType,
			domain.ColumnPrimaryGenre: b.primaryGenre,
			domain.ColumnRuntime:      b.runtime,
			domain.ColumnRating:       "",
			domain.ColumnVotes:        "",
		}
		if r, ok := ratings[id]; ok {
			row[domain.ColumnRating] = r.rating
			row[domain.ColumnVotes] = r.votes
		}
		byID[id] = row
		order = append(order, id)
	}

	// Ordenação determinística antes do sort por votos: ids em ordem
	// lexicográfica, para que empates fiquem estáveis entre execuções
	sort.Strings(order)
	for _, id := range order {
		rows = append(rows, byID[id])
	}

	sort.SliceStable(rows, func(a, b int) bool {
		av, bv := intOrZero(rows[a][domain.ColumnVotes]), intOrZero(rows[b][domain.ColumnVotes])
		if av != bv {
			return av > bv
		}
		return floatOrNeg(rows[a][domain.ColumnRating]) > floatOrNeg(rows[b][domain.ColumnRating])
	})

	logrus.WithFields(logrus.Fields{
		"dir":     dir,
		"titulos": len(rows),
	}).Info("Catálogo construído a partir dos dumps do IMDb")

	return &domain.CatalogTable{Columns: CatalogColumns, Rows: rows}, nil
}

// FilterCatalog mantém apenas linhas com mais votos que minVotes
// (estritamente maior, como o filtro original)
func (s *Service) FilterCatalog(table *domain.CatalogTable, minVotes int) *domain.CatalogTable {
	filtered := &domain.CatalogTable{Columns: table.Columns}
	for _, row := range table.Rows {
		if intOrZero(row[domain.ColumnVotes]) > minVotes {
			filtered.Rows = append(filtered.Rows, row)
		}
	}
	return filtered
}

func readBasics(path string) (map[string]basicsRow, error) {
	result := make(map[string]basicsRow)

	err := readTSVGz(path, func(header map[string]int, record []string) {
		get := func(col string) string {
			idx, ok := header[col]
			if !ok || idx >= len(record) {
				return ""
			}
			value := record[idx]
			if value == `\N` {
				return ""
			}
			return value
		}

		titleType := get("titleType")
		if !allowedTypes[titleType] {
			return
		}

		title := strings.TrimSpace(get("primaryTitle"))
		year := get("startYear")
		if title == "" || year == "" {
			return
		}

		// primeiro gênero da lista separada por vírgula
		genre := get("genres")
		if i := strings.IndexByte(genre, ','); i >= 0 {
			genre = genre[:i]
		}

		result[get("tconst")] = basicsRow{
			title:        title,
			year:         year,
			titleType:    titleType,
			primaryGenre: genre,
			runtime:      get("runtimeMinutes"),
		}
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

func readRatings(path string) (map[string]ratingsRow, error) {
	result := make(map[string]ratingsRow)

	err := readTSVGz(path, func(header map[string]int, record []string) {
		get := func(col string) string {
			idx, ok := header[col]
			if !ok || idx >= len(record) {
				return ""
			}
			value := record[idx]
			if value == `\N` {
				return ""
			}
			return value
		}

		result[get("tconst")] = ratingsRow{
			rating: get("averageRating"),
			votes:  get("numVotes"),
		}
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// readTSVGz percorre um TSV gzipado linha a linha sem materializar o arquivo
// inteiro descomprimido. Os dumps do IMDb contêm aspas soltas, então o split
// é por tabulação pura, não parsing CSV.
func readTSVGz(path string, visit func(header map[string]int, record []string)) error {
	file, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "erro ao abrir %s", path)
	}
	defer file.Close()

	gz, err := gzip.NewReader(file)
	if err != nil {
		return errors.Wrapf(err, "erro ao descomprimir %s", path)
	}
	defer gz.Close()

	scanner := bufio.NewScanner(gz)
	scanner.Buffer(make([]byte, 0, 1024*1024), 1024*1024)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return errors.Wrapf(err, "erro ao ler o cabeçalho de %s", path)
		}
		return errors.Errorf("arquivo vazio: %s", path)
	}

	headerRecord := strings.Split(scanner.Text(), "\t")
	header := make(map[string]int, len(headerRecord))
	for i, col := range headerRecord {
		header[col] = i
	}

	for scanner.Scan() {
		visit(header, strings.Split(scanner.Text(), "\t"))
	}

	return errors.Wrapf(scanner.Err(), "erro ao ler registros de %s", path)
}

func intOrZero(raw string) int {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return value
}

func floatOrNeg(raw string) float64 {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return -1.0
	}
	return value
}
