// Package loading normaliza um catálogo tabular cru em uma relação de
// entradas únicas por IMDbID, com ranking de votos calculado
package loading

import (
	"sort"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/media-trends-api/internal/domain"
)

type Loader interface {
	Load(table *domain.CatalogTable, label string) (*domain.CatalogRelation, error)
}

type Service struct{}

func NewService() Loader {
	return &Service{}
}

// Load valida o esquema, descarta linhas sem id, deduplica por IMDbID e
// calcula o VotesRank. A ordem das entradas no resultado não é significativa.
func (s *Service) Load(table *domain.CatalogTable, label string) (*domain.CatalogRelation, error) {
	if err := validateSchema(table); err != nil {
		return nil, err
	}

	entries := make([]domain.CatalogEntry, 0, len(table.Rows))
	dropped := 0

	for _, row := range table.Rows {
		id := strings.TrimSpace(row[domain.ColumnIMDbID])
		if id == "" {
			// Linha malformada: excluída silenciosamente, não é erro fatal
			dropped++
			continue
		}

		entry := domain.CatalogEntry{
			ID:    id,
			Title: row[domain.ColumnTitle],
			Type:  row[domain.ColumnType],
			Year:  parseInt(row[domain.ColumnYear]),
		}

		// Colunas opcionais: catálogos antigos não têm primary_genre/runtime
		if table.HasColumn(domain.ColumnPrimaryGenre) {
			if genre := strings.TrimSpace(row[domain.ColumnPrimaryGenre]); genre != "" {
				entry.PrimaryGenre = &genre
			}
		}
		if table.HasColumn(domain.ColumnRuntime) {
			entry.RuntimeMinutes = parseInt(row[domain.ColumnRuntime])
		}

		entry.Rating = parseFloat(row[domain.ColumnRating])
		entry.Votes = parseInt(row[domain.ColumnVotes])

		entries = append(entries, entry)
	}

	if dropped > 0 {
		logrus.WithFields(logrus.Fields{
			"label":   label,
			"dropped": dropped,
		}).Warn("Linhas sem IMDbID descartadas durante a carga do catálogo")
	}

	entries = dedupByID(entries)
	assignVotesRank(entries)

	return &domain.CatalogRelation{
		Label:   label,
		Entries: entries,
	}, nil
}

func validateSchema(table *domain.CatalogTable) error {
	var missing []string
	for _, col := range domain.RequiredCatalogColumns {
		if !table.HasColumn(col) {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &domain.SchemaError{MissingColumns: missing}
	}
	return nil
}

// dedupByID mantém uma entrada por IMDbID: a de maior número de votos.
// Em empate vence a primeira ocorrência na ordem original do arquivo.
func dedupByID(entries []domain.CatalogEntry) []domain.CatalogEntry {
	seen := make(map[string]int, len(entries))
	result := make([]domain.CatalogEntry, 0, len(entries))

	for _, entry := range entries {
		idx, ok := seen[entry.ID]
		if !ok {
			seen[entry.ID] = len(result)
			result = append(result, entry)
			continue
		}
		if entry.VotesOrZero() > result[idx].VotesOrZero() {
			result[idx] = entry
		}
	}

	return result
}

// assignVotesRank aplica min-rank sobre votos decrescentes: empatados
// compartilham o menor rank do grupo, e o próximo valor distinto recebe
// sua posição 1-based na ordenação completa
func assignVotesRank(entries []domain.CatalogEntry) {
	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return entries[order[a]].VotesOrZero() > entries[order[b]].VotesOrZero()
	})

	rank := 0
	prevVotes := -1
	for pos, idx := range order {
		votes := entries[idx].VotesOrZero()
		if pos == 0 || votes != prevVotes {
			rank = pos + 1
			prevVotes = votes
		}
		entries[idx].VotesRank = rank
	}
}

func parseInt(raw string) *int {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		// Valores como "2021.0" aparecem em catálogos reexportados
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return nil
		}
		value = int(f)
	}
	return &value
}

func parseFloat(raw string) *float64 {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}
	return &value
}
