// Package domain contém as estruturas de dados do domínio da aplicação
package domain

import (
	"fmt"
	"strings"
)

// Colunas obrigatórias de qualquer catálogo (presentes desde a primeira versão)
var RequiredCatalogColumns = []string{
	ColumnIMDbID,
	ColumnTitle,
	ColumnYear,
	ColumnType,
	ColumnRating,
	ColumnVotes,
}

// Nomes de colunas do arquivo de catálogo (media_catalog.csv)
const (
	ColumnTitle        = "Title"
	ColumnYear         = "Year"
	ColumnIMDbID       = "IMDbID"
	ColumnType         = "Type"
	ColumnPrimaryGenre = "primary_genre"
	ColumnRuntime      = "runtime"
	ColumnRating       = "Rating"
	ColumnVotes        = "Votes"
)

// CatalogTable representa um catálogo tabular cru, antes da normalização.
// As linhas são mapas coluna -> valor textual, como lidas do CSV.
type CatalogTable struct {
	Columns []string
	Rows    []map[string]string
}

// HasColumn verifica se a coluna existe no esquema da tabela
func (t *CatalogTable) HasColumn(name string) bool {
	for _, c := range t.Columns {
		if c == name {
			return true
		}
	}
	return false
}

// SchemaError indica que colunas obrigatórias estão ausentes do esquema
type SchemaError struct {
	MissingColumns []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("catálogo sem colunas obrigatórias: %s", strings.Join(e.MissingColumns, ", "))
}

// CatalogEntry é uma linha normalizada de um snapshot do catálogo.
// Campos opcionais usam ponteiros: nil significa ausente na origem.
type CatalogEntry struct {
	ID             string   `json:"imdb_id"`
	Title          string   `json:"title"`
	Year           *int     `json:"year,omitempty"`
	Type           string   `json:"type"`
	PrimaryGenre   *string  `json:"primary_genre,omitempty"`
	RuntimeMinutes *int     `json:"runtime,omitempty"`
	Rating         *float64 `json:"rating,omitempty"`
	Votes          *int     `json:"votes,omitempty"`
	VotesRank      int      `json:"votes_rank"`
}

// VotesOrZero retorna o número de votos tratando ausência como zero,
// regra usada para ordenação, dedup e ranking
func (e *CatalogEntry) VotesOrZero() int {
	if e.Votes == nil {
		return 0
	}
	return *e.Votes
}

// CatalogRelation é um snapshot normalizado: id único por entrada e
// VotesRank consistente com votos decrescentes (min-rank)
type CatalogRelation struct {
	Label   string         `json:"label"`
	Entries []CatalogEntry `json:"entries"`
}
