package loading

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/media-trends-api/internal/domain"
)

func fullColumns() []string {
	return []string{"Title", "Year", "IMDbID", "Type", "primary_genre", "runtime", "Rating", "Votes"}
}

func row(id, title, year, rating, votes string) map[string]string {
	return map[string]string{
		"IMDbID": id,
		"Title":  title,
		"Year":   year,
		"Type":   "movie",
		"Rating": rating,
		"Votes":  votes,
	}
}

func entryByID(t *testing.T, relation *domain.CatalogRelation, id string) domain.CatalogEntry {
	t.Helper()
	for _, entry := range relation.Entries {
		if entry.ID == id {
			return entry
		}
	}
	t.Fatalf("entrada %s não encontrada", id)
	return domain.CatalogEntry{}
}

func TestLoad_SchemaError(t *testing.T) {
	service := NewService()

	table := &domain.CatalogTable{
		Columns: []string{"Title", "Year"},
		Rows:    []map[string]string{},
	}

	_, err := service.Load(table, "2024-01-01")
	require.Error(t, err)

	var schemaErr *domain.SchemaError
	require.ErrorAs(t, err, &schemaErr)
	// Todas as colunas obrigatórias ausentes devem ser nomeadas
	assert.ElementsMatch(t, []string{"IMDbID", "Type", "Rating", "Votes"}, schemaErr.MissingColumns)
}

func TestLoad_DropsRowsWithoutID(t *testing.T) {
	service := NewService()

	table := &domain.CatalogTable{
		Columns: fullColumns(),
		Rows: []map[string]string{
			row("tt0000001", "Filme A", "2020", "8.0", "100"),
			row("", "Sem ID", "2020", "7.0", "50"),
			row("   ", "ID em branco", "2020", "7.0", "50"),
		},
	}

	relation, err := service.Load(table, "2024-01-01")
	require.NoError(t, err)
	assert.Len(t, relation.Entries, 1)
	assert.Equal(t, "tt0000001", relation.Entries[0].ID)
}

func TestLoad_DedupKeepsGreatestVotes(t *testing.T) {
	service := NewService()

	table := &domain.CatalogTable{
		Columns: fullColumns(),
		Rows: []map[string]string{
			row("tt0000001", "Duplicado menor", "2020", "7.0", "100"),
			row("tt0000001", "Duplicado maior", "2020", "7.5", "300"),
			row("tt0000002", "Empate primeiro", "2021", "8.0", "200"),
			row("tt0000002", "Empate segundo", "2021", "6.0", "200"),
		},
	}

	relation, err := service.Load(table, "2024-01-01")
	require.NoError(t, err)
	assert.Len(t, relation.Entries, 2)

	dup := entryByID(t, relation, "tt0000001")
	assert.Equal(t, "Duplicado maior", dup.Title)

	// Em empate de votos, vence a primeira ocorrência na ordem do arquivo
	tie := entryByID(t, relation, "tt0000002")
	assert.Equal(t, "Empate primeiro", tie.Title)
}

func TestLoad_VotesRankMinRank(t *testing.T) {
	service := NewService()

	table := &domain.CatalogTable{
		Columns: fullColumns(),
		Rows: []map[string]string{
			row("tt0000001", "A", "2020", "8.0", "500"),
			row("tt0000002", "B", "2020", "8.0", "300"),
			row("tt0000003", "C", "2020", "8.0", "300"),
			row("tt0000004", "D", "2020", "8.0", "100"),
		},
	}

	relation, err := service.Load(table, "2024-01-01")
	require.NoError(t, err)

	assert.Equal(t, 1, entryByID(t, relation, "tt0000001").VotesRank)
	// Empatados compartilham o menor rank do grupo
	assert.Equal(t, 2, entryByID(t, relation, "tt0000002").VotesRank)
	assert.Equal(t, 2, entryByID(t, relation, "tt0000003").VotesRank)
	// O próximo valor distinto recebe a posição 1-based, com lacuna
	assert.Equal(t, 4, entryByID(t, relation, "tt0000004").VotesRank)
}

func TestLoad_MissingVotesRankAsZero(t *testing.T) {
	service := NewService()

	table := &domain.CatalogTable{
		Columns: fullColumns(),
		Rows: []map[string]string{
			row("tt0000001", "Com votos", "2020", "8.0", "10"),
			row("tt0000002", "Sem votos", "2020", "8.0", ""),
		},
	}

	relation, err := service.Load(table, "2024-01-01")
	require.NoError(t, err)

	noVotes := entryByID(t, relation, "tt0000002")
	assert.Nil(t, noVotes.Votes)
	assert.Equal(t, 2, noVotes.VotesRank)
}

func TestLoad_OptionalColumnsAbsent(t *testing.T) {
	service := NewService()

	// Catálogo antigo sem primary_genre e runtime
	table := &domain.CatalogTable{
		Columns: []string{"Title", "Year", "IMDbID", "Type", "Rating", "Votes"},
		Rows: []map[string]string{
			row("tt0000001", "Sem opcionais", "2020", "8.0", "100"),
		},
	}

	relation, err := service.Load(table, "2024-01-01")
	require.NoError(t, err)

	entry := relation.Entries[0]
	assert.Nil(t, entry.PrimaryGenre)
	assert.Nil(t, entry.RuntimeMinutes)
}

func TestLoad_NumericParsing(t *testing.T) {
	service := NewService()

	rows := []map[string]string{
		row("tt0000001", "Ano reexportado", "2021.0", "8.4", "1234"),
		row("tt0000002", "Valores inválidos", "abc", "xyz", ""),
	}
	table := &domain.CatalogTable{Columns: fullColumns(), Rows: rows}

	relation, err := service.Load(table, "2024-01-01")
	require.NoError(t, err)

	first := entryByID(t, relation, "tt0000001")
	require.NotNil(t, first.Year)
	assert.Equal(t, 2021, *first.Year)
	require.NotNil(t, first.Rating)
	assert.Equal(t, 8.4, *first.Rating)
	require.NotNil(t, first.Votes)
	assert.Equal(t, 1234, *first.Votes)

	second := entryByID(t, relation, "tt0000002")
	assert.Nil(t, second.Year)
	assert.Nil(t, second.Rating)
	assert.Nil(t, second.Votes)
}
