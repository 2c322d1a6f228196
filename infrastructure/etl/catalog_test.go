package etl

import (
	"compress/gzip"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/media-trends-api/internal/domain"
)

func writeGzTSV(t *testing.T, path string, lines ...string) {
	t.Helper()

	file, err := os.Create(path)
	require.NoError(t, err)
	defer file.Close()

	gz := gzip.NewWriter(file)
	for _, line := range lines {
		_, err := gz.Write([]byte(line + "\n"))
		require.NoError(t, err)
	}
	require.NoError(t, gz.Close())
}

func writeDumps(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	writeGzTSV(t, filepath.Join(dir, BasicsFilename),
		"tconst\ttitleType\tprimaryTitle\toriginalTitle\tisAdult\tstartYear\tendYear\truntimeMinutes\tgenres",
		"tt0000001\tmovie\tFilme A\tFilme A\t0\t2020\t\\N\t120\tDrama,Thriller",
		"tt0000002\ttvSeries\tSérie B\tSérie B\t0\t2021\t\\N\t\\N\tComedy",
		"tt0000003\ttvEpisode\tEpisódio\tEpisódio\t0\t2021\t\\N\t30\tComedy",
		"tt0000004\tmovie\t\t\\N\t0\t2019\t\\N\t90\tAction",
		"tt0000005\tmovie\tSem ano\tSem ano\t0\t\\N\t\\N\t90\tAction",
		"tt0000006\tmovie\tSem rating\tSem rating\t0\t2018\t\\N\t100\t\\N",
	)

	writeGzTSV(t, filepath.Join(dir, RatingsFilename),
		"tconst\taverageRating\tnumVotes",
		"tt0000001\t8.1\t1000",
		"tt0000002\t7.5\t2000",
		"tt0000003\t9.0\t500",
	)

	return dir
}

func rowByID(t *testing.T, table *domain.CatalogTable, id string) map[string]string {
	t.Helper()
	for _, row := range table.Rows {
		if row[domain.ColumnIMDbID] == id {
			return row
		}
	}
	t.Fatalf("linha %s não encontrada no catálogo", id)
	return nil
}

func TestBuildCatalog(t *testing.T) {
	dir := writeDumps(t)
	service := NewService()

	table, err := service.BuildCatalog(dir)
	require.NoError(t, err)

	assert.Equal(t, CatalogColumns, table.Columns)

	// Apenas movie e tvSeries com título e ano entram no catálogo
	require.Len(t, table.Rows, 3)

	// Ordenado por votos decrescentes
	assert.Equal(t, "tt0000002", table.Rows[0][domain.ColumnIMDbID])
	assert.Equal(t, "tt0000001", table.Rows[1][domain.ColumnIMDbID])
	assert.Equal(t, "tt0000006", table.Rows[2][domain.ColumnIMDbID])

	movie := rowByID(t, table, "tt0000001")
	assert.Equal(t, "Filme A", movie[domain.ColumnTitle])
	assert.Equal(t, "2020", movie[domain.ColumnYear])
	assert.Equal(t, "movie", movie[domain.ColumnType])
	// Primeiro gênero da lista
	assert.Equal(t, "Drama", movie[domain.ColumnPrimaryGenre])
	assert.Equal(t, "120", movie[domain.ColumnRuntime])
	assert.Equal(t, "8.1", movie[domain.ColumnRating])
	assert.Equal(t, "1000", movie[domain.ColumnVotes])

	// runtime \N vira vazio
	series := rowByID(t, table, "tt0000002")
	assert.Equal(t, "", series[domain.ColumnRuntime])

	// Sem avaliação, as colunas ficam vazias (left join)
	unrated := rowByID(t, table, "tt0000006")
	assert.Equal(t, "", unrated[domain.ColumnRating])
	assert.Equal(t, "", unrated[domain.ColumnVotes])
}

func TestBuildCatalog_RatingBreaksVoteTies(t *testing.T) {
	dir := t.TempDir()

	writeGzTSV(t, filepath.Join(dir, BasicsFilename),
		"tconst\ttitleType\tprimaryTitle\toriginalTitle\tisAdult\tstartYear\tendYear\truntimeMinutes\tgenres",
		"tt0000001\tmovie\tNota menor\tNota menor\t0\t2020\t\\N\t90\tDrama",
		"tt0000002\tmovie\tNota maior\tNota maior\t0\t2020\t\\N\t90\tDrama",
	)
	writeGzTSV(t, filepath.Join(dir, RatingsFilename),
		"tconst\taverageRating\tnumVotes",
		"tt0000001\t6.0\t1000",
		"tt0000002\t9.0\t1000",
	)

	table, err := NewService().BuildCatalog(dir)
	require.NoError(t, err)
	require.Len(t, table.Rows, 2)

	assert.Equal(t, "tt0000002", table.Rows[0][domain.ColumnIMDbID])
	assert.Equal(t, "tt0000001", table.Rows[1][domain.ColumnIMDbID])
}

func TestBuildCatalog_MissingDump(t *testing.T) {
	service := NewService()

	_, err := service.BuildCatalog(t.TempDir())
	assert.Error(t, err)
}

func TestFilterCatalog_StrictlyGreater(t *testing.T) {
	service := NewService()

	table := &domain.CatalogTable{
		Columns: CatalogColumns,
		Rows: []map[string]string{
			{domain.ColumnIMDbID: "tt1", domain.ColumnVotes: "1001"},
			{domain.ColumnIMDbID: "tt2", domain.ColumnVotes: "1000"},
			{domain.ColumnIMDbID: "tt3", domain.ColumnVotes: ""},
		},
	}

	filtered := service.FilterCatalog(table, 1000)

	// O corte é estritamente maior: o valor exato do limiar fica de fora
	require.Len(t, filtered.Rows, 1)
	assert.Equal(t, "tt1", filtered.Rows[0][domain.ColumnIMDbID])
	assert.Equal(t, table.Columns, filtered.Columns)
}
