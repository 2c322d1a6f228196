package catalogfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/media-trends-api/internal/domain"
)

func TestRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "media_catalog.csv")
	content := "Title,Year,IMDbID\n" +
		"Filme A,2020,tt0000001\n" +
		"\"Filme, com vírgula\",2021,tt0000002\n" +
		"Linha curta\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := Read(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"Title", "Year", "IMDbID"}, table.Columns)
	require.Len(t, table.Rows, 3)

	assert.Equal(t, "Filme, com vírgula", table.Rows[1]["Title"])
	// Linhas curtas são completadas com células vazias
	assert.Equal(t, "Linha curta", table.Rows[2]["Title"])
	assert.Equal(t, "", table.Rows[2]["Year"])
	assert.Equal(t, "", table.Rows[2]["IMDbID"])
}

func TestRead_StripsBOM(t *testing.T) {
	path := filepath.Join(t.TempDir(), "media_catalog.csv")
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("Title,IMDbID\nFilme A,tt1\n")...)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	table, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, "Title", table.Columns[0])
}

func TestRead_MissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "inexistente.csv"))
	assert.Error(t, err)
}

func TestWriteThenRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), "media_catalog.csv")

	table := &domain.CatalogTable{
		Columns: []string{"Title", "Votes"},
		Rows: []map[string]string{
			{"Title": "Filme A", "Votes": "100"},
			{"Title": "Filme, B", "Votes": ""},
		},
	}

	require.NoError(t, Write(path, table))

	loaded, err := Read(path)
	require.NoError(t, err)
	assert.Equal(t, table.Columns, loaded.Columns)
	require.Len(t, loaded.Rows, 2)
	assert.Equal(t, "Filme, B", loaded.Rows[1]["Title"])
}

func TestListSnapshots(t *testing.T) {
	outRoot := t.TempDir()

	makeSnapshot := func(name string, withCatalog, withDB bool) {
		dir := filepath.Join(outRoot, name)
		require.NoError(t, os.MkdirAll(dir, 0o755))
		if withCatalog {
			require.NoError(t, os.WriteFile(filepath.Join(dir, "media_catalog.csv"), []byte("Title\n"), 0o644))
		}
		if withDB {
			require.NoError(t, os.WriteFile(filepath.Join(dir, "media_catalog.db"), []byte{}, 0o644))
		}
	}

	makeSnapshot("2024-01-02", true, true)
	makeSnapshot("2024-01-01", true, false)
	makeSnapshot("2024-01-03", false, false) // sem catálogo: ignorada
	require.NoError(t, os.WriteFile(filepath.Join(outRoot, "avulso.txt"), []byte{}, 0o644))

	snapshots, err := ListSnapshots(outRoot, "media_catalog.csv", "media_catalog.db")
	require.NoError(t, err)

	require.Len(t, snapshots, 2)
	// Ordem crescente de rótulo
	assert.Equal(t, "2024-01-01", snapshots[0].Label)
	assert.False(t, snapshots[0].HasDatabase)
	assert.Equal(t, "2024-01-02", snapshots[1].Label)
	assert.True(t, snapshots[1].HasDatabase)

	found, ok := FindSnapshot(snapshots, "2024-01-02")
	assert.True(t, ok)
	assert.Equal(t, filepath.Join(outRoot, "2024-01-02"), found.Dir)

	_, ok = FindSnapshot(snapshots, "2024-01-03")
	assert.False(t, ok)
}
