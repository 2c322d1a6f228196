package catalogfile

import (
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"
)

// Snapshot é uma pasta diária com o catálogo esperado dentro da raiz de saída
type Snapshot struct {
	Label       string `json:"label"`
	Dir         string `json:"-"`
	CatalogPath string `json:"-"`
	HasDatabase bool   `json:"has_database"`
}

// ListSnapshots lista as pastas sob outRoot que contêm o catálogo csvName,
// em ordem crescente de rótulo (rótulos são datas ISO, então a ordem
// lexicográfica coincide com a cronológica)
func ListSnapshots(outRoot, csvName, dbName string) ([]Snapshot, error) {
	entries, err := os.ReadDir(outRoot)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao listar a pasta raiz %s", outRoot)
	}

	var snapshots []Snapshot
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		dir := filepath.Join(outRoot, entry.Name())
		catalogPath := filepath.Join(dir, csvName)
		if _, err := os.Stat(catalogPath); err != nil {
			continue
		}
		_, dbErr := os.Stat(filepath.Join(dir, dbName))
		snapshots = append(snapshots, Snapshot{
			Label:       entry.Name(),
			Dir:         dir,
			CatalogPath: catalogPath,
			HasDatabase: dbErr == nil,
		})
	}

	sort.Slice(snapshots, func(i, j int) bool {
		return snapshots[i].Label < snapshots[j].Label
	})
	return snapshots, nil
}

// FindSnapshot procura um snapshot pelo rótulo
func FindSnapshot(snapshots []Snapshot, label string) (Snapshot, bool) {
	for _, snapshot := range snapshots {
		if snapshot.Label == label {
			return snapshot, true
		}
	}
	return Snapshot{}, false
}
