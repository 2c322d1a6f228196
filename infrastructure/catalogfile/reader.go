// Package catalogfile lê e grava arquivos media_catalog.csv
package catalogfile

import (
	"bytes"
	"encoding/csv"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/vfg2006/media-trends-api/internal/domain"
)

// Read carrega um catálogo CSV como tabela crua, sem interpretar valores.
// Linhas curtas são completadas com células vazias.
func Read(path string) (*domain.CatalogTable, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao abrir o catálogo %s", path)
	}

	// Alguns exports chegam com BOM UTF-8
	raw = bytes.TrimPrefix(raw, []byte{0xEF, 0xBB, 0xBF})

	reader := csv.NewReader(bytes.NewReader(raw))
	reader.FieldsPerRecord = -1

	columns, err := reader.Read()
	if err != nil {
		return nil, errors.Wrapf(err, "erro ao ler o cabeçalho de %s", path)
	}

	var rows []map[string]string
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao ler linha de %s", path)
		}

		row := make(map[string]string, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = record[i]
			} else {
				row[col] = ""
			}
		}
		rows = append(rows, row)
	}

	return &domain.CatalogTable{Columns: columns, Rows: rows}, nil
}
