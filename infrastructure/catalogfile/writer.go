package catalogfile

import (
	"encoding/csv"
	"os"

	"github.com/pkg/errors"
	"github.com/vfg2006/media-trends-api/internal/domain"
)

// Write grava uma tabela de catálogo como CSV, colunas na ordem declarada
func Write(path string, table *domain.CatalogTable) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "erro ao criar o catálogo %s", path)
	}
	defer file.Close()

	writer := csv.NewWriter(file)

	if err := writer.Write(table.Columns); err != nil {
		return errors.Wrapf(err, "erro ao gravar o cabeçalho de %s", path)
	}

	record := make([]string, len(table.Columns))
	for _, row := range table.Rows {
		for i, col := range table.Columns {
			record[i] = row[col]
		}
		if err := writer.Write(record); err != nil {
			return errors.Wrapf(err, "erro ao gravar linha de %s", path)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return errors.Wrapf(err, "erro ao finalizar a gravação de %s", path)
	}

	return nil
}
