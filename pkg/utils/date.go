package utils

import (
	"path/filepath"
	"regexp"
	"time"
)

var snapshotDateRE = regexp.MustCompile(`(\d{4}-\d{2}-\d{2})`)

func ParseDate(dateStr string) (*time.Time, error) {
	var date time.Time

	if dateStr != "" {
		incomingDate, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return nil, err
		}

		date = incomingDate
	}

	return &date, nil
}

// SnapshotLabel extrai a data (YYYY-MM-DD) do nome de um arquivo ou pasta de
// snapshot. Sem data válida no nome, o próprio nome vira o rótulo.
func SnapshotLabel(path string) string {
	name := filepath.Base(path)

	match := snapshotDateRE.FindString(name)
	if match != "" {
		if _, err := time.Parse("2006-01-02", match); err == nil {
			return match
		}
	}

	// Remove a extensão para rótulos tipo "media_catalog_old"
	if ext := filepath.Ext(name); ext != "" {
		name = name[:len(name)-len(ext)]
	}
	return name
}
