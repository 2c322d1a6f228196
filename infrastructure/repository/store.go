package repository

import (
	"context"
	"fmt"

	"github.com/vfg2006/media-trends-api/infrastructure/database/sqlite"
	"github.com/vfg2006/media-trends-api/internal/domain"
)

// CatalogStorer grava um snapshot normalizado em um banco local
type CatalogStorer interface {
	StoreCatalog(ctx context.Context, dbPath string, entries []domain.CatalogEntry) (int, error)
}

type catalogStore struct{}

func NewCatalogStore() CatalogStorer {
	return &catalogStore{}
}

// StoreCatalog abre (ou cria) o banco do snapshot, substitui a tabela
// media_catalog e retorna quantas entradas ficaram gravadas
func (s *catalogStore) StoreCatalog(ctx context.Context, dbPath string, entries []domain.CatalogEntry) (int, error) {
	conn, err := sqlite.NewConnection(ctx, dbPath)
	if err != nil {
		return 0, fmt.Errorf("erro ao abrir o banco %s: %w", dbPath, err)
	}
	defer conn.Close()

	repo := NewCatalogRepository(conn)

	if err := repo.ReplaceCatalog(ctx, entries); err != nil {
		return 0, err
	}

	return repo.CountEntries()
}
