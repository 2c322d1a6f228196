// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/media-trends-api/infrastructure/database/sqlite"
	"github.com/vfg2006/media-trends-api/internal/domain"
)

const (
	catalogTable = "media_catalog"

	// Inserções em lote: SQLite limita o número de parâmetros por statement
	insertBatchSize = 500
)

type CatalogRepository interface {
	CreateSchema() error
	ReplaceCatalog(ctx context.Context, entries []domain.CatalogEntry) error
	CountEntries() (int, error)
	TopByVotes(limit int) ([]domain.CatalogEntry, error)
}

type catalogRepository struct {
	conn *sqlite.Connection
}

func NewCatalogRepository(conn *sqlite.Connection) CatalogRepository {
	return &catalogRepository{
		conn: conn,
	}
}

// CreateSchema garante a tabela media_catalog no banco do snapshot
func (r *catalogRepository) CreateSchema() error {
	_, err := r.conn.Exec(`
		CREATE TABLE IF NOT EXISTS media_catalog (
			Title TEXT,
			Year INTEGER,
			IMDbID TEXT,
			Type TEXT,
			primary_genre TEXT,
			runtime INTEGER,
			Rating REAL,
			Votes INTEGER,
			VotesRank INTEGER
		)
	`)
	if err != nil {
		return fmt.Errorf("erro ao criar a tabela do catálogo: %w", err)
	}
	return nil
}

// ReplaceCatalog substitui todo o conteúdo da tabela pelas entradas dadas.
// A troca roda em uma transação: nunca fica um snapshot meio gravado.
func (r *catalogRepository) ReplaceCatalog(ctx context.Context, entries []domain.CatalogEntry) error {
	if err := r.CreateSchema(); err != nil {
		return err
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		if _, err := tx.Exec("DELETE FROM " + catalogTable); err != nil {
			return fmt.Errorf("erro ao limpar a tabela do catálogo: %w", err)
		}

		for start := 0; start < len(entries); start += insertBatchSize {
			end := start + insertBatchSize
			if end > len(entries) {
				end = len(entries)
			}

			query := squirrel.StatementBuilder.
				Insert(catalogTable).
				Columns(
					"Title",
					"Year",
					"IMDbID",
					"Type",
					"primary_genre",
					"runtime",
					"Rating",
					"Votes",
					"VotesRank",
				).
				PlaceholderFormat(squirrel.Question)

			for _, entry := range entries[start:end] {
				query = query.Values(
					entry.Title,
					nullableInt(entry.Year),
					entry.ID,
					entry.Type,
					nullableString(entry.PrimaryGenre),
					nullableInt(entry.RuntimeMinutes),
					nullableFloat(entry.Rating),
					nullableInt(entry.Votes),
					entry.VotesRank,
				)
			}

			sqlQuery, args, err := query.ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir query de inserção: %w", err)
			}

			if _, err := tx.Exec(sqlQuery, args...); err != nil {
				return fmt.Errorf("erro ao executar query de inserção: %w", err)
			}
		}

		return nil
	})
}

func (r *catalogRepository) CountEntries() (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(catalogTable).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar entradas do catálogo: %w", err)
	}

	return count, nil
}

// TopByVotes retorna as entradas mais votadas do snapshot armazenado
func (r *catalogRepository) TopByVotes(limit int) ([]domain.CatalogEntry, error) {
	query, args, err := squirrel.
		Select(
			"Title",
			"Year",
			"IMDbID",
			"Type",
			"primary_genre",
			"runtime",
			"Rating",
			"Votes",
			"VotesRank",
		).
		From(catalogTable).
		OrderBy("VotesRank ASC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Question).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]domain.CatalogEntry, 0, limit)
	for rows.Next() {
		entry, err := r.scanCatalogEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear entrada do catálogo: %w", err)
		}
		entries = append(entries, *entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *catalogRepository) scanCatalogEntry(rows *sql.Rows) (*domain.CatalogEntry, error) {
	entry := &domain.CatalogEntry{}

	var (
		year    sql.NullInt64
		genre   sql.NullString
		runtime sql.NullInt64
		rating  sql.NullFloat64
		votes   sql.NullInt64
	)

	err := rows.Scan(
		&entry.Title,
		&year,
		&entry.ID,
		&entry.Type,
		&genre,
		&runtime,
		&rating,
		&votes,
		&entry.VotesRank,
	)
	if err != nil {
		return nil, err
	}

	if year.Valid {
		value := int(year.Int64)
		entry.Year = &value
	}
	if genre.Valid && genre.String != "" {
		entry.PrimaryGenre = &genre.String
	}
	if runtime.Valid {
		value := int(runtime.Int64)
		entry.RuntimeMinutes = &value
	}
	if rating.Valid {
		entry.Rating = &rating.Float64
	}
	if votes.Valid {
		value := int(votes.Int64)
		entry.Votes = &value
	}

	return entry, nil
}

func nullableInt(value *int) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

func nullableString(value *string) interface{} {
	if value == nil {
		return nil
	}
	return *value
}

func nullableFloat(value *float64) interface{} {
	if value == nil {
		return nil
	}
	return *value
}
