package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/saransh1220/storefront-vocabulary/internal/domain"
)

type pgVocabularyRepository struct {
	db *sqlx.DB
}

func NewVocabularyRepository(db *sqlx.DB) domain.EnumLabelRepository {
	return &pgVocabularyRepository{db: db}
}

type enumLabelRow struct {
	TypeName string `db:"type_name"`
	Label    string `db:"label"`
}

func (r *pgVocabularyRepository) ListEnumLabels(ctx context.Context, pgTypes []string) (map[string][]string, error) {
	query := `
		SELECT t.typname AS type_name, e.enumlabel AS label
		FROM pg_type t
		JOIN pg_enum e ON e.enumtypid = t.oid
		JOIN pg_namespace n ON n.oid = t.typnamespace
		WHERE n.nspname = current_schema()
		  AND t.typname = ANY($1)
		ORDER BY t.typname, e.enumsortorder
	`
	var rows []enumLabelRow
	if err := r.db.SelectContext(ctx, &rows, query, pq.Array(pgTypes)); err != nil {
		return nil, fmt.Errorf("list enum labels: %w", err)
	}

	labels := make(map[string][]string)
	for _, row := range rows {
		labels[row.TypeName] = append(labels[row.TypeName], row.Label)
	}
	return labels, nil
}
