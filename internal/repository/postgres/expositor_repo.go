package postgres

import (
	"context"
	"database/sql"

	"ferialibro/internal/domain"
)

type expositorRepository struct {
	DB *sql.DB
}

func NewExpositorRepository(db *sql.DB) domain.ExpositorRepository {
	return &expositorRepository{DB: db}
}

func (r *expositorRepository) List(ctx context.Context) ([]*domain.Expositor, error) {
	query := `
		SELECT id_expositor, nombre, tipo_expositor, num_stand
		FROM expositor
		ORDER BY id_expositor ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	expositores := make([]*domain.Expositor, 0)
	for rows.Next() {
		e := &domain.Expositor{}
		var standNull sql.NullString
		if err := rows.Scan(&e.ID, &e.Nombre, &e.TipoExpositor, &standNull); err != nil {
			return nil, err
		}
		if standNull.Valid {
			e.NumStand = &standNull.String
		}
		expositores = append(expositores, e)
	}
	return expositores, rows.Err()
}

func (r *expositorRepository) Create(ctx context.Context, e *domain.Expositor) error {
	query := `
		INSERT INTO expositor (nombre, tipo_expositor, num_stand)
		VALUES ($1, $2, $3)
		RETURNING id_expositor
	`
	return r.DB.QueryRowContext(ctx, query, e.Nombre, e.TipoExpositor, e.NumStand).Scan(&e.ID)
}

func (r *expositorRepository) Update(ctx context.Context, e *domain.Expositor) error {
	query := `
		UPDATE expositor SET nombre = $1, tipo_expositor = $2, num_stand = $3
		WHERE id_expositor = $4
	`
	result, err := r.DB.ExecContext(ctx, query, e.Nombre, e.TipoExpositor, e.NumStand, e.ID)
	if err != nil {
		return err
	}
	return rowsAffectedOrNotFound(result)
}

func (r *expositorRepository) Delete(ctx context.Context, id int) error {
	return deleteCatalogRow(ctx, r.DB, `DELETE FROM expositor WHERE id_expositor = $1`, id)
}
