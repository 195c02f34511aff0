package postgres

import (
	"context"
	"database/sql"

	"ferialibro/internal/domain"
)

type personaRepository struct {
	DB *sql.DB
}

func NewPersonaRepository(db *sql.DB) domain.PersonaRepository {
	return &personaRepository{DB: db}
}

func (r *personaRepository) List(ctx context.Context) ([]*domain.Persona, error) {
	query := `
		SELECT id_persona, nombre, apellido_paterno, apellido_materno
		FROM persona
		ORDER BY id_persona ASC
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	personas := make([]*domain.Persona, 0)
	for rows.Next() {
		p := &domain.Persona{}
		var paternoNull, maternoNull sql.NullString
		if err := rows.Scan(&p.ID, &p.Nombre, &paternoNull, &maternoNull); err != nil {
			return nil, err
		}
		if paternoNull.Valid {
			p.ApellidoPaterno = &paternoNull.String
		}
		if maternoNull.Valid {
			p.ApellidoMaterno = &maternoNull.String
		}
		personas = append(personas, p)
	}
	return personas, rows.Err()
}

func (r *personaRepository) Create(ctx context.Context, p *domain.Persona) error {
	query := `
		INSERT INTO persona (nombre, apellido_paterno, apellido_materno)
		VALUES ($1, $2, $3)
		RETURNING id_persona
	`
	return r.DB.QueryRowContext(ctx, query, p.Nombre, p.ApellidoPaterno, p.ApellidoMaterno).Scan(&p.ID)
}

func (r *personaRepository) Update(ctx context.Context, p *domain.Persona) error {
	query := `
		UPDATE persona SET nombre = $1, apellido_paterno = $2, apellido_materno = $3
		WHERE id_persona = $4
	`
	result, err := r.DB.ExecContext(ctx, query, p.Nombre, p.ApellidoPaterno, p.ApellidoMaterno, p.ID)
	if err != nil {
		return err
	}
	return rowsAffectedOrNotFound(result)
}

func (r *personaRepository) Delete(ctx context.Context, id int) error {
	return deleteCatalogRow(ctx, r.DB, `DELETE FROM persona WHERE id_persona = $1`, id)
}
