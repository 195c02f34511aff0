package postgres

import (
	"context"
	"database/sql"
	"errors"

	"ferialibro/internal/domain"

	"github.com/lib/pq"
)

// deleteCatalogRow runs a single-row DELETE for a catalog table, mapping a
// foreign key violation (pq code 23503, events still reference the row) to
// ErrEnUso and a zero-row result to ErrNotFound.
func deleteCatalogRow(ctx context.Context, db *sql.DB, query string, id int) error {
	result, err := db.ExecContext(ctx, query, id)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == "23503" {
			return domain.ErrEnUso
		}
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// rowsAffectedOrNotFound turns a zero-row mutation result into ErrNotFound.
func rowsAffectedOrNotFound(result sql.Result) error {
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

type salaRepository struct {
	DB *sql.DB
}

func NewSalaRepository(db *sql.DB) domain.SalaRepository {
	return &salaRepository{DB: db}
}

func (r *salaRepository) List(ctx context.Context) ([]*domain.Sala, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id_sala, nombre FROM sala ORDER BY id_sala ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	salas := make([]*domain.Sala, 0)
	for rows.Next() {
		s := &domain.Sala{}
		if err := rows.Scan(&s.ID, &s.Nombre); err != nil {
			return nil, err
		}
		salas = append(salas, s)
	}
	return salas, rows.Err()
}

func (r *salaRepository) Create(ctx context.Context, s *domain.Sala) error {
	return r.DB.QueryRowContext(ctx,
		`INSERT INTO sala (nombre) VALUES ($1) RETURNING id_sala`, s.Nombre,
	).Scan(&s.ID)
}

func (r *salaRepository) Update(ctx context.Context, s *domain.Sala) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE sala SET nombre = $1 WHERE id_sala = $2`, s.Nombre, s.ID)
	if err != nil {
		return err
	}
	return rowsAffectedOrNotFound(result)
}

func (r *salaRepository) Delete(ctx context.Context, id int) error {
	return deleteCatalogRow(ctx, r.DB, `DELETE FROM sala WHERE id_sala = $1`, id)
}

type tipoEventoRepository struct {
	DB *sql.DB
}

func NewTipoEventoRepository(db *sql.DB) domain.TipoEventoRepository {
	return &tipoEventoRepository{DB: db}
}

func (r *tipoEventoRepository) List(ctx context.Context) ([]*domain.TipoEvento, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id_tipo, nombre FROM tipo_evento ORDER BY id_tipo ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	tipos := make([]*domain.TipoEvento, 0)
	for rows.Next() {
		t := &domain.TipoEvento{}
		if err := rows.Scan(&t.ID, &t.Nombre); err != nil {
			return nil, err
		}
		tipos = append(tipos, t)
	}
	return tipos, rows.Err()
}

func (r *tipoEventoRepository) Create(ctx context.Context, t *domain.TipoEvento) error {
	return r.DB.QueryRowContext(ctx,
		`INSERT INTO tipo_evento (nombre) VALUES ($1) RETURNING id_tipo`, t.Nombre,
	).Scan(&t.ID)
}

func (r *tipoEventoRepository) Update(ctx context.Context, t *domain.TipoEvento) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE tipo_evento SET nombre = $1 WHERE id_tipo = $2`, t.Nombre, t.ID)
	if err != nil {
		return err
	}
	return rowsAffectedOrNotFound(result)
}

func (r *tipoEventoRepository) Delete(ctx context.Context, id int) error {
	return deleteCatalogRow(ctx, r.DB, `DELETE FROM tipo_evento WHERE id_tipo = $1`, id)
}

type clasificacionRepository struct {
	DB *sql.DB
}

func NewClasificacionRepository(db *sql.DB) domain.ClasificacionRepository {
	return &clasificacionRepository{DB: db}
}

func (r *clasificacionRepository) List(ctx context.Context) ([]*domain.Clasificacion, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id_clasificacion, rango FROM clasificacion ORDER BY id_clasificacion ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	clasificaciones := make([]*domain.Clasificacion, 0)
	for rows.Next() {
		c := &domain.Clasificacion{}
		if err := rows.Scan(&c.ID, &c.Rango); err != nil {
			return nil, err
		}
		clasificaciones = append(clasificaciones, c)
	}
	return clasificaciones, rows.Err()
}

func (r *clasificacionRepository) Create(ctx context.Context, c *domain.Clasificacion) error {
	return r.DB.QueryRowContext(ctx,
		`INSERT INTO clasificacion (rango) VALUES ($1) RETURNING id_clasificacion`, c.Rango,
	).Scan(&c.ID)
}

func (r *clasificacionRepository) Update(ctx context.Context, c *domain.Clasificacion) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE clasificacion SET rango = $1 WHERE id_clasificacion = $2`, c.Rango, c.ID)
	if err != nil {
		return err
	}
	return rowsAffectedOrNotFound(result)
}

func (r *clasificacionRepository) Delete(ctx context.Context, id int) error {
	return deleteCatalogRow(ctx, r.DB, `DELETE FROM clasificacion WHERE id_clasificacion = $1`, id)
}

type cicloRepository struct {
	DB *sql.DB
}

func NewCicloRepository(db *sql.DB) domain.CicloRepository {
	return &cicloRepository{DB: db}
}

func (r *cicloRepository) List(ctx context.Context) ([]*domain.Ciclo, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT id_ciclo, nombre FROM ciclo ORDER BY id_ciclo ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	ciclos := make([]*domain.Ciclo, 0)
	for rows.Next() {
		c := &domain.Ciclo{}
		if err := rows.Scan(&c.ID, &c.Nombre); err != nil {
			return nil, err
		}
		ciclos = append(ciclos, c)
	}
	return ciclos, rows.Err()
}

func (r *cicloRepository) Create(ctx context.Context, c *domain.Ciclo) error {
	return r.DB.QueryRowContext(ctx,
		`INSERT INTO ciclo (nombre) VALUES ($1) RETURNING id_ciclo`, c.Nombre,
	).Scan(&c.ID)
}

func (r *cicloRepository) Update(ctx context.Context, c *domain.Ciclo) error {
	result, err := r.DB.ExecContext(ctx,
		`UPDATE ciclo SET nombre = $1 WHERE id_ciclo = $2`, c.Nombre, c.ID)
	if err != nil {
		return err
	}
	return rowsAffectedOrNotFound(result)
}

func (r *cicloRepository) Delete(ctx context.Context, id int) error {
	return deleteCatalogRow(ctx, r.DB, `DELETE FROM ciclo WHERE id_ciclo = $1`, id)
}
