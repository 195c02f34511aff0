package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"ferialibro/internal/domain"

	"github.com/lib/pq"
)

type eventoRepository struct {
	DB *sql.DB
}

func NewEventoRepository(db *sql.DB) domain.EventoRepository {
	return &eventoRepository{
		DB: db,
	}
}

// classifyWriteError maps a foreign key violation (pq code 23503) raised by
// an event insert or update to ErrReferenciaInvalida. Other errors pass
// through unchanged.
func classifyWriteError(err error) error {
	var perr *pq.Error
	if errors.As(err, &perr) && perr.Code == "23503" {
		return domain.ErrReferenciaInvalida
	}
	return err
}

// checkSalaLibre runs the overlap query for the proposed window inside tx.
// Events without a room or without an end instant are exempt. The predicate
// uses strict inequalities, so back-to-back bookings (existing ends at 10:00,
// new starts at 10:00) are allowed. Stored rows whose fecha_hora_fin is NULL
// never satisfy `fecha_hora_fin > $x` and are invisible to the check; that
// matches the documented behavior of open-ended events.
//
// excludeID skips the event's own row on update; ids start at 1, so 0 means
// no exclusion.
func checkSalaLibre(ctx context.Context, tx *sql.Tx, e *domain.Evento, excludeID int) error {
	if e.IDSala == nil || e.FechaHoraFin == nil {
		return nil
	}
	query := `
		SELECT id_evento FROM evento
		WHERE id_sala = $1
		  AND id_evento <> $2
		  AND fecha_hora_inicio < $3
		  AND fecha_hora_fin > $4
		LIMIT 1
	`
	var id int
	err := tx.QueryRowContext(ctx, query, *e.IDSala, excludeID, *e.FechaHoraFin, e.FechaHoraInicio).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return err
	}
	return domain.ErrSalaOcupada
}

func insertTalentos(ctx context.Context, tx *sql.Tx, idEvento int, talentos []domain.TalentoAsignado) error {
	query := `
		INSERT INTO evento_persona (id_evento, id_persona, rol)
		VALUES ($1, $2, $3)
	`
	for _, t := range talentos {
		if _, err := tx.ExecContext(ctx, query, idEvento, t.IDPersona, t.Rol); err != nil {
			return classifyWriteError(err)
		}
	}
	return nil
}

// Create inserts the event and its talent rows in one serializable
// transaction, with the room-overlap check up front. Running check and write
// in the same transaction keeps two concurrent submissions for the same room
// from both passing the check and double-booking it.
func (r *eventoRepository) Create(ctx context.Context, e *domain.Evento) error {
	tx, err := r.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := checkSalaLibre(ctx, tx, e, 0); err != nil {
		return err
	}

	query := `
		INSERT INTO evento (titulo, descripcion, fecha_hora_inicio, fecha_hora_fin,
			id_sala, id_tipo, id_clasificacion, id_ciclo, id_expositor)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id_evento
	`
	err = tx.QueryRowContext(ctx, query,
		e.Titulo, e.Descripcion, e.FechaHoraInicio, e.FechaHoraFin,
		e.IDSala, e.IDTipo, e.IDClasificacion, e.IDCiclo, e.IDExpositor,
	).Scan(&e.ID)
	if err != nil {
		return classifyWriteError(err)
	}

	if err := insertTalentos(ctx, tx, e.ID, e.Talentos); err != nil {
		return err
	}
	return tx.Commit()
}

// Update replaces the event's scalar fields. When replaceTalentos is true
// the stored talent set is deleted and re-inserted from e.Talentos
// (replace-all, not a diff). The overlap check excludes the event's own row.
func (r *eventoRepository) Update(ctx context.Context, e *domain.Evento, replaceTalentos bool) error {
	tx, err := r.DB.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelSerializable})
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := checkSalaLibre(ctx, tx, e, e.ID); err != nil {
		return err
	}

	query := `
		UPDATE evento SET titulo = $1, descripcion = $2, fecha_hora_inicio = $3,
			fecha_hora_fin = $4, id_sala = $5, id_tipo = $6, id_clasificacion = $7,
			id_ciclo = $8, id_expositor = $9
		WHERE id_evento = $10
	`
	result, err := tx.ExecContext(ctx, query,
		e.Titulo, e.Descripcion, e.FechaHoraInicio, e.FechaHoraFin,
		e.IDSala, e.IDTipo, e.IDClasificacion, e.IDCiclo, e.IDExpositor,
		e.ID,
	)
	if err != nil {
		return classifyWriteError(err)
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}

	if replaceTalentos {
		if _, err := tx.ExecContext(ctx, `DELETE FROM evento_persona WHERE id_evento = $1`, e.ID); err != nil {
			return err
		}
		if err := insertTalentos(ctx, tx, e.ID, e.Talentos); err != nil {
			return err
		}
	}
	return tx.Commit()
}

// Delete removes the event's talent rows and then the event itself. The
// schema declares no ON DELETE CASCADE on evento_persona, so the two-step
// removal is explicit.
func (r *eventoRepository) Delete(ctx context.Context, id int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM evento_persona WHERE id_evento = $1`, id); err != nil {
		return err
	}
	result, err := tx.ExecContext(ctx, `DELETE FROM evento WHERE id_evento = $1`, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return tx.Commit()
}

func (r *eventoRepository) ListCartelera(ctx context.Context, filtro domain.CarteleraFiltro) ([]*domain.CarteleraEvento, error) {
	query := `
		SELECT id_evento, titulo, descripcion, fecha_hora_inicio, fecha_hora_fin,
			id_sala, id_tipo, id_clasificacion, id_ciclo, id_expositor,
			evento, lugar, tipo, clasificacion, ciclo,
			nombre_talento, rol, nombre_expositor, lista_talentos
		FROM cartelera_detallada
	`
	conds := []string{}
	args := []interface{}{}
	if filtro.Busqueda != "" {
		args = append(args, "%"+filtro.Busqueda+"%")
		conds = append(conds, fmt.Sprintf("titulo ILIKE $%d", len(args)))
	}
	if filtro.Fecha != nil {
		args = append(args, *filtro.Fecha)
		conds = append(conds, fmt.Sprintf("fecha_hora_inicio::date = $%d::date", len(args)))
	}
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY id_evento ASC"

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	eventos := make([]*domain.CarteleraEvento, 0)
	for rows.Next() {
		e := &domain.CarteleraEvento{}
		var descNull, lugarNull, tipoNull, clasifNull, cicloNull sql.NullString
		var talentoNull, rolNull, expositorNull sql.NullString
		var finNull sql.NullTime
		var salaID, tipoID, clasifID, cicloID, expositorID sql.NullInt64
		var talentosJSON []byte
		if err := rows.Scan(
			&e.IDEvento, &e.Titulo, &descNull, &e.FechaHoraInicio, &finNull,
			&salaID, &tipoID, &clasifID, &cicloID, &expositorID,
			&e.Evento, &lugarNull, &tipoNull, &clasifNull, &cicloNull,
			&talentoNull, &rolNull, &expositorNull, &talentosJSON,
		); err != nil {
			return nil, err
		}
		if descNull.Valid {
			e.Descripcion = &descNull.String
		}
		if finNull.Valid {
			e.FechaHoraFin = &finNull.Time
		}
		if salaID.Valid {
			v := int(salaID.Int64)
			e.IDSala = &v
		}
		if tipoID.Valid {
			v := int(tipoID.Int64)
			e.IDTipo = &v
		}
		if clasifID.Valid {
			v := int(clasifID.Int64)
			e.IDClasificacion = &v
		}
		if cicloID.Valid {
			v := int(cicloID.Int64)
			e.IDCiclo = &v
		}
		if expositorID.Valid {
			v := int(expositorID.Int64)
			e.IDExpositor = &v
		}
		if lugarNull.Valid {
			e.Lugar = &lugarNull.String
		}
		if tipoNull.Valid {
			e.Tipo = &tipoNull.String
		}
		if clasifNull.Valid {
			e.Clasificacion = &clasifNull.String
		}
		if cicloNull.Valid {
			e.Ciclo = &cicloNull.String
		}
		if talentoNull.Valid {
			e.NombreTalento = &talentoNull.String
		}
		if rolNull.Valid {
			e.Rol = &rolNull.String
		}
		if expositorNull.Valid {
			e.NombreExpositor = &expositorNull.String
		}
		e.ListaTalentos = make([]domain.CarteleraTalento, 0)
		if len(talentosJSON) > 0 {
			if err := json.Unmarshal(talentosJSON, &e.ListaTalentos); err != nil {
				return nil, fmt.Errorf("decode lista_talentos for evento %d: %w", e.IDEvento, err)
			}
		}
		eventos = append(eventos, e)
	}
	return eventos, rows.Err()
}
