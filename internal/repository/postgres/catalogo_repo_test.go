package postgres

import (
	"context"
	"database/sql"
	"testing"

	"ferialibro/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/require"
)

func TestSalaRepository_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		sala    *domain.Sala
		mock    func(mock sqlmock.Sqlmock)
		wantID  int
		wantErr bool
	}{
		{
			name: "success",
			sala: &domain.Sala{Nombre: "Sala Magna"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO sala`).
					WithArgs("Sala Magna").
					WillReturnRows(sqlmock.NewRows([]string{"id_sala"}).AddRow(3))
			},
			wantID: 3,
		},
		{
			name: "db error",
			sala: &domain.Sala{Nombre: "Sala B"},
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(`INSERT INTO sala`).
					WillReturnError(sql.ErrConnDone)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewSalaRepository(db)
			err = repo.Create(ctx, tt.sala)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.wantID, tt.sala.ID)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSalaRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectQuery(`SELECT id_sala, nombre FROM sala`).
		WillReturnRows(sqlmock.NewRows([]string{"id_sala", "nombre"}).
			AddRow(1, "Sala Magna").
			AddRow(2, "Foro Infantil"))

	repo := NewSalaRepository(db)
	salas, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, salas, 2)
	require.Equal(t, "Sala Magna", salas[0].Nombre)
	require.Equal(t, 2, salas[1].ID)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSalaRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE sala SET nombre`).
			WithArgs("Sala Principal", 1).
			WillReturnResult(sqlmock.NewResult(0, 1))

		repo := NewSalaRepository(db)
		require.NoError(t, repo.Update(ctx, &domain.Sala{ID: 1, Nombre: "Sala Principal"}))
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`UPDATE sala SET nombre`).
			WithArgs("Sala Principal", 99).
			WillReturnResult(sqlmock.NewResult(0, 0))

		repo := NewSalaRepository(db)
		err = repo.Update(ctx, &domain.Sala{ID: 99, Nombre: "Sala Principal"})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestSalaRepository_Delete(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		id      int
		mock    func(mock sqlmock.Sqlmock)
		wantErr error
	}{
		{
			name: "success",
			id:   1,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM sala`).
					WithArgs(1).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
		},
		{
			name: "referenced by events",
			id:   1,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM sala`).
					WithArgs(1).
					WillReturnError(&pq.Error{Code: "23503"})
			},
			wantErr: domain.ErrEnUso,
		},
		{
			name: "not found",
			id:   99,
			mock: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec(`DELETE FROM sala`).
					WithArgs(99).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			require.NoError(t, err)
			defer db.Close()

			tt.mock(mock)
			repo := NewSalaRepository(db)
			err = repo.Delete(ctx, tt.id)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			require.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestClasificacionRepository_CreateAndDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("create returns generated id", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectQuery(`INSERT INTO clasificacion`).
			WithArgs("Todo público").
			WillReturnRows(sqlmock.NewRows([]string{"id_clasificacion"}).AddRow(5))

		repo := NewClasificacionRepository(db)
		c := &domain.Clasificacion{Rango: "Todo público"}
		require.NoError(t, repo.Create(ctx, c))
		require.Equal(t, 5, c.ID)
	})

	t.Run("delete blocked while referenced", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec(`DELETE FROM clasificacion`).
			WithArgs(5).
			WillReturnError(&pq.Error{Code: "23503"})

		repo := NewClasificacionRepository(db)
		require.ErrorIs(t, repo.Delete(ctx, 5), domain.ErrEnUso)
	})
}
