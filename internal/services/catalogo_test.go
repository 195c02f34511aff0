package services

import (
	"context"
	"testing"
	"time"

	"ferialibro/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSalaRepo is an in-memory SalaRepository for tests.
type fakeSalaRepo struct {
	byID   map[int]*domain.Sala
	nextID int
	err    error
}

func newFakeSalaRepo() *fakeSalaRepo {
	return &fakeSalaRepo{byID: make(map[int]*domain.Sala), nextID: 1}
}

func (f *fakeSalaRepo) List(ctx context.Context) ([]*domain.Sala, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([]*domain.Sala, 0, len(f.byID))
	for _, s := range f.byID {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeSalaRepo) Create(ctx context.Context, s *domain.Sala) error {
	if f.err != nil {
		return f.err
	}
	s.ID = f.nextID
	f.nextID++
	stored := *s
	f.byID[s.ID] = &stored
	return nil
}

func (f *fakeSalaRepo) Update(ctx context.Context, s *domain.Sala) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[s.ID]; !ok {
		return domain.ErrNotFound
	}
	stored := *s
	f.byID[s.ID] = &stored
	return nil
}

func (f *fakeSalaRepo) Delete(ctx context.Context, id int) error {
	if f.err != nil {
		return f.err
	}
	if _, ok := f.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

func newCatalogoServiceForTest(salaRepo domain.SalaRepository) domain.CatalogoService {
	return NewCatalogoService(salaRepo, nil, nil, nil, nil, nil, time.Second)
}

func TestCatalogoService_Salas(t *testing.T) {
	ctx := context.Background()

	t.Run("create requires a name", func(t *testing.T) {
		repo := newFakeSalaRepo()
		svc := newCatalogoServiceForTest(repo)

		err := svc.CreateSala(ctx, &domain.Sala{Nombre: "  "})
		require.Error(t, err)
		assert.True(t, domain.IsValidationError(err))
		assert.Empty(t, repo.byID)
	})

	t.Run("create assigns the generated id", func(t *testing.T) {
		repo := newFakeSalaRepo()
		svc := newCatalogoServiceForTest(repo)

		sala := &domain.Sala{Nombre: "Sala Magna"}
		require.NoError(t, svc.CreateSala(ctx, sala))
		assert.Equal(t, 1, sala.ID)
	})

	t.Run("update missing sala", func(t *testing.T) {
		repo := newFakeSalaRepo()
		svc := newCatalogoServiceForTest(repo)

		err := svc.UpdateSala(ctx, &domain.Sala{ID: 9, Nombre: "Sala B"})
		require.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("delete passes through repository errors", func(t *testing.T) {
		repo := newFakeSalaRepo()
		repo.err = domain.ErrEnUso
		svc := newCatalogoServiceForTest(repo)

		require.ErrorIs(t, svc.DeleteSala(ctx, 1), domain.ErrEnUso)
	})
}

func TestValidarExpositor(t *testing.T) {
	tests := []struct {
		name      string
		expositor *domain.Expositor
		wantErr   bool
	}{
		{"ok", &domain.Expositor{Nombre: "Editorial Alba", TipoExpositor: "Editorial"}, false},
		{"missing nombre", &domain.Expositor{TipoExpositor: "Editorial"}, true},
		{"missing giro", &domain.Expositor{Nombre: "Editorial Alba"}, true},
		{"blank giro", &domain.Expositor{Nombre: "Editorial Alba", TipoExpositor: " "}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validarExpositor(tt.expositor)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, domain.IsValidationError(err))
			} else {
				require.NoError(t, err)
			}
		})
	}
}
