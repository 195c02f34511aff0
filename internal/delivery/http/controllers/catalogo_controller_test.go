package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ferialibro/internal/delivery/http/helpers"
	"ferialibro/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCatalogoService implements domain.CatalogoService. The error knobs are
// shared across entities since each test only touches one of them.
type fakeCatalogoService struct {
	listErr   error
	createErr error
	updateErr error
	deleteErr error

	salas           []*domain.Sala
	tipos           []*domain.TipoEvento
	clasificaciones []*domain.Clasificacion
	ciclos          []*domain.Ciclo
	expositores     []*domain.Expositor
	personas        []*domain.Persona

	createdID     int
	lastUpdated   any
	lastDeletedID int
}

func (f *fakeCatalogoService) ListSalas(ctx context.Context) ([]*domain.Sala, error) {
	return f.salas, f.listErr
}

func (f *fakeCatalogoService) CreateSala(ctx context.Context, sala *domain.Sala) error {
	if f.createErr != nil {
		return f.createErr
	}
	sala.ID = f.createdID
	return nil
}

func (f *fakeCatalogoService) UpdateSala(ctx context.Context, sala *domain.Sala) error {
	f.lastUpdated = sala
	return f.updateErr
}

func (f *fakeCatalogoService) DeleteSala(ctx context.Context, id int) error {
	f.lastDeletedID = id
	return f.deleteErr
}

func (f *fakeCatalogoService) ListTipos(ctx context.Context) ([]*domain.TipoEvento, error) {
	return f.tipos, f.listErr
}

func (f *fakeCatalogoService) CreateTipo(ctx context.Context, tipo *domain.TipoEvento) error {
	if f.createErr != nil {
		return f.createErr
	}
	tipo.ID = f.createdID
	return nil
}

func (f *fakeCatalogoService) UpdateTipo(ctx context.Context, tipo *domain.TipoEvento) error {
	f.lastUpdated = tipo
	return f.updateErr
}

func (f *fakeCatalogoService) DeleteTipo(ctx context.Context, id int) error {
	f.lastDeletedID = id
	return f.deleteErr
}

func (f *fakeCatalogoService) ListClasificaciones(ctx context.Context) ([]*domain.Clasificacion, error) {
	return f.clasificaciones, f.listErr
}

func (f *fakeCatalogoService) CreateClasificacion(ctx context.Context, clasificacion *domain.Clasificacion) error {
	if f.createErr != nil {
		return f.createErr
	}
	clasificacion.ID = f.createdID
	return nil
}

func (f *fakeCatalogoService) UpdateClasificacion(ctx context.Context, clasificacion *domain.Clasificacion) error {
	f.lastUpdated = clasificacion
	return f.updateErr
}

func (f *fakeCatalogoService) DeleteClasificacion(ctx context.Context, id int) error {
	f.lastDeletedID = id
	return f.deleteErr
}

func (f *fakeCatalogoService) ListCiclos(ctx context.Context) ([]*domain.Ciclo, error) {
	return f.ciclos, f.listErr
}

func (f *fakeCatalogoService) CreateCiclo(ctx context.Context, ciclo *domain.Ciclo) error {
	if f.createErr != nil {
		return f.createErr
	}
	ciclo.ID = f.createdID
	return nil
}

func (f *fakeCatalogoService) UpdateCiclo(ctx context.Context, ciclo *domain.Ciclo) error {
	f.lastUpdated = ciclo
	return f.updateErr
}

func (f *fakeCatalogoService) DeleteCiclo(ctx context.Context, id int) error {
	f.lastDeletedID = id
	return f.deleteErr
}

func (f *fakeCatalogoService) ListExpositores(ctx context.Context) ([]*domain.Expositor, error) {
	return f.expositores, f.listErr
}

func (f *fakeCatalogoService) CreateExpositor(ctx context.Context, expositor *domain.Expositor) error {
	if f.createErr != nil {
		return f.createErr
	}
	expositor.ID = f.createdID
	return nil
}

func (f *fakeCatalogoService) UpdateExpositor(ctx context.Context, expositor *domain.Expositor) error {
	f.lastUpdated = expositor
	return f.updateErr
}

func (f *fakeCatalogoService) DeleteExpositor(ctx context.Context, id int) error {
	f.lastDeletedID = id
	return f.deleteErr
}

func (f *fakeCatalogoService) ListPersonas(ctx context.Context) ([]*domain.Persona, error) {
	return f.personas, f.listErr
}

func (f *fakeCatalogoService) CreatePersona(ctx context.Context, persona *domain.Persona) error {
	if f.createErr != nil {
		return f.createErr
	}
	persona.ID = f.createdID
	return nil
}

func (f *fakeCatalogoService) UpdatePersona(ctx context.Context, persona *domain.Persona) error {
	f.lastUpdated = persona
	return f.updateErr
}

func (f *fakeCatalogoService) DeletePersona(ctx context.Context, id int) error {
	f.lastDeletedID = id
	return f.deleteErr
}

func TestCatalogoController_Salas(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		svc := &fakeCatalogoService{salas: []*domain.Sala{{ID: 1, Nombre: "Auditorio"}}}
		c := NewCatalogoController(testLogger, svc)

		rr := httptest.NewRecorder()
		c.ListSalas(rr, httptest.NewRequest(http.MethodGet, "/api/salas", nil))

		require.Equal(t, http.StatusOK, rr.Code)
		env := decodeEnvelope(t, rr)
		var salas []*domain.Sala
		require.NoError(t, json.Unmarshal(env.Data, &salas))
		require.Len(t, salas, 1)
		assert.Equal(t, "Auditorio", salas[0].Nombre)
	})

	t.Run("create returns the room with its id", func(t *testing.T) {
		svc := &fakeCatalogoService{createdID: 3}
		c := NewCatalogoController(testLogger, svc)

		req := httptest.NewRequest(http.MethodPost, "/api/salas", strings.NewReader(`{"nombre": "Foro Infantil"}`))
		rr := httptest.NewRecorder()
		c.CreateSala(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		env := decodeEnvelope(t, rr)
		var sala domain.Sala
		require.NoError(t, json.Unmarshal(env.Data, &sala))
		assert.Equal(t, 3, sala.ID)
		assert.Equal(t, "Foro Infantil", sala.Nombre)
	})

	t.Run("create without name", func(t *testing.T) {
		svc := &fakeCatalogoService{}
		c := NewCatalogoController(testLogger, svc)

		req := httptest.NewRequest(http.MethodPost, "/api/salas", strings.NewReader(`{"nombre": ""}`))
		rr := httptest.NewRecorder()
		c.CreateSala(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		env := decodeEnvelope(t, rr)
		require.NotNil(t, env.Error)
		assert.Equal(t, helpers.ErrCodeBadRequest, env.Error.Code)
	})

	t.Run("update not found", func(t *testing.T) {
		svc := &fakeCatalogoService{updateErr: domain.ErrNotFound}
		c := NewCatalogoController(testLogger, svc)

		req := httptest.NewRequest(http.MethodPut, "/api/salas/99", strings.NewReader(`{"nombre": "Anexo"}`))
		req.SetPathValue("id", "99")
		rr := httptest.NewRecorder()
		c.UpdateSala(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("delete while in use", func(t *testing.T) {
		svc := &fakeCatalogoService{deleteErr: domain.ErrEnUso}
		c := NewCatalogoController(testLogger, svc)

		req := httptest.NewRequest(http.MethodDelete, "/api/salas/1", nil)
		req.SetPathValue("id", "1")
		rr := httptest.NewRecorder()
		c.DeleteSala(rr, req)

		require.Equal(t, http.StatusConflict, rr.Code)
		env := decodeEnvelope(t, rr)
		require.NotNil(t, env.Error)
		assert.Equal(t, helpers.ErrCodeConflict, env.Error.Code)
	})

	t.Run("delete success", func(t *testing.T) {
		svc := &fakeCatalogoService{}
		c := NewCatalogoController(testLogger, svc)

		req := httptest.NewRequest(http.MethodDelete, "/api/salas/4", nil)
		req.SetPathValue("id", "4")
		rr := httptest.NewRecorder()
		c.DeleteSala(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 4, svc.lastDeletedID)
	})
}

func TestCatalogoController_Clasificaciones(t *testing.T) {
	t.Run("create requires rango", func(t *testing.T) {
		svc := &fakeCatalogoService{}
		c := NewCatalogoController(testLogger, svc)

		req := httptest.NewRequest(http.MethodPost, "/api/clasificacion", strings.NewReader(`{}`))
		rr := httptest.NewRecorder()
		c.CreateClasificacion(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("update forwards id and rango", func(t *testing.T) {
		svc := &fakeCatalogoService{}
		c := NewCatalogoController(testLogger, svc)

		req := httptest.NewRequest(http.MethodPut, "/api/clasificacion/2", strings.NewReader(`{"rango": "Adolescentes"}`))
		req.SetPathValue("id", "2")
		rr := httptest.NewRecorder()
		c.UpdateClasificacion(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		updated, ok := svc.lastUpdated.(*domain.Clasificacion)
		require.True(t, ok)
		assert.Equal(t, 2, updated.ID)
		assert.Equal(t, "Adolescentes", updated.Rango)
	})
}

func TestCatalogoController_Ciclos(t *testing.T) {
	t.Run("delete while in use", func(t *testing.T) {
		svc := &fakeCatalogoService{deleteErr: domain.ErrEnUso}
		c := NewCatalogoController(testLogger, svc)

		req := httptest.NewRequest(http.MethodDelete, "/api/ciclo/1", nil)
		req.SetPathValue("id", "1")
		rr := httptest.NewRecorder()
		c.DeleteCiclo(rr, req)

		require.Equal(t, http.StatusConflict, rr.Code)
	})
}
