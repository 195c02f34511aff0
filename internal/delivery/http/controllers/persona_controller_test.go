package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ferialibro/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonaController_CreatePersona(t *testing.T) {
	t.Run("created with short surname keys", func(t *testing.T) {
		svc := &fakeCatalogoService{createdID: 5}
		c := NewPersonaController(testLogger, svc)

		body := `{"nombre": "Valeria", "apellidoPat": "Luiselli"}`
		req := httptest.NewRequest(http.MethodPost, "/api/participante", strings.NewReader(body))
		rr := httptest.NewRecorder()
		c.CreatePersona(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		env := decodeEnvelope(t, rr)
		var persona domain.Persona
		require.NoError(t, json.Unmarshal(env.Data, &persona))
		assert.Equal(t, 5, persona.ID)
		require.NotNil(t, persona.ApellidoPaterno)
		assert.Equal(t, "Luiselli", *persona.ApellidoPaterno)
		assert.Nil(t, persona.ApellidoMaterno)
	})

	t.Run("missing nombre", func(t *testing.T) {
		svc := &fakeCatalogoService{}
		c := NewPersonaController(testLogger, svc)

		req := httptest.NewRequest(http.MethodPost, "/api/participante", strings.NewReader(`{"apellidoPat": "Luiselli"}`))
		rr := httptest.NewRecorder()
		c.CreatePersona(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestPersonaController_DeletePersona(t *testing.T) {
	t.Run("still assigned as talent", func(t *testing.T) {
		svc := &fakeCatalogoService{deleteErr: domain.ErrEnUso}
		c := NewPersonaController(testLogger, svc)

		req := httptest.NewRequest(http.MethodDelete, "/api/participante/5", nil)
		req.SetPathValue("id", "5")
		rr := httptest.NewRecorder()
		c.DeletePersona(rr, req)

		require.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("not found", func(t *testing.T) {
		svc := &fakeCatalogoService{deleteErr: domain.ErrNotFound}
		c := NewPersonaController(testLogger, svc)

		req := httptest.NewRequest(http.MethodDelete, "/api/participante/99", nil)
		req.SetPathValue("id", "99")
		rr := httptest.NewRecorder()
		c.DeletePersona(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}
