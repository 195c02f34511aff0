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

func TestExpositorController_CreateExpositor(t *testing.T) {
	t.Run("created with optional stand", func(t *testing.T) {
		svc := &fakeCatalogoService{createdID: 8}
		c := NewExpositorController(testLogger, svc)

		body := `{"nombre": "Editorial Andamio", "tipo_expositor": "Editorial", "numStand": "B-12"}`
		req := httptest.NewRequest(http.MethodPost, "/api/expositor", strings.NewReader(body))
		rr := httptest.NewRecorder()
		c.CreateExpositor(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		env := decodeEnvelope(t, rr)
		var expositor domain.Expositor
		require.NoError(t, json.Unmarshal(env.Data, &expositor))
		assert.Equal(t, 8, expositor.ID)
		require.NotNil(t, expositor.NumStand)
		assert.Equal(t, "B-12", *expositor.NumStand)
	})

	t.Run("missing giro", func(t *testing.T) {
		svc := &fakeCatalogoService{}
		c := NewExpositorController(testLogger, svc)

		req := httptest.NewRequest(http.MethodPost, "/api/expositor", strings.NewReader(`{"nombre": "Editorial Andamio"}`))
		rr := httptest.NewRecorder()
		c.CreateExpositor(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestExpositorController_DeleteExpositor(t *testing.T) {
	t.Run("in use", func(t *testing.T) {
		svc := &fakeCatalogoService{deleteErr: domain.ErrEnUso}
		c := NewExpositorController(testLogger, svc)

		req := httptest.NewRequest(http.MethodDelete, "/api/expositor/3", nil)
		req.SetPathValue("id", "3")
		rr := httptest.NewRecorder()
		c.DeleteExpositor(rr, req)

		require.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("success", func(t *testing.T) {
		svc := &fakeCatalogoService{}
		c := NewExpositorController(testLogger, svc)

		req := httptest.NewRequest(http.MethodDelete, "/api/expositor/3", nil)
		req.SetPathValue("id", "3")
		rr := httptest.NewRecorder()
		c.DeleteExpositor(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, 3, svc.lastDeletedID)
	})
}
