package controllers

import (
	"log/slog"
	"net/http"

	"ferialibro/internal/delivery/http/helpers"
	"ferialibro/internal/domain"
)

// NombreRequest is the request body for the name-only catalogs
// (sala, tipo, ciclo).
type NombreRequest struct {
	Nombre string `json:"nombre"`
}

func (n NombreRequest) Validate() []string {
	if n.Nombre == "" {
		return []string{"el nombre es obligatorio"}
	}
	return nil
}

// RangoRequest is the request body for clasificacion.
type RangoRequest struct {
	Rango string `json:"rango"`
}

func (n RangoRequest) Validate() []string {
	if n.Rango == "" {
		return []string{"el rango es obligatorio"}
	}
	return nil
}

// CatalogoController serves the CRUD endpoints of the four name-only
// catalogs. The operations are symmetric; only the entity shapes differ.
type CatalogoController struct {
	Logger  *slog.Logger
	Service domain.CatalogoService
}

func NewCatalogoController(logger *slog.Logger, svc domain.CatalogoService) *CatalogoController {
	return &CatalogoController{
		Logger:  logger,
		Service: svc,
	}
}

// ListSalas godoc
// @Summary List rooms
// @Tags catalogo
// @Produce json
// @Success 200 {object} helpers.APIResponse
// @Failure 500 {object} helpers.APIResponse
// @Router /api/salas [get]
func (c *CatalogoController) ListSalas(w http.ResponseWriter, r *http.Request) {
	salas, err := c.Service.ListSalas(r.Context())
	if err != nil {
		writeDomainError(w, r, c.Logger, err, "sala no encontrada")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, salas)
}

// CreateSala godoc
// @Summary Create a room
// @Tags catalogo
// @Accept json
// @Produce json
// @Param sala body NombreRequest true "Room name"
// @Success 201 {object} helpers.APIResponse
// @Failure 400 {object} helpers.APIResponse
// @Router /api/salas [post]
func (c *CatalogoController) CreateSala(w http.ResponseWriter, r *http.Request) {
	var req NombreRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	sala := &domain.Sala{Nombre: req.Nombre}
	if err := c.Service.CreateSala(r.Context(), sala); err != nil {
		writeDomainError(w, r, c.Logger, err, "sala no encontrada")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, sala)
}

// UpdateSala godoc
// @Summary Update a room
// @Tags catalogo
// @Accept json
// @Produce json
// @Param id path int true "Room id"
// @Param sala body NombreRequest true "Room name"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Router /api/salas/{id} [put]
func (c *CatalogoController) UpdateSala(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req NombreRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.UpdateSala(r.Context(), &domain.Sala{ID: id, Nombre: req.Nombre}); err != nil {
		writeDomainError(w, r, c.Logger, err, "sala no encontrada")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Sala actualizada correctamente"})
}

// DeleteSala godoc
// @Summary Delete a room
// @Description Fails with 409 when events are still assigned to the room.
// @Tags catalogo
// @Produce json
// @Param id path int true "Room id"
// @Success 200 {object} helpers.APIResponse
// @Failure 404 {object} helpers.APIResponse
// @Failure 409 {object} helpers.APIResponse
// @Router /api/salas/{id} [delete]
func (c *CatalogoController) DeleteSala(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteSala(r.Context(), id); err != nil {
		writeDomainError(w, r, c.Logger, err, "sala no encontrada o ya borrada")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Sala eliminada correctamente"})
}

func (c *CatalogoController) ListTipos(w http.ResponseWriter, r *http.Request) {
	tipos, err := c.Service.ListTipos(r.Context())
	if err != nil {
		writeDomainError(w, r, c.Logger, err, "tipo no encontrado")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, tipos)
}

func (c *CatalogoController) CreateTipo(w http.ResponseWriter, r *http.Request) {
	var req NombreRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	tipo := &domain.TipoEvento{Nombre: req.Nombre}
	if err := c.Service.CreateTipo(r.Context(), tipo); err != nil {
		writeDomainError(w, r, c.Logger, err, "tipo no encontrado")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, tipo)
}

func (c *CatalogoController) UpdateTipo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req NombreRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.UpdateTipo(r.Context(), &domain.TipoEvento{ID: id, Nombre: req.Nombre}); err != nil {
		writeDomainError(w, r, c.Logger, err, "tipo no encontrado")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Tipo actualizado correctamente"})
}

func (c *CatalogoController) DeleteTipo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteTipo(r.Context(), id); err != nil {
		writeDomainError(w, r, c.Logger, err, "tipo no encontrado o ya borrado")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Tipo eliminado correctamente"})
}

func (c *CatalogoController) ListClasificaciones(w http.ResponseWriter, r *http.Request) {
	clasificaciones, err := c.Service.ListClasificaciones(r.Context())
	if err != nil {
		writeDomainError(w, r, c.Logger, err, "clasificación no encontrada")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, clasificaciones)
}

func (c *CatalogoController) CreateClasificacion(w http.ResponseWriter, r *http.Request) {
	var req RangoRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	clasificacion := &domain.Clasificacion{Rango: req.Rango}
	if err := c.Service.CreateClasificacion(r.Context(), clasificacion); err != nil {
		writeDomainError(w, r, c.Logger, err, "clasificación no encontrada")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, clasificacion)
}

func (c *CatalogoController) UpdateClasificacion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req RangoRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.UpdateClasificacion(r.Context(), &domain.Clasificacion{ID: id, Rango: req.Rango}); err != nil {
		writeDomainError(w, r, c.Logger, err, "clasificación no encontrada")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Clasificación actualizada correctamente"})
}

func (c *CatalogoController) DeleteClasificacion(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteClasificacion(r.Context(), id); err != nil {
		writeDomainError(w, r, c.Logger, err, "clasificación no encontrada o ya borrada")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Clasificación eliminada correctamente"})
}

func (c *CatalogoController) ListCiclos(w http.ResponseWriter, r *http.Request) {
	ciclos, err := c.Service.ListCiclos(r.Context())
	if err != nil {
		writeDomainError(w, r, c.Logger, err, "ciclo no encontrado")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, ciclos)
}

func (c *CatalogoController) CreateCiclo(w http.ResponseWriter, r *http.Request) {
	var req NombreRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	ciclo := &domain.Ciclo{Nombre: req.Nombre}
	if err := c.Service.CreateCiclo(r.Context(), ciclo); err != nil {
		writeDomainError(w, r, c.Logger, err, "ciclo no encontrado")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, ciclo)
}

func (c *CatalogoController) UpdateCiclo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req NombreRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.UpdateCiclo(r.Context(), &domain.Ciclo{ID: id, Nombre: req.Nombre}); err != nil {
		writeDomainError(w, r, c.Logger, err, "ciclo no encontrado")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Ciclo actualizado correctamente"})
}

func (c *CatalogoController) DeleteCiclo(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := c.Service.DeleteCiclo(r.Context(), id); err != nil {
		writeDomainError(w, r, c.Logger, err, "ciclo no encontrado o ya borrado")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, MessageResponse{Message: "Ciclo eliminado correctamente"})
}
