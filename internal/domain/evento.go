package domain

import (
	"context"
	"time"
)

// Evento represents a scheduled session at the fair (talk, workshop,
// presentation). All catalog references are optional; an event without a room
// or without an end time is allowed and is exempt from the overlap check.
type Evento struct {
	ID              int               `json:"id_evento"`
	Titulo          string            `json:"titulo"`
	Descripcion     *string           `json:"descripcion"`
	FechaHoraInicio time.Time         `json:"fecha_hora_inicio"`
	FechaHoraFin    *time.Time        `json:"fecha_hora_fin"`
	IDSala          *int              `json:"id_sala"`
	IDTipo          *int              `json:"id_tipo"`
	IDClasificacion *int              `json:"id_clasificacion"`
	IDCiclo         *int              `json:"id_ciclo"`
	IDExpositor     *int              `json:"id_expositor"`
	Talentos        []TalentoAsignado `json:"talentos_ids,omitempty"`
}

// TalentoAsignado links a person to an event in a given role (speaker,
// author, moderator). One entry per (event, person) pair is expected.
type TalentoAsignado struct {
	IDPersona int    `json:"id_persona"`
	Rol       string `json:"rol"`
}

// CarteleraTalento is one entry of the aggregated lista_talentos column in
// the cartelera view.
type CarteleraTalento struct {
	IDPersona int    `json:"id_persona"`
	Nombre    string `json:"nombre"`
	Rol       string `json:"rol"`
}

// CarteleraEvento is the denormalized listing row served to the admin table
// and the public schedule page. Field names mirror the column aliases of the
// cartelera_detallada view, which the frontend reads verbatim.
type CarteleraEvento struct {
	IDEvento        int                `json:"id_evento"`
	Titulo          string             `json:"titulo"`
	Descripcion     *string            `json:"descripcion"`
	FechaHoraInicio time.Time          `json:"fecha_hora_inicio"`
	FechaHoraFin    *time.Time         `json:"fecha_hora_fin"`
	IDSala          *int               `json:"id_sala"`
	IDTipo          *int               `json:"id_tipo"`
	IDClasificacion *int               `json:"id_clasificacion"`
	IDCiclo         *int               `json:"id_ciclo"`
	IDExpositor     *int               `json:"id_expositor"`
	Evento          string             `json:"Evento"`
	Lugar           *string            `json:"Lugar"`
	Tipo            *string            `json:"Tipo"`
	Clasificacion   *string            `json:"Clasificacion"`
	Ciclo           *string            `json:"Ciclo"`
	NombreTalento   *string            `json:"Nombre_Talento"`
	Rol             *string            `json:"Rol"`
	NombreExpositor *string            `json:"Nombre_Expositor"`
	ListaTalentos   []CarteleraTalento `json:"lista_talentos"`
}

// CarteleraFiltro narrows the public listing. Zero values mean no filtering.
type CarteleraFiltro struct {
	// Busqueda matches against the event title, case-insensitively.
	Busqueda string
	// Fecha keeps only events whose start instant falls on this calendar day.
	Fecha *time.Time
}

// EventoRepository defines the interface for event storage. Create and Update
// run the room-overlap check and the write inside a single transaction and
// return ErrSalaOcupada when the proposed window collides with another event
// in the same room.
type EventoRepository interface {
	ListCartelera(ctx context.Context, filtro CarteleraFiltro) ([]*CarteleraEvento, error)
	Create(ctx context.Context, evento *Evento) error
	Update(ctx context.Context, evento *Evento, replaceTalentos bool) error
	Delete(ctx context.Context, id int) error
}

// EventoService defines the business logic for managing events.
type EventoService interface {
	ListCartelera(ctx context.Context, filtro CarteleraFiltro) ([]*CarteleraEvento, error)
	CreateEvento(ctx context.Context, evento *Evento) error
	// UpdateEvento replaces the event's scalar fields. When replaceTalentos
	// is true the stored talent set is fully replaced by evento.Talentos;
	// when false the stored set is left untouched.
	UpdateEvento(ctx context.Context, evento *Evento, replaceTalentos bool) error
	DeleteEvento(ctx context.Context, id int) error
}
