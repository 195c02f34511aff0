package domain

import "context"

// Sala is a physical venue that hosts at most one event per overlapping time
// window.
type Sala struct {
	ID     int    `json:"id_sala"`
	Nombre string `json:"nombre"`
}

// TipoEvento categorizes an event (talk, workshop, signing).
type TipoEvento struct {
	ID     int    `json:"id_tipo"`
	Nombre string `json:"nombre"`
}

// Clasificacion is an audience rating (all ages, teens, adults).
type Clasificacion struct {
	ID    int    `json:"id_clasificacion"`
	Rango string `json:"rango"`
}

// Ciclo groups events into a thematic series.
type Ciclo struct {
	ID     int    `json:"id_ciclo"`
	Nombre string `json:"nombre"`
}

// Expositor is an organization (publisher, institution) that can be attached
// to an event and may have a stand at the fair.
type Expositor struct {
	ID            int     `json:"id_expositor"`
	Nombre        string  `json:"nombre"`
	TipoExpositor string  `json:"tipo_expositor"`
	NumStand      *string `json:"numStand"`
}

// Persona is someone who can appear as talent on events.
type Persona struct {
	ID              int     `json:"id_persona"`
	Nombre          string  `json:"nombre"`
	ApellidoPaterno *string `json:"apellidoPaterno"`
	ApellidoMaterno *string `json:"apellidoMaterno"`
}

// SalaRepository defines the interface for room storage. Delete returns
// ErrEnUso when events still reference the room.
type SalaRepository interface {
	List(ctx context.Context) ([]*Sala, error)
	Create(ctx context.Context, sala *Sala) error
	Update(ctx context.Context, sala *Sala) error
	Delete(ctx context.Context, id int) error
}

// TipoEventoRepository defines the interface for event-type storage.
type TipoEventoRepository interface {
	List(ctx context.Context) ([]*TipoEvento, error)
	Create(ctx context.Context, tipo *TipoEvento) error
	Update(ctx context.Context, tipo *TipoEvento) error
	Delete(ctx context.Context, id int) error
}

// ClasificacionRepository defines the interface for classification storage.
type ClasificacionRepository interface {
	List(ctx context.Context) ([]*Clasificacion, error)
	Create(ctx context.Context, clasificacion *Clasificacion) error
	Update(ctx context.Context, clasificacion *Clasificacion) error
	Delete(ctx context.Context, id int) error
}

// CicloRepository defines the interface for cycle storage.
type CicloRepository interface {
	List(ctx context.Context) ([]*Ciclo, error)
	Create(ctx context.Context, ciclo *Ciclo) error
	Update(ctx context.Context, ciclo *Ciclo) error
	Delete(ctx context.Context, id int) error
}

// ExpositorRepository defines the interface for exhibitor storage.
type ExpositorRepository interface {
	List(ctx context.Context) ([]*Expositor, error)
	Create(ctx context.Context, expositor *Expositor) error
	Update(ctx context.Context, expositor *Expositor) error
	Delete(ctx context.Context, id int) error
}

// PersonaRepository defines the interface for person storage.
type PersonaRepository interface {
	List(ctx context.Context) ([]*Persona, error)
	Create(ctx context.Context, persona *Persona) error
	Update(ctx context.Context, persona *Persona) error
	Delete(ctx context.Context, id int) error
}

// CatalogoService defines the business logic for the six lookup catalogs.
// The operations are symmetric across entities; only the field shapes differ.
type CatalogoService interface {
	ListSalas(ctx context.Context) ([]*Sala, error)
	CreateSala(ctx context.Context, sala *Sala) error
	UpdateSala(ctx context.Context, sala *Sala) error
	DeleteSala(ctx context.Context, id int) error

	ListTipos(ctx context.Context) ([]*TipoEvento, error)
	CreateTipo(ctx context.Context, tipo *TipoEvento) error
	UpdateTipo(ctx context.Context, tipo *TipoEvento) error
	DeleteTipo(ctx context.Context, id int) error

	ListClasificaciones(ctx context.Context) ([]*Clasificacion, error)
	CreateClasificacion(ctx context.Context, clasificacion *Clasificacion) error
	UpdateClasificacion(ctx context.Context, clasificacion *Clasificacion) error
	DeleteClasificacion(ctx context.Context, id int) error

	ListCiclos(ctx context.Context) ([]*Ciclo, error)
	CreateCiclo(ctx context.Context, ciclo *Ciclo) error
	UpdateCiclo(ctx context.Context, ciclo *Ciclo) error
	DeleteCiclo(ctx context.Context, id int) error

	ListExpositores(ctx context.Context) ([]*Expositor, error)
	CreateExpositor(ctx context.Context, expositor *Expositor) error
	UpdateExpositor(ctx context.Context, expositor *Expositor) error
	DeleteExpositor(ctx context.Context, id int) error

	ListPersonas(ctx context.Context) ([]*Persona, error)
	CreatePersona(ctx context.Context, persona *Persona) error
	UpdatePersona(ctx context.Context, persona *Persona) error
	DeletePersona(ctx context.Context, id int) error
}
