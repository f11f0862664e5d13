package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jhoicas/mercado-api/internal/domain"
	"github.com/jhoicas/mercado-api/internal/domain/repository"
	"github.com/jhoicas/mercado-api/pkg/logger"
)

// StorageService nombre del servicio externo informado en ExternalServiceError.
const StorageService = "Base de datos"

var verbs = map[string]string{
	"list":         "listar",
	"get":          "consultar",
	"create":       "crear",
	"update":       "actualizar",
	"delete_logic": "eliminar lógicamente",
	"delete":       "eliminar",
}

// Validator valida un DTO y devuelve *domain.ValidationError con el primer campo inválido.
type Validator interface {
	Struct(s any) error
}

// Observer recibe el resultado de cada operación (métricas). Opcional.
type Observer interface {
	ObserveOperation(entity, op, outcome string)
}

// Definition describe cómo una entidad pasa entre su DTO (D) y su registro persistido (T).
type Definition[D any, T any] struct {
	Entity   string                      // nombre en mensajes: "Category"
	ToRecord func(in *D) *T              // DTO -> registro nuevo
	ToDTO    func(rec *T) D              // registro -> DTO
	Merge    func(dst *T, src *D)        // copia solo los campos mutables
	Stamp    func(rec *T, now time.Time) // marca de creación; nil si la entidad no tiene
}

// EntityService casos de uso CRUD genéricos para una entidad.
type EntityService[D any, T any] struct {
	store repository.Store[T]
	def   Definition[D, T]
	val   Validator
	obs   Observer
	log   *logger.Logger
	now   func() time.Time
}

// NewEntityService construye el servicio. obs puede ser nil.
func NewEntityService[D any, T any](store repository.Store[T], def Definition[D, T], val Validator, obs Observer, log *logger.Logger) *EntityService[D, T] {
	return &EntityService[D, T]{
		store: store,
		def:   def,
		val:   val,
		obs:   obs,
		log:   log.Named(def.Entity),
		now:   time.Now,
	}
}

// WithClock reemplaza el reloj (tests).
func (s *EntityService[D, T]) WithClock(now func() time.Time) *EntityService[D, T] {
	s.now = now
	return s
}

// Entity nombre de la entidad.
func (s *EntityService[D, T]) Entity() string { return s.def.Entity }

// SoftDeletable indica si la entidad admite eliminación lógica.
func (s *EntityService[D, T]) SoftDeletable() bool { return s.store.SoftDeletable() }

// List devuelve todos los registros activos.
func (s *EntityService[D, T]) List(ctx context.Context) ([]D, error) {
	recs, err := s.store.FindAll(ctx)
	if err != nil {
		return nil, s.fail("list", err)
	}
	out := make([]D, 0, len(recs))
	for _, r := range recs {
		out = append(out, s.def.ToDTO(r))
	}
	s.done("list", "ok")
	return out, nil
}

// Get obtiene un registro activo por clave.
func (s *EntityService[D, T]) Get(ctx context.Context, key domain.Key) (*D, error) {
	if err := s.checkKey("get", key); err != nil {
		return nil, err
	}
	rec, err := s.find(ctx, "get", key)
	if err != nil {
		return nil, err
	}
	out := s.def.ToDTO(rec)
	s.done("get", "ok")
	return &out, nil
}

// Create valida la entrada, asigna la marca de creación e inserta.
func (s *EntityService[D, T]) Create(ctx context.Context, in *D) (*D, error) {
	if err := s.validate("create", in); err != nil {
		return nil, err
	}
	rec := s.def.ToRecord(in)
	if s.def.Stamp != nil {
		s.def.Stamp(rec, s.now().UTC())
	}
	saved, err := s.store.Insert(ctx, rec)
	if err != nil {
		return nil, s.fail("create", err)
	}
	out := s.def.ToDTO(saved)
	s.log.Debug().Msg("registro creado")
	s.done("create", "ok")
	return &out, nil
}

// Update aplica los campos mutables de in sobre el registro activo identificado por key.
// Los campos que el DTO no gobierna (clave, creación) se conservan.
func (s *EntityService[D, T]) Update(ctx context.Context, key domain.Key, in *D) (*D, error) {
	if err := s.checkKey("update", key); err != nil {
		return nil, err
	}
	if err := s.validate("update", in); err != nil {
		return nil, err
	}
	rec, err := s.find(ctx, "update", key)
	if err != nil {
		return nil, err
	}
	s.def.Merge(rec, in)

	ok, err := s.store.Update(ctx, rec)
	if err != nil {
		return nil, s.fail("update", err)
	}
	if !ok {
		return nil, s.notFound("update", key)
	}
	out := s.def.ToDTO(rec)
	s.done("update", "ok")
	return &out, nil
}

// DeleteLogic marca el registro como eliminado; deja de ser visible para List y Get.
func (s *EntityService[D, T]) DeleteLogic(ctx context.Context, key domain.Key) error {
	if !s.store.SoftDeletable() {
		s.done("delete_logic", "unsupported")
		return domain.ErrSoftDeleteUnsupported
	}
	if err := s.checkKey("delete_logic", key); err != nil {
		return err
	}
	if _, err := s.find(ctx, "delete_logic", key); err != nil {
		return err
	}
	ok, err := s.store.SoftDelete(ctx, key, s.now().UTC())
	if err != nil {
		return s.fail("delete_logic", err)
	}
	if !ok {
		return s.notFound("delete_logic", key)
	}
	s.done("delete_logic", "ok")
	return nil
}

// DeletePersistence elimina físicamente el registro activo.
func (s *EntityService[D, T]) DeletePersistence(ctx context.Context, key domain.Key) error {
	if err := s.checkKey("delete", key); err != nil {
		return err
	}
	if _, err := s.find(ctx, "delete", key); err != nil {
		return err
	}
	ok, err := s.store.HardDelete(ctx, key)
	if err != nil {
		return s.fail("delete", err)
	}
	if !ok {
		return s.notFound("delete", key)
	}
	s.done("delete", "ok")
	return nil
}

func (s *EntityService[D, T]) find(ctx context.Context, op string, key domain.Key) (*T, error) {
	rec, err := s.store.FindByID(ctx, key)
	if err != nil {
		return nil, s.fail(op, err)
	}
	if rec == nil {
		return nil, s.notFound(op, key)
	}
	return rec, nil
}

func (s *EntityService[D, T]) checkKey(op string, key domain.Key) error {
	if key.Valid() {
		return nil
	}
	err := &domain.ValidationError{Field: key.Field(), Message: "debe ser mayor que 0"}
	s.log.Warn().Str("op", op).Str("key", key.String()).Msg("clave inválida")
	s.done(op, "invalid")
	return err
}

func (s *EntityService[D, T]) validate(op string, in *D) error {
	if in == nil {
		s.done(op, "invalid")
		return &domain.ValidationError{Message: "el cuerpo de la petición es obligatorio"}
	}
	if err := s.val.Struct(in); err != nil {
		var verr *domain.ValidationError
		if !errors.As(err, &verr) {
			verr = &domain.ValidationError{Message: err.Error()}
		}
		s.log.Warn().Str("op", op).Str("field", verr.Field).Msg(verr.Message)
		s.done(op, "invalid")
		return verr
	}
	return nil
}

func (s *EntityService[D, T]) notFound(op string, key domain.Key) error {
	s.log.Info().Str("op", op).Str("key", key.String()).Msg("registro no encontrado")
	s.done(op, "not_found")
	return &domain.NotFoundError{Entity: s.def.Entity, Key: key}
}

// fail traduce errores del almacenamiento. ErrDuplicate pasa tal cual; el resto se envuelve
// como ExternalServiceError y la causa solo queda en el log.
func (s *EntityService[D, T]) fail(op string, err error) error {
	switch {
	case errors.Is(err, domain.ErrDuplicate):
		s.log.Info().Str("op", op).Msg("registro duplicado")
		s.done(op, "duplicate")
		return domain.ErrDuplicate
	case errors.Is(err, domain.ErrSoftDeleteUnsupported):
		s.done(op, "unsupported")
		return err
	}
	s.log.Error().Err(err).Str("op", op).Msg("fallo de almacenamiento")
	s.done(op, "error")
	return &domain.ExternalServiceError{
		Service: StorageService,
		Message: fmt.Sprintf("no se pudo %s %s", verbs[op], s.def.Entity),
		Err:     err,
	}
}

func (s *EntityService[D, T]) done(op, outcome string) {
	if s.obs != nil {
		s.obs.ObserveOperation(s.def.Entity, op, outcome)
	}
}
