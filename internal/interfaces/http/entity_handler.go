package http

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/mercado-api/internal/application/dto"
	"github.com/jhoicas/mercado-api/internal/domain"
)

// EntityService operaciones que el handler necesita del caso de uso genérico.
type EntityService[D any] interface {
	Entity() string
	SoftDeletable() bool
	List(ctx context.Context) ([]D, error)
	Get(ctx context.Context, key domain.Key) (*D, error)
	Create(ctx context.Context, in *D) (*D, error)
	Update(ctx context.Context, key domain.Key, in *D) (*D, error)
	DeleteLogic(ctx context.Context, key domain.Key) error
	DeletePersistence(ctx context.Context, key domain.Key) error
}

// Keyed DTO que conoce su clave (dto.Identity o la clave compuesta de dto.Review).
type Keyed[D any] interface {
	*D
	Key() domain.Key
	SetKey(domain.Key)
}

// EntityHandler maneja las peticiones HTTP CRUD de una entidad.
type EntityHandler[D any, P Keyed[D]] struct {
	svc    EntityService[D]
	params []string // parámetros de ruta que forman la clave, en orden
}

// NewEntityHandler construye el handler. params: "id" o "consumerId", "productId".
func NewEntityHandler[D any, P Keyed[D]](svc EntityService[D], params ...string) *EntityHandler[D, P] {
	if len(params) == 0 {
		params = []string{"id"}
	}
	return &EntityHandler[D, P]{svc: svc, params: params}
}

// Mount registra las rutas bajo r:
//
//	GET    /                          List
//	GET    /:key                      Get
//	POST   /                          Create
//	PUT    /:key                      Update
//	DELETE /:key                      DeletePersistence
//	PATCH  /eliminar-logico/:key      DeleteLogic (solo entidades con borrado lógico)
//	POST   /:key                      CreateAt (solo claves compuestas)
func (h *EntityHandler[D, P]) Mount(r fiber.Router) {
	keyPath := h.keyPath()
	r.Get("/", h.List)
	r.Post("/", h.Create)
	if len(h.params) > 1 {
		r.Post(keyPath, h.CreateAt)
	}
	if h.svc.SoftDeletable() {
		r.Patch("/eliminar-logico"+keyPath, h.DeleteLogic)
	}
	r.Get(keyPath, h.Get)
	r.Put(keyPath, h.Update)
	r.Delete(keyPath, h.DeletePersistence)
}

// List GET / -> 200 + arreglo.
func (h *EntityHandler[D, P]) List(c *fiber.Ctx) error {
	out, err := h.svc.List(c.UserContext())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Get GET /:key -> 200 + objeto.
func (h *EntityHandler[D, P]) Get(c *fiber.Ctx) error {
	key, err := h.key(c)
	if err != nil {
		return respondError(c, err)
	}
	out, err := h.svc.Get(c.UserContext(), key)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Create POST / -> 201 + objeto, con Location apuntando al recurso creado.
func (h *EntityHandler[D, P]) Create(c *fiber.Ctx) error {
	in := new(D)
	if err := c.BodyParser(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidBody, Message: "cuerpo inválido"})
	}
	return h.create(c, in, strings.TrimRight(c.Path(), "/"))
}

// CreateAt POST /:key -> 201 + objeto. La clave compuesta de la ruta prevalece sobre la del cuerpo.
func (h *EntityHandler[D, P]) CreateAt(c *fiber.Ctx) error {
	key, err := h.key(c)
	if err != nil {
		return respondError(c, err)
	}
	in := new(D)
	if err := c.BodyParser(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidBody, Message: "cuerpo inválido"})
	}
	P(in).SetKey(key)
	base := strings.TrimSuffix(strings.TrimRight(c.Path(), "/"), "/"+keySegments(key))
	return h.create(c, in, base)
}

func (h *EntityHandler[D, P]) create(c *fiber.Ctx, in *D, base string) error {
	out, err := h.svc.Create(c.UserContext(), in)
	if err != nil {
		return respondError(c, err)
	}
	c.Location(base + "/" + keySegments(P(out).Key()))
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update PUT /:key -> 200 + objeto actualizado. La clave de la ruta prevalece sobre la del cuerpo.
func (h *EntityHandler[D, P]) Update(c *fiber.Ctx) error {
	key, err := h.key(c)
	if err != nil {
		return respondError(c, err)
	}
	in := new(D)
	if err := c.BodyParser(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: CodeInvalidBody, Message: "cuerpo inválido"})
	}
	P(in).SetKey(key)
	out, err := h.svc.Update(c.UserContext(), key, in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// DeleteLogic PATCH /eliminar-logico/:key -> 200 + mensaje.
func (h *EntityHandler[D, P]) DeleteLogic(c *fiber.Ctx) error {
	key, err := h.key(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.svc.DeleteLogic(c.UserContext(), key); err != nil {
		return respondError(c, err)
	}
	return c.JSON(dto.MessageResponse{Message: fmt.Sprintf("%s con %s eliminado lógicamente", h.svc.Entity(), key)})
}

// DeletePersistence DELETE /:key -> 204.
func (h *EntityHandler[D, P]) DeletePersistence(c *fiber.Ctx) error {
	key, err := h.key(c)
	if err != nil {
		return respondError(c, err)
	}
	if err := h.svc.DeletePersistence(c.UserContext(), key); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *EntityHandler[D, P]) keyPath() string {
	var b strings.Builder
	for _, p := range h.params {
		b.WriteString("/:")
		b.WriteString(p)
	}
	return b.String()
}

// key lee la clave de la ruta; rechaza valores no enteros antes de llegar al servicio.
func (h *EntityHandler[D, P]) key(c *fiber.Ctx) (domain.Key, error) {
	names := make([]string, len(h.params))
	values := make([]int64, len(h.params))
	for i, p := range h.params {
		raw := c.Params(p)
		v, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return domain.Key{}, &domain.ValidationError{Field: domain.UpperFirst(p), Message: fmt.Sprintf("%q no es un identificador entero", raw)}
		}
		values[i] = v
		if len(h.params) == 1 {
			names[i] = "Id"
		} else {
			names[i] = domain.UpperFirst(p)
		}
	}
	return domain.NewKey(names, values), nil
}

func keySegments(k domain.Key) string {
	vals := k.Values()
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.FormatInt(v, 10)
	}
	return strings.Join(parts, "/")
}
