package dto

import (
	"time"

	"github.com/jhoicas/mercado-api/internal/domain"
)

// ErrorResponse cuerpo de error HTTP. Field se informa en errores de validación.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

// MessageResponse respuesta con un mensaje informativo (ej. eliminación lógica).
type MessageResponse struct {
	Message string `json:"message"`
}

// Identity clave sustituta embebida en los DTO de todas las entidades salvo Review.
type Identity struct {
	ID int64 `json:"id"`
}

// Key devuelve la clave del registro.
func (i Identity) Key() domain.Key { return domain.SurrogateKey(i.ID) }

// SetKey asigna la clave (ruta o valor generado).
func (i *Identity) SetKey(k domain.Key) {
	if v := k.Values(); len(v) == 1 {
		i.ID = v[0]
	}
}

// Audit marca de creación asignada por el servidor; se ignora en la entrada.
type Audit struct {
	CreatedAt *time.Time `json:"createdAt,omitempty"`
}

// Stamp devuelve un Audit con el instante dado (nil si es cero).
func Stamp(t time.Time) Audit {
	if t.IsZero() {
		return Audit{}
	}
	return Audit{CreatedAt: &t}
}
