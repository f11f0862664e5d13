package domain

import (
	"fmt"
	"strings"
	"unicode"
)

// Key identifica un registro: clave sustituta (Id) o compuesta (ConsumerId, ProductId).
// Names y Values van en el mismo orden que las columnas de la clave primaria.
type Key struct {
	names  []string
	values []int64
}

// SurrogateKey clave generada por el almacenamiento.
func SurrogateKey(id int64) Key {
	return Key{names: []string{"Id"}, values: []int64{id}}
}

// CompositeKey clave natural de Review.
func CompositeKey(consumerID, productID int64) Key {
	return Key{names: []string{"ConsumerId", "ProductId"}, values: []int64{consumerID, productID}}
}

// NewKey construye una clave arbitraria; names y values deben tener la misma longitud.
func NewKey(names []string, values []int64) Key {
	if len(names) != len(values) {
		panic(fmt.Sprintf("domain: clave con %d nombres y %d valores", len(names), len(values)))
	}
	return Key{names: append([]string(nil), names...), values: append([]int64(nil), values...)}
}

func (k Key) Names() []string { return append([]string(nil), k.names...) }

func (k Key) Values() []int64 { return append([]int64(nil), k.values...) }

func (k Key) Len() int { return len(k.values) }

func (k Key) IsComposite() bool { return len(k.values) > 1 }

// Valid informa si todas las partes de la clave son positivas.
func (k Key) Valid() bool {
	if len(k.values) == 0 {
		return false
	}
	for _, v := range k.values {
		if v <= 0 {
			return false
		}
	}
	return true
}

// Field nombre del campo reportado en errores de validación, en PascalCase como los campos
// del cuerpo: "Id" o "ConsumerId/ProductId".
func (k Key) Field() string {
	if !k.IsComposite() {
		return "Id"
	}
	return strings.Join(k.names, "/")
}

// String "ID 5" o "ConsumerId=5, ProductId=9".
func (k Key) String() string {
	if !k.IsComposite() {
		if len(k.values) == 0 {
			return "ID <vacío>"
		}
		return fmt.Sprintf("ID %d", k.values[0])
	}
	parts := make([]string, len(k.values))
	for i, v := range k.values {
		parts[i] = fmt.Sprintf("%s=%d", k.names[i], v)
	}
	return strings.Join(parts, ", ")
}

// UpperFirst "consumerId" -> "ConsumerId".
func UpperFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
