package entity

// Permission acción permitida sobre un formulario (ej. leer, crear, eliminar).
type Permission struct {
	ID          int64
	Name        string
	Description string
}
