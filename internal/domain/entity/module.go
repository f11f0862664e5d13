package entity

// Module agrupación de formularios.
type Module struct {
	ID          int64
	Name        string
	Description string
}
