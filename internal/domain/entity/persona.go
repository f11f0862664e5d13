package entity

// Persona datos personales asociados a un usuario.
type Persona struct {
	ID          int64
	Name        string
	Email       string
	PhoneNumber string
}
