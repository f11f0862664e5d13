package entity

// Form formulario (pantalla) de la aplicación sujeto a permisos.
type Form struct {
	ID          int64
	Name        string
	Description string
	URL         string
}
