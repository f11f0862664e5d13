package dto

// Form formulario de la aplicación.
type Form struct {
	Identity
	Name        string `json:"name" validate:"notblank"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

// Module agrupación de formularios.
type Module struct {
	Identity
	Name        string `json:"name" validate:"notblank"`
	Description string `json:"description"`
}

// Permission acción permitida sobre un formulario.
type Permission struct {
	Identity
	Name        string `json:"name" validate:"notblank"`
	Description string `json:"description"`
}

// Persona datos personales.
type Persona struct {
	Identity
	Name        string `json:"name" validate:"notblank"`
	Email       string `json:"email" validate:"notblank"`
	PhoneNumber string `json:"phoneNumber" validate:"notblank"`
}

// User cuenta de acceso.
type User struct {
	Identity
	UserName        string `json:"userName" validate:"notblank"`
	ProfilePhotoURL string `json:"profilePhotoUrl"`
	Active          bool   `json:"active"`
	Audit
}

// Rol agrupación de permisos.
type Rol struct {
	Identity
	Name string `json:"name" validate:"notblank"`
	Code string `json:"code"`
	Audit
}

// RolUser asignación de rol a usuario.
type RolUser struct {
	Identity
	RolID  int64 `json:"rolId" validate:"gt=0"`
	UserID int64 `json:"userId" validate:"gt=0"`
	Audit
}

// FormModule pertenencia de formulario a módulo.
type FormModule struct {
	Identity
	FormID   int64 `json:"formId" validate:"gt=0"`
	ModuleID int64 `json:"moduleId" validate:"gt=0"`
	Audit
}

// RolFormPermission permiso de un rol sobre un formulario.
type RolFormPermission struct {
	Identity
	RolID        int64 `json:"rolId" validate:"gt=0"`
	FormID       int64 `json:"formId" validate:"gt=0"`
	PermissionID int64 `json:"permissionId" validate:"gt=0"`
	Audit
}
