package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/mercado-api/internal/domain"
)

// Validator valida DTOs con tags `validate` y traduce el primer fallo a *domain.ValidationError.
type Validator struct {
	v *validator.Validate
}

// New construye el validador con los tags propios (notblank) y soporte para decimal.Decimal.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Nombre de campo según el tag json, en PascalCase: "consumerId" -> "ConsumerId".
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return domain.UpperFirst(name)
	})

	_ = v.RegisterValidation("notblank", notBlank)

	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	return &Validator{v: v}
}

// Struct valida s. Devuelve nil o un *domain.ValidationError con el primer campo inválido.
func (val *Validator) Struct(s any) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return &domain.ValidationError{Field: fe.Field(), Message: message(fe)}
	}
	var invalid *validator.InvalidValidationError
	if errors.As(err, &invalid) {
		return &domain.ValidationError{Message: "el cuerpo de la petición es obligatorio"}
	}
	return &domain.ValidationError{Message: err.Error()}
}

// notBlank exige al menos un carácter que no sea espacio.
func notBlank(fl validator.FieldLevel) bool {
	field := fl.Field()
	if field.Kind() != reflect.String {
		return !field.IsZero()
	}
	return strings.TrimSpace(field.String()) != ""
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "es obligatorio y no puede estar vacío"
	case "gt":
		return "debe ser mayor que " + fe.Param()
	case "gte":
		return "debe ser mayor o igual que " + fe.Param()
	case "lt":
		return "debe ser menor que " + fe.Param()
	case "lte":
		return "debe ser menor o igual que " + fe.Param()
	case "min":
		if fe.Kind() == reflect.String {
			return "debe tener al menos " + fe.Param() + " caracteres"
		}
		return "debe ser al menos " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return "debe tener como máximo " + fe.Param() + " caracteres"
		}
		return "debe ser como máximo " + fe.Param()
	case "email":
		return "no es un correo electrónico válido"
	case "url":
		return "no es una URL válida"
	case "oneof":
		return "debe ser uno de: " + fe.Param()
	default:
		return "valor inválido"
	}
}
