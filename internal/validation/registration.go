package validation

import (
	"errors"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Field identifies one registration form field.
type Field string

const (
	FieldName            Field = "name"
	FieldEmail           Field = "email"
	FieldPassword        Field = "password"
	FieldConfirmPassword Field = "confirmPassword"
)

// Fields lists the form fields in display order.
var Fields = []Field{FieldName, FieldEmail, FieldPassword, FieldConfirmPassword}

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// Registration is the value set a submit validates as a whole.
type Registration struct {
	Name            string `validate:"person_name"`
	Email           string `validate:"loose_email"`
	Password        string `validate:"strong_password"`
	ConfirmPassword string `validate:"eqfield=Password"`
}

// Result maps every field to its validity.
type Result map[Field]bool

// Valid reports whether every field passed.
func (r Result) Valid() bool {
	for _, field := range Fields {
		if !r[field] {
			return false
		}
	}
	return true
}

// Invalid returns the failing fields in display order.
func (r Result) Invalid() []Field {
	var out []Field
	for _, field := range Fields {
		if !r[field] {
			out = append(out, field)
		}
	}
	return out
}

var structFieldNames = map[string]Field{
	"Name":            FieldName,
	"Email":           FieldEmail,
	"Password":        FieldPassword,
	"ConfirmPassword": FieldConfirmPassword,
}

// validatorInstance configures the shared validator with the form's custom tags.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("person_name", func(fl validator.FieldLevel) bool {
			return ValidName(fl.Field().String())
		})

		_ = v.RegisterValidation("loose_email", func(fl validator.FieldLevel) bool {
			return ValidEmail(fl.Field().String())
		})

		_ = v.RegisterValidation("strong_password", func(fl validator.FieldLevel) bool {
			return ValidPassword(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Check validates every field of r, including empty ones, and never stops at
// the first failure.
func Check(r Registration) Result {
	result := Result{}
	for _, field := range Fields {
		result[field] = true
	}

	err := validatorInstance().Struct(r)
	if err == nil {
		return result
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		for _, field := range Fields {
			result[field] = false
		}
		return result
	}
	for _, fe := range ves {
		if field, ok := structFieldNames[fe.StructField()]; ok {
			result[field] = false
		}
	}
	return result
}

// CheckField validates a single field against the current registration values.
func CheckField(r Registration, field Field) bool {
	switch field {
	case FieldName:
		return ValidName(r.Name)
	case FieldEmail:
		return ValidEmail(r.Email)
	case FieldPassword:
		return ValidPassword(r.Password)
	case FieldConfirmPassword:
		return PasswordsMatch(r.Password, r.ConfirmPassword)
	default:
		return false
	}
}
