package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// validate is the shared validator instance. Field names in violations come
// from the json tag so error payloads match the wire format.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// notfuture caps integer year fields at the current calendar year.
	//nolint:errcheck // registration only fails for nil func
	v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		return fl.Field().Int() <= int64(time.Now().Year())
	})

	return v
}

// fieldViolation is the first validation failure found in a payload.
type fieldViolation struct {
	Field   string
	Message string
}

// checkPayload validates a struct and returns the first violation, or nil
// when the payload is valid. Only the first failure is reported; frontends
// show one message at a time.
func checkPayload(payload any) *fieldViolation {
	err := validate.Struct(payload)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &fieldViolation{Field: "", Message: "Dados inválidos."}
	}

	fe := verrs[0]
	return &fieldViolation{
		Field:   fe.Field(),
		Message: violationMessage(fe),
	}
}

// violationMessage translates a validator failure into the user-facing
// Portuguese message for that field and rule.
func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("O campo %s é obrigatório.", fe.Field())
	case "email":
		return "O e-mail informado é inválido."
	case "min":
		return fmt.Sprintf("O campo %s deve ter no mínimo %s caracteres.", fe.Field(), fe.Param())
	case "max":
		return fmt.Sprintf("O campo %s excede o tamanho máximo de %s caracteres.", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("O campo %s deve ser maior ou igual a %s.", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("O campo %s deve ser menor ou igual a %s.", fe.Field(), fe.Param())
	case "notfuture":
		return fmt.Sprintf("O campo %s não pode ser maior que o ano atual.", fe.Field())
	case "oneof":
		return fmt.Sprintf("O campo %s deve ser um dos valores: %s.", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("O campo %s é inválido.", fe.Field())
	}
}

// decodeJSON decodes a request body into dst, answering malformed JSON with
// a 400. Unknown fields are tolerated so older frontends can send extra keys.
// Returns false when the response has already been written.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeBadRequest(w, "Corpo da requisição inválido.")
		return false
	}
	return true
}
