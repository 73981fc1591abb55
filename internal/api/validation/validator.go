package validation

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"github.com/pbsgifts/promoweb/internal/api/dto/common"
)

var (
	// Ecuadorian mobile numbers: local 09XXXXXXXX or international +5939XXXXXXXX.
	ecuMobileRegex = regexp.MustCompile(`^(?:09\d{8}|\+5939\d{8})$`)
	nameClassRegex = regexp.MustCompile(`^[\p{L}\p{M}\s'-]+$`)
	indexedSegment = regexp.MustCompile(`\[\d+\]`)

	phoneSeparators = strings.NewReplacer(" ", "", "-", "")
)

// Validator wraps a configured go-playground validator instance and maps its
// violations to the caller-facing error format.
type Validator struct {
	validate *validator.Validate
}

// New builds a Validator with the custom rules registered.
func New() *Validator {
	v := validator.New()

	// Report paths with json field names instead of Go struct fields
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("ecmobile", validateEcuadorMobile)
	v.RegisterValidation("personname", validatePersonName)
	v.RegisterValidation("maxwords", validateMaxWords)

	return &Validator{validate: v}
}

// validateEcuadorMobile checks for a supported Ecuadorian mobile number,
// ignoring spaces and hyphens
func validateEcuadorMobile(fl validator.FieldLevel) bool {
	cleaned := phoneSeparators.Replace(fl.Field().String())
	return ecuMobileRegex.MatchString(cleaned)
}

// validatePersonName allows letters (any script), combining marks, spaces,
// apostrophes and hyphens. Digits are rejected explicitly so that numeric
// characters outside ASCII cannot slip through the letter class.
func validatePersonName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if !nameClassRegex.MatchString(name) {
		return false
	}
	for _, r := range name {
		if unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// validateMaxWords caps a free-text field at the word count given as the tag
// parameter, e.g. `maxwords=200`
func validateMaxWords(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	return len(strings.Fields(fl.Field().String())) <= limit
}

// Check runs the struct rules and returns every violation, never just the
// first one. A nil result means the value passed.
func (v *Validator) Check(req interface{}) []common.FieldError {
	err := v.validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []common.FieldError{{
			Field:   "Campo",
			Path:    "",
			Code:    "invalid",
			Message: "Solicitud inválida",
		}}
	}

	out := make([]common.FieldError, 0, len(verrs))
	for _, fe := range verrs {
		path := collapsePath(fe.Namespace())
		out = append(out, common.FieldError{
			Field:   labelFor(path),
			Path:    path,
			Code:    fe.Tag(),
			Message: messageFor(fe, path),
		})
	}
	return out
}

// Summary joins violations as "Label: message; ..." for the top-level error
// string of a 400 response.
func Summary(errs []common.FieldError) string {
	parts := make([]string, 0, len(errs))
	for _, e := range errs {
		parts = append(parts, e.Field+": "+e.Message)
	}
	return strings.Join(parts, "; ")
}

// collapsePath turns a validator namespace like
// "SubmissionRequest.items[2].qty" into the structured locator "items[].qty".
func collapsePath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		namespace = namespace[idx+1:]
	}
	return indexedSegment.ReplaceAllString(namespace, "[]")
}

// fieldLabels maps structured paths to the labels the front end shows next
// to its inputs.
var fieldLabels = map[string]string{
	"name":           "Nombre",
	"email":          "Email",
	"phone":          "Teléfono",
	"subject":        "Asunto",
	"message":        "Mensaje",
	"customer.name":  "Nombre",
	"customer.email": "Email",
	"customer.phone": "Teléfono",
	"notes":          "Notas",
	"items":          "Carrito",
	"items[].name":   "Producto",
	"items[].qty":    "Cantidad",
}

func labelFor(path string) string {
	if label, ok := fieldLabels[path]; ok {
		return label
	}
	if strings.HasPrefix(path, "items[].") {
		return "Ítem"
	}
	if strings.HasPrefix(path, "customer.") {
		return "Datos del cliente"
	}
	return "Campo"
}

func messageFor(fe validator.FieldError, path string) string {
	switch fe.Tag() {
	case "required":
		if path == "items[].name" {
			return "Nombre de producto requerido"
		}
		return "Campo requerido"
	case "email":
		return "Email inválido"
	case "ecmobile":
		return "Teléfono inválido (Ecuador: +593 ...)"
	case "personname":
		return "Usa solo letras y espacios"
	case "maxwords":
		return "Máximo " + fe.Param() + " palabras"
	case "min":
		switch path {
		case "items":
			return "Carrito vacío"
		case "items[].qty":
			return "Cantidad inválida"
		}
		return "Muy corto"
	case "max":
		return "Muy largo"
	}
	return "Valor inválido"
}
