package validation

import (
	"errors"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

// Сообщения по умолчанию для тегов; %s заменяется параметром тега
var defaultMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters",
	"max":      "must be at most %s characters",
	"len":      "must be exactly %s characters",
	"number":   "must contain only digits",
	"oneof":    "must be one of %s",
	"datetime": "has invalid format",
}

// FieldErrors ошибки валидации по полям (имя поля берется из json тега)
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	fields := make([]string, 0, len(e))
	for f := range e {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+e[f])
	}
	return strings.Join(parts, "; ")
}

// Struct проверяет структуру по тегам validate
// messages переопределяет текст ошибки для пары "<поле>.<тег>"
// Если полей с ошибками нет, возвращает nil
func Struct(s interface{}, messages map[string]string) FieldErrors {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return FieldErrors{"_": err.Error()}
	}

	result := make(FieldErrors, len(validationErrors))
	for _, fe := range validationErrors {
		field := fe.Field()
		if msg, ok := messages[field+"."+fe.Tag()]; ok {
			result[field] = msg
			continue
		}
		result[field] = field + " " + defaultMessage(fe)
	}
	return result
}

func defaultMessage(fe validator.FieldError) string {
	msg, ok := defaultMessages[fe.Tag()]
	if !ok {
		return "is invalid"
	}
	if strings.Contains(msg, "%s") {
		param := fe.Param()
		if fe.Tag() == "oneof" {
			param = strings.Join(strings.Fields(param), ", ")
		}
		msg = strings.Replace(msg, "%s", param, 1)
	}
	return msg
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}
