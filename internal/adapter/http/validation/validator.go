package validation

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"flashcardapp/internal/core/model/response"
)

var (
	Validator  *validator.Validate
	Translator ut.Translator
)

func init() {
	Validator = validator.New(validator.WithRequiredStructEnabled())

	english := en.New()
	uni := ut.New(english, english)

	var found bool
	Translator, found = uni.GetTranslator("en")

	if !found {
		panic("translator en not found")
	}

	if err := en_translations.RegisterDefaultTranslations(Validator, Translator); err != nil {
		panic(err)
	}

	if err := Validator.RegisterValidation("maxbytes", maxBytes); err != nil {
		panic(err)
	}

	addCustomTranslations()
}

// maxBytes bounds the encoded length of a string, unlike max which counts runes.
func maxBytes(fl validator.FieldLevel) bool {
	limit, err := strconv.Atoi(fl.Param())

	if err != nil {
		return false
	}

	return len(fl.Field().String()) <= limit
}

func addCustomTranslations() {
	_ = Validator.RegisterTranslation("required", Translator, func(ut ut.Translator) error {
		return ut.Add("required", "{0} is required", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("required", getFieldName(fe.Field()))
		return t
	})

	_ = Validator.RegisterTranslation("max", Translator, func(ut ut.Translator) error {
		return ut.Add("max", "{0} must be at most {1} characters", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("max", getFieldName(fe.Field()), fe.Param())
		return t
	})

	_ = Validator.RegisterTranslation("maxbytes", Translator, func(ut ut.Translator) error {
		return ut.Add("maxbytes", "{0} must be at most {1} bytes", true)
	}, func(ut ut.Translator, fe validator.FieldError) string {
		t, _ := ut.T("maxbytes", getFieldName(fe.Field()), fe.Param())
		return t
	})
}

func getFieldName(field string) string {
	fieldNames := map[string]string{
		"Username": "Username",
		"Password": "Password",
		"Name":     "Name",
		"Question": "Question",
		"Answer":   "Answer",
	}

	if name, exists := fieldNames[field]; exists {
		return name
	}

	return field
}

func FormatValidationErrors(err error) []response.ValidationError {
	var validationErrors validator.ValidationErrors

	if !errors.As(err, &validationErrors) {
		return nil
	}

	formatted := make([]response.ValidationError, 0, len(validationErrors))

	for _, fieldError := range validationErrors {
		formatted = append(formatted, response.ValidationError{
			Field:   strings.ToLower(fieldError.Field()),
			Message: fieldError.Translate(Translator),
		})
	}

	return formatted
}
