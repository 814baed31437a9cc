package explanation

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
)

// SchemaValidator checks raw model output against the fixed explainer schema:
// exactly 3 summary sentences, 5 bullets, 3 vocab entries and optional
// evidence lines.
type SchemaValidator struct {
	validate   *validator.Validate
	translator ut.Translator
}

func NewSchemaValidator() (*SchemaValidator, error) {
	validate := validator.New()

	enLocale := en.New()
	uni := ut.New(enLocale, enLocale)
	trans, _ := uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		return nil, fmt.Errorf("failed to register default translations: %w", err)
	}

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &SchemaValidator{
		validate:   validate,
		translator: trans,
	}, nil
}

// Parse decodes raw as JSON and validates the result against the schema.
// A decoding failure returns a ValidationError of KindParse; a structural
// mismatch returns KindSchema with the translated field messages.
func (v *SchemaValidator) Parse(raw string) (Explanation, error) {
	var result Explanation
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		return Explanation{}, &ValidationError{Kind: KindParse, Err: err}
	}

	if err := v.validate.Struct(result); err != nil {
		validationErrors, ok := err.(validator.ValidationErrors)
		if !ok {
			return Explanation{}, &ValidationError{Kind: KindSchema, Err: err}
		}
		fields := make([]string, 0, len(validationErrors))
		for _, e := range validationErrors {
			fields = append(fields, e.Translate(v.translator))
		}
		return Explanation{}, &ValidationError{Kind: KindSchema, Fields: fields, Err: err}
	}

	return result, nil
}
