package domain

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field rule tags evaluated with validator.Var. Names and categories are
// measured after trimming. The same rules are repeated as CHECK
// constraints in the migrations, which stores rely on instead of
// re-validating.
const (
	tagMinText  = "min=2"
	tagPositive = "gt=0"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// requiredText applies presence, type and trimmed minimum length rules.
func requiredText(f String, field, missingMsg, shortMsg string) (string, error) {
	switch f.state {
	case fieldAbsent, fieldNull:
		return "", NewValidationError(field, missingMsg, nil)
	case fieldWrongType:
		return "", typeError(field, "string")
	}
	v := strings.TrimSpace(f.Value)
	if validate.Var(v, tagMinText) != nil {
		return "", NewValidationError(field, shortMsg, nil)
	}
	return v, nil
}

// optionalText returns nil when the field was omitted or null.
func optionalText(f String, field string) (*string, error) {
	switch f.state {
	case fieldAbsent, fieldNull:
		return nil, nil
	case fieldWrongType:
		return nil, typeError(field, "string")
	}
	v := f.Value
	return &v, nil
}

func requiredBool(f Bool, field string) (bool, error) {
	switch f.state {
	case fieldAbsent, fieldNull:
		return false, requiredError(field)
	case fieldWrongType:
		return false, typeError(field, "boolean")
	}
	return f.Value, nil
}

func requiredDate(f DateField, field string) (Date, error) {
	switch f.state {
	case fieldAbsent, fieldNull:
		return Date{}, requiredError(field)
	case fieldWrongType:
		return Date{}, NewValidationError(field,
			field+" must be a valid ISO-8601 date (YYYY-MM-DD).", nil)
	}
	return f.Value, nil
}

func requiredPositiveInt(f Int, field string) (int, error) {
	switch f.state {
	case fieldAbsent, fieldNull:
		return 0, requiredError(field)
	case fieldWrongType:
		return 0, typeError(field, "integer")
	}
	if err := checkPositive(f.Value, field); err != nil {
		return 0, err
	}
	return f.Value, nil
}

// optionalPositiveInt returns nil when the field was omitted or null.
func optionalPositiveInt(f Int, field string) (*int, error) {
	switch f.state {
	case fieldAbsent, fieldNull:
		return nil, nil
	case fieldWrongType:
		return nil, typeError(field, "integer")
	}
	if err := checkPositive(f.Value, field); err != nil {
		return nil, err
	}
	v := f.Value
	return &v, nil
}

func checkPositive(v int, field string) error {
	if validate.Var(v, tagPositive) != nil {
		return rangeError(field)
	}
	return nil
}
