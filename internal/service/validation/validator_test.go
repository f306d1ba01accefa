package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testForm struct {
	Name   string `json:"name"       validate:"notblank"`
	Email  string `json:"email"      validate:"emailaddr"`
	Expiry string `json:"expiryDate" validate:"mmyy"`
	Zip    string `json:"zipCode"    validate:"zipcode"`
}

func fixedValidator() *Validator {
	return New(WithClock(func() time.Time {
		return time.Date(2026, time.October, 1, 0, 0, 0, 0, time.UTC)
	}))
}

func TestValidator_Struct_Valid(t *testing.T) {
	v := fixedValidator()

	errs := v.Struct(testForm{Name: "Jane", Email: "jane@x.com", Expiry: "10/26", Zip: "62704"}, nil)
	assert.Nil(t, errs)
}

func TestValidator_Struct_KeysByJSONName(t *testing.T) {
	v := fixedValidator()

	errs := v.Struct(testForm{Name: "", Email: "nope", Expiry: "09/26", Zip: "1"}, nil)
	require.Len(t, errs, 4)
	assert.Equal(t, "This field is required", errs["name"])
	assert.Equal(t, "Please enter a valid email address", errs["email"])
	assert.Equal(t, "Please enter a valid expiry date (MM/YY) in the future", errs["expiryDate"])
	assert.Equal(t, "Please enter a valid zip code (e.g., 12345 or 12345-6789)", errs["zipCode"])
}

func TestValidator_Struct_CustomMessages(t *testing.T) {
	v := fixedValidator()

	errs := v.Struct(testForm{Email: "jane@x.com", Expiry: "10/26", Zip: "62704"}, func(field, tag string) string {
		return field + ":" + tag
	})
	assert.Equal(t, FieldErrors{"name": "name:" + TagRequired}, errs)
}

func TestValidator_Var(t *testing.T) {
	v := fixedValidator()

	assert.Empty(t, v.Var("cvv", "123", TagCVV, nil))
	assert.Equal(t, "Please enter a valid 3-digit CVV", v.Var("cvv", "12", TagCVV, nil))
	assert.Equal(t, "This field is required", v.Var("city", "", TagRequired, nil))
	assert.Equal(t, "Please enter a valid 10-digit phone number", v.Var("phone", "", TagPhone, nil))
}

func TestValidator_Var_BlankIsMissing(t *testing.T) {
	v := fixedValidator()

	assert.Equal(t, "This field is required", v.Var("city", "   ", TagRequired, nil))
	assert.Empty(t, v.Var("city", " Springfield ", TagRequired, nil))
}
