package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Code   string `json:"code" validate:"number,len=4"`
	Name   string `json:"name" validate:"required"`
	Status string `json:"status,omitempty" validate:"omitempty,oneof=active cancelled"`
}

func TestStruct_Valid(t *testing.T) {
	assert.Nil(t, Struct(sample{Code: "1234", Name: "x"}, nil))
}

func TestStruct_DefaultMessages(t *testing.T) {
	errs := Struct(sample{Code: "12", Status: "gone"}, nil)
	require.NotNil(t, errs)

	assert.Equal(t, "code must be exactly 4 characters", errs["code"])
	assert.Equal(t, "name is required", errs["name"])
	assert.Equal(t, "status must be one of active, cancelled", errs["status"])
}

func TestStruct_CustomMessages(t *testing.T) {
	messages := map[string]string{
		"code.number": "OTP must contain only numeric digits",
		"code.len":    "OTP must be exactly 4 digits",
	}

	errs := Struct(sample{Code: "12a4", Name: "x"}, messages)
	assert.Equal(t, FieldErrors{"code": "OTP must contain only numeric digits"}, errs)

	errs = Struct(sample{Code: "12345", Name: "x"}, messages)
	assert.Equal(t, FieldErrors{"code": "OTP must be exactly 4 digits"}, errs)
}

func TestFieldErrors_Error(t *testing.T) {
	errs := FieldErrors{"b": "second", "a": "first"}
	assert.Equal(t, "a: first; b: second", errs.Error())
}
