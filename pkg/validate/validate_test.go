package validate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunstone-app/sunstone-api/pkg/validate"
)

type sample struct {
	Name     string `json:"name" validate:"required"`
	Birthday string `json:"birthday,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Rule     string `json:"auto_apply_rule" validate:"omitempty,oneof=none new_client"`
}

func TestStruct_Valido(t *testing.T) {
	assert.NoError(t, validate.Struct(sample{Name: "Ana", Birthday: "1990-04-01"}))
}

func TestFields_UsaNombresJSON(t *testing.T) {
	err := validate.Struct(sample{Birthday: "01/04/1990", Rule: "vip"})
	require.Error(t, err)

	fields := validate.Fields(err)
	assert.Equal(t, "required", fields["name"])
	assert.Equal(t, "datetime=2006-01-02", fields["birthday"])
	assert.Equal(t, "oneof=none new_client", fields["auto_apply_rule"])
}

func TestFields_ErrorAjeno(t *testing.T) {
	assert.Nil(t, validate.Fields(assert.AnError))
}
