package validator

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type issueRequest struct {
	RestaurantID string  `json:"restaurant_id" validate:"required"`
	Birthday     string  `json:"birthday" validate:"omitempty,datetime=2006-01-02"`
	Radius       float64 `query:"radius" validate:"gte=0"`
}

func TestCustomValidator_Validate(t *testing.T) {
	v := New()

	assert.NoError(t, v.Validate(&issueRequest{RestaurantID: "r1", Birthday: "1990-04-12"}))

	err := v.Validate(&issueRequest{Birthday: "12/04/1990", Radius: -1})
	require.Error(t, err)

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.ElementsMatch(t, []FieldError{
		{Field: "restaurant_id", Rule: "required"},
		{Field: "birthday", Rule: "datetime", Param: "2006-01-02"},
		{Field: "radius", Rule: "gte", Param: "0"},
	}, validationErr.Fields)
	assert.Contains(t, err.Error(), "restaurant_id failed on required")
}

type pathRequest struct {
	PassID string `json:"-" param:"passId" validate:"required"`
}

func TestCustomValidator_PathParamName(t *testing.T) {
	err := New().Validate(&pathRequest{})

	var validationErr *ValidationError
	require.True(t, errors.As(err, &validationErr))
	assert.Equal(t, []FieldError{{Field: "passId", Rule: "required"}}, validationErr.Fields)
}
