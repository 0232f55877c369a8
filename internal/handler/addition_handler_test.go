package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/nthnyvllflrs/ascent-erp/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdditionLifecycle(t *testing.T) {
	a := newApp(t)

	rec := a.do(t, http.MethodPost, "/api/hr/additions/store", map[string]string{"name": "Meal Allowance"})
	require.Equal(t, http.StatusCreated, rec.Code)
	var created model.Addition
	decode(t, rec, &created)
	require.NotZero(t, created.ID)
	assert.Equal(t, "Meal Allowance", created.Name)

	rec = a.do(t, http.MethodPut, fmt.Sprintf("/api/hr/additions/update/%d", created.ID), map[string]string{"name": "Transport Allowance"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = a.do(t, http.MethodGet, fmt.Sprintf("/api/hr/additions/show/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got model.Addition
	decode(t, rec, &got)
	assert.Equal(t, "Transport Allowance", got.Name)

	rec = a.do(t, http.MethodGet, "/api/hr/additions/index", nil)
	var page pageBody[model.Addition]
	decode(t, rec, &page)
	assert.EqualValues(t, 1, page.Total)
	assert.Equal(t, 15, page.PerPage)

	rec = a.do(t, http.MethodDelete, fmt.Sprintf("/api/hr/additions/destroy/%d", created.ID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = a.do(t, http.MethodGet, fmt.Sprintf("/api/hr/additions/show/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"Addition not found"}`, rec.Body.String())
}

func TestAdditionValidation(t *testing.T) {
	a := newApp(t)

	rec := a.do(t, http.MethodPost, "/api/hr/additions/store", map[string]string{})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	var body validationBody
	decode(t, rec, &body)
	assert.Equal(t, []string{"The name field is required."}, body.Errors["name"])

	rec = a.do(t, http.MethodPost, "/api/hr/additions/store", map[string]int{"name": 5})
	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	decode(t, rec, &body)
	assert.Equal(t, []string{"The name field must be a string."}, body.Errors["name"])
}
