package domain

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPageNormalize(t *testing.T) {
	assert.Equal(t, Page{Page: 1, Limit: DefaultPageLimit}, Page{}.Normalize())
	assert.Equal(t, Page{Page: 3, Limit: MaxPageLimit}, Page{Page: 3, Limit: 5000}.Normalize())
	assert.Equal(t, 40, Page{Page: 3, Limit: 20}.Offset())
	assert.Equal(t, 0, Page{Page: -2, Limit: 20}.Offset())
}

func TestNewPageResult(t *testing.T) {
	res := NewPageResult[string](nil, 51, Page{Page: 2, Limit: 25})

	assert.NotNil(t, res.Data)
	assert.Equal(t, 3, res.TotalPages)
	assert.Equal(t, 2, res.Page)

	assert.Equal(t, 0, NewPageResult([]int{}, 0, Page{}).TotalPages)
}

func TestStatusOf(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, StatusOf(ErrApplicationNotFound))
	assert.Equal(t, http.StatusConflict, StatusOf(fmt.Errorf("save: %w", ErrStatusChanged)))
	assert.Equal(t, http.StatusInternalServerError, StatusOf(errors.New("boom")))

	inv := Invalid("Validation failed", []string{"a", "b"})
	assert.Equal(t, http.StatusBadRequest, StatusOf(inv))
	assert.Equal(t, []string{"a", "b"}, inv.Errors)
}
