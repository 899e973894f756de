package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidNationalID(t *testing.T) {
	valid := []string{
		"123.456.789-00",
		"000.000.000-00",
		"999.999.999-99",
	}
	for _, id := range valid {
		assert.True(t, ValidNationalID(id), id)
	}

	invalid := []string{
		"",
		"12345678900",
		"123.456.789-0",
		"123.456.789-000",
		"123-456-789.00",
		"abc.def.ghi-jk",
		" 123.456.789-00",
		"123.456.789-00 ",
	}
	for _, id := range invalid {
		assert.False(t, ValidNationalID(id), id)
	}
}
