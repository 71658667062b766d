package console_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"toolbox/internal/console"
)

func TestNumberFormatting(t *testing.T) {
	p := console.New(&bytes.Buffer{}, "en")
	assert.Equal(t, "1,234.50", p.Money(1234.5))
	assert.Equal(t, "3.142", p.Number(3.14159, 3))

	de := console.New(&bytes.Buffer{}, "de")
	assert.Equal(t, "1.234,50", de.Money(1234.5))
}

func TestUnknownLocaleFallsBack(t *testing.T) {
	p := console.New(&bytes.Buffer{}, "!!")
	assert.Equal(t, "12.00", p.Money(12))
}

func TestFieldAndTitle(t *testing.T) {
	var buf bytes.Buffer
	p := console.New(&buf, "")
	p.Title("BMI")
	p.Field("Category", "Normal")
	p.Linef("%d rolls", 3)

	out := buf.String()
	assert.Contains(t, out, "BMI")
	assert.Contains(t, out, "Category")
	assert.Contains(t, out, "Normal")
	assert.Contains(t, out, "3 rolls")
}
