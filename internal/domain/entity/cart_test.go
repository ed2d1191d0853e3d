package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartLine_LineTotal(t *testing.T) {
	t.Parallel()

	line := CartLine{
		Item:     MenuItem{ID: "mutton-biryani", Price: 280},
		Quantity: 3,
	}

	assert.Equal(t, 840, line.LineTotal())
}
