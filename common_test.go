package order_test

import (
	"testing"

	"github.com/ddirect/order"
	"github.com/stretchr/testify/assert"
)

func Test_Natural(t *testing.T) {
	assert.Equal(t, -1, order.Natural(1, 2))
	assert.Equal(t, 1, order.Natural(2, 1))
	assert.Equal(t, 0, order.Natural(3, 3))

	assert.Equal(t, -1, order.Natural("a", "b"))
	assert.Equal(t, 0, order.Natural("a", "a"))
	assert.Equal(t, 1, order.Natural(2.5, 1.5))
}

func Test_NaturalAsComparator(t *testing.T) {
	var c order.Comparator[int] = order.Natural[int]
	assert.Equal(t, -1, c(1, 2))
}
