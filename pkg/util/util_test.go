package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainsString(t *testing.T) {
	weekdays := []string{"Monday", "Friday"}

	assert.True(t, ContainsString(weekdays, "Monday"))
	assert.False(t, ContainsString(weekdays, "Tuesday"))
	assert.False(t, ContainsString(nil, "Monday"))
}

func TestInPlaceFilter(t *testing.T) {
	values := []int{1, 2, 3, 4, 5}

	InPlaceFilter(&values, func(v int) bool {
		return v%2 == 0
	})

	assert.Equal(t, []int{2, 4}, values)
}
