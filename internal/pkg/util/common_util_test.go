package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSearchTerms(t *testing.T) {
	assert.Nil(t, NormalizeSearchTerms(""))
	assert.Nil(t, NormalizeSearchTerms("   "))
	assert.Equal(t, []string{"golang"}, NormalizeSearchTerms("golang"))
	assert.Equal(t, []string{"go", "web", "framework"}, NormalizeSearchTerms("  go   web\tframework "))
}
