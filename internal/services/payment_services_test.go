package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExternalRefRoundTrip(t *testing.T) {
	ref := ExternalRef("202404171")
	require.True(t, strings.HasPrefix(ref, "ORDER-202404171-"))

	orderNumber, err := OrderNumberFromRef(ref)
	require.NoError(t, err)
	assert.Equal(t, "202404171", orderNumber)
}

func TestOrderNumberFromRefRejectsGarbage(t *testing.T) {
	for _, ref := range []string{"", "ORDER-", "ORDER--abc", "PAY-1-abc", "202404171"} {
		_, err := OrderNumberFromRef(ref)
		assert.Error(t, err, "ref %q should not parse", ref)
	}
}

func TestExternalRefsDistinctPerSession(t *testing.T) {
	// Retried sessions must not collide on the gateway side.
	assert.NotEqual(t, ExternalRef("202404171"), ExternalRef("202404171"))
}
