package jwt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-32-bytes-long-enough!"

func TestGenerateParse_RoundTrip(t *testing.T) {
	in := Identity{UserID: "u-1", TenantID: "t-1", Role: "owner"}
	token, err := Generate(testSecret, in, "sunstone", 5)
	require.NoError(t, err)

	got, err := Parse(testSecret, token)
	require.NoError(t, err)
	assert.Equal(t, in, got)
}

func TestParse_Rechazos(t *testing.T) {
	token, err := Generate(testSecret, Identity{UserID: "u-1", Role: "staff"}, "sunstone", 5)
	require.NoError(t, err)

	// Caso 1: otro secret
	_, err = Parse("otro-secret", token)
	assert.Error(t, err)

	// Caso 2: expirado
	expired, err := Generate(testSecret, Identity{UserID: "u-1", Role: "staff"}, "sunstone", -1)
	require.NoError(t, err)
	_, err = Parse(testSecret, expired)
	assert.Error(t, err)

	// Caso 3: basura
	_, err = Parse(testSecret, "no.es.un.jwt")
	assert.Error(t, err)

	// Caso 4: sin secret
	_, err = Generate("", Identity{UserID: "u"}, "sunstone", 5)
	assert.Error(t, err)
}
