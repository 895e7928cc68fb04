package jwt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/sigec-api/pkg/jwt"
)

const secret = "test-secret-key-for-unit-tests"

func TestGenerateAndParse(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, 1042, "asesor", "sigec-test", 60)
	require.NoError(t, err)

	legajo, role, err := pkgjwt.Parse(secret, tok)
	require.NoError(t, err)
	assert.Equal(t, int64(1042), legajo)
	assert.Equal(t, "asesor", role)
}

func TestGenerate_SecretVacio(t *testing.T) {
	_, err := pkgjwt.Generate("", 1, "asesor", "sigec-test", 60)
	assert.Error(t, err)
}

func TestParse_Expirado(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, 1, "asesor", "sigec-test", -1)
	require.NoError(t, err)
	_, _, err = pkgjwt.Parse(secret, tok)
	assert.Error(t, err)
}

func TestParse_SinLegajo(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, 0, "asesor", "sigec-test", 60)
	require.NoError(t, err)
	_, _, err = pkgjwt.Parse(secret, tok)
	assert.Error(t, err)
}

func TestParse_SecretIncorrecto(t *testing.T) {
	tok, err := pkgjwt.Generate(secret, 1, "asesor", "sigec-test", 60)
	require.NoError(t, err)
	_, _, err = pkgjwt.Parse("otro-secret", tok)
	assert.Error(t, err)
}
