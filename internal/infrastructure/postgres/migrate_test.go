package postgres

import (
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationFiles_Ordenadas(t *testing.T) {
	names, err := migrationFiles()
	require.NoError(t, err)
	require.NotEmpty(t, names)
	assert.Equal(t, "0001_schema.sql", names[0])
	assert.IsIncreasing(t, names)
}

func TestMigrations_AnotadasParaGoose(t *testing.T) {
	names, err := migrationFiles()
	require.NoError(t, err)
	for _, name := range names {
		body, err := migrationsFS.ReadFile("migrations/" + name)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(body), "-- +goose Up\n"), "%s debe empezar con la anotación de goose", name)
		assert.NotContains(t, string(body), "schema_migrations", name)
	}
}

func TestMigrations_VersionesNumericas(t *testing.T) {
	names, err := migrationFiles()
	require.NoError(t, err)
	for _, name := range names {
		version, _, ok := strings.Cut(name, "_")
		require.True(t, ok, name)
		_, err := strconv.ParseInt(version, 10, 64)
		assert.NoError(t, err, "goose toma la versión del prefijo numérico de %s", name)
	}
}

func TestMigrations_TablasDelDominio(t *testing.T) {
	body, err := migrationsFS.ReadFile("migrations/0001_schema.sql")
	require.NoError(t, err)
	for _, table := range []string{"employees", "plans", "clients", "price_list_entries", "monotributo_contributions", "quotations", "quotation_members"} {
		assert.Contains(t, string(body), "CREATE TABLE IF NOT EXISTS "+table+" ")
	}
}
