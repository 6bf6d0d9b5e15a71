package postgres

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorCodes(t *testing.T) {
	unique := fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"})
	fk := &pgconn.PgError{Code: "23503"}

	assert.True(t, isUniqueViolation(unique))
	assert.False(t, isForeignKeyViolation(unique))
	assert.True(t, isForeignKeyViolation(fk))
	assert.False(t, isUniqueViolation(errors.New("23505 en el texto no cuenta")))
	assert.True(t, isNoRows(fmt.Errorf("get: %w", pgx.ErrNoRows)))
}

func TestMigrations_Embebidas(t *testing.T) {
	names, err := fs.Glob(migrations, "migrations/*.sql")
	require.NoError(t, err)
	require.NotEmpty(t, names)

	script, err := migrations.ReadFile(names[0])
	require.NoError(t, err)
	sql := string(script)
	// Invariantes que dependen del esquema, no del código.
	assert.Contains(t, sql, "UNIQUE (tenant_id, name)")
	assert.Contains(t, sql, "PRIMARY KEY (client_id, tag_id)")
	assert.True(t, strings.Count(sql, "ON DELETE CASCADE") >= 2)
	// Un tenant aún no sincronizado puede operar: sin FK hacia tenants.
	assert.NotContains(t, sql, "REFERENCES tenants")
}
