package dialects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupDialect(t *testing.T) {
	tests := []struct {
		driver  string
		name    string
		maxLen  int
		quoted  string
		wantErr bool
	}{
		{driver: "postgres", name: "postgres", maxLen: 63, quoted: `"t_client"`},
		{driver: "PostgreSQL", name: "postgres", maxLen: 63, quoted: `"t_client"`},
		{driver: "mysql", name: "mysql", maxLen: 64, quoted: "`t_client`"},
		{driver: "mariadb", name: "mysql", maxLen: 64, quoted: "`t_client`"},
		{driver: "sqlite", name: "sqlite", maxLen: 0, quoted: `"t_client"`},
		{driver: "sqlite3", name: "sqlite", maxLen: 0, quoted: `"t_client"`},
		{driver: "oracle", name: "oracle", maxLen: 30, quoted: `"t_client"`},
		{driver: "firebird", name: "interbase", maxLen: 31, quoted: `"t_client"`},
		{driver: "sqlserver", name: "mssql", maxLen: 128, quoted: "[t_client]"},
		{driver: "db2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			d, err := LookupDialect(tt.driver)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.driver)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.name, d.Name())
			assert.Equal(t, tt.maxLen, d.MaxIdentifierLength())
			assert.Equal(t, tt.quoted, d.QuoteIdentifier("t_client"))
		})
	}
}

func TestQuoteIdentifier_EscapesDelimiters(t *testing.T) {
	assert.Equal(t, `"a""b"`, GetDialect("postgres").QuoteIdentifier(`a"b`))
	assert.Equal(t, "`a``b`", GetDialect("mysql").QuoteIdentifier("a`b"))
	assert.Equal(t, "[a]]b]", GetDialect("mssql").QuoteIdentifier("a]b"))
}

func TestGetDialect_PanicsOnUnknown(t *testing.T) {
	assert.Panics(t, func() { GetDialect("unknown") })
}

func TestNames(t *testing.T) {
	names := Names()
	assert.IsIncreasing(t, names)
	for _, want := range []string{"mssql", "mysql", "oracle", "postgres", "sqlite"} {
		assert.Contains(t, names, want)
	}
}

func TestRegisterDialect(t *testing.T) {
	RegisterDialect("Custom-PG", &PostgresDialect{})
	t.Cleanup(func() {
		mu.Lock()
		delete(dialects, "custom-pg")
		mu.Unlock()
	})

	d, err := LookupDialect("custom-pg")
	require.NoError(t, err)
	assert.Equal(t, 63, d.MaxIdentifierLength())
}
