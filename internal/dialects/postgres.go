package dialects

// PostgresMaxIdentifierLength is NAMEDATALEN-1; longer names are silently truncated by the server.
const PostgresMaxIdentifierLength = 63

// PostgresDialect implements PostgreSQL identifier rules.
type PostgresDialect struct{}

func init() {
	RegisterDialect("postgres", &PostgresDialect{})
	RegisterDialect("postgresql", &PostgresDialect{})
}

// Name returns "postgres".
func (d *PostgresDialect) Name() string { return "postgres" }

// QuoteIdentifier quotes a PostgreSQL identifier using double quotes.
func (d *PostgresDialect) QuoteIdentifier(s string) string {
	return quoteWith(s, `"`, `"`)
}

// MaxIdentifierLength returns 63.
func (d *PostgresDialect) MaxIdentifierLength() int {
	return PostgresMaxIdentifierLength
}
