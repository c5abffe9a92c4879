package dialects

// SQLiteDialect implements SQLite identifier rules.
type SQLiteDialect struct{}

func init() {
	RegisterDialect("sqlite", &SQLiteDialect{})
	RegisterDialect("sqlite3", &SQLiteDialect{})
}

// Name returns "sqlite".
func (d *SQLiteDialect) Name() string { return "sqlite" }

// QuoteIdentifier quotes a SQLite identifier using double quotes.
func (d *SQLiteDialect) QuoteIdentifier(s string) string {
	return quoteWith(s, `"`, `"`)
}

// MaxIdentifierLength returns 0: SQLite does not limit identifier length.
func (d *SQLiteDialect) MaxIdentifierLength() int {
	return 0
}
