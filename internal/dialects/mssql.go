package dialects

// MSSQLMaxIdentifierLength is the sysname length.
const MSSQLMaxIdentifierLength = 128

// MSSQLDialect implements SQL Server identifier rules.
type MSSQLDialect struct{}

func init() {
	RegisterDialect("mssql", &MSSQLDialect{})
	RegisterDialect("sqlserver", &MSSQLDialect{})
}

// Name returns "mssql".
func (d *MSSQLDialect) Name() string { return "mssql" }

// QuoteIdentifier quotes a SQL Server identifier using square brackets.
func (d *MSSQLDialect) QuoteIdentifier(s string) string {
	return quoteWith(s, "[", "]")
}

// MaxIdentifierLength returns 128.
func (d *MSSQLDialect) MaxIdentifierLength() int {
	return MSSQLMaxIdentifierLength
}
