package dialects

// MySQLMaxIdentifierLength is the limit for table, column and alias names.
const MySQLMaxIdentifierLength = 64

// MySQLDialect implements MySQL identifier rules.
type MySQLDialect struct{}

func init() {
	RegisterDialect("mysql", &MySQLDialect{})
	RegisterDialect("mariadb", &MySQLDialect{})
}

// Name returns "mysql".
func (d *MySQLDialect) Name() string { return "mysql" }

// QuoteIdentifier quotes a MySQL identifier using backticks.
func (d *MySQLDialect) QuoteIdentifier(s string) string {
	return quoteWith(s, "`", "`")
}

// MaxIdentifierLength returns 64.
func (d *MySQLDialect) MaxIdentifierLength() int {
	return MySQLMaxIdentifierLength
}
