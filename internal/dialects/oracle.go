package dialects

// OracleMaxIdentifierLength is the 30 byte limit. Releases from 12.2 accept
// 128 bytes once COMPATIBLE is at least 12.2.
const OracleMaxIdentifierLength = 30

// OracleDialect implements Oracle identifier rules.
type OracleDialect struct{}

func init() {
	RegisterDialect("oracle", &OracleDialect{})
	RegisterDialect("godror", &OracleDialect{})
}

// Name returns "oracle".
func (d *OracleDialect) Name() string { return "oracle" }

// QuoteIdentifier quotes an Oracle identifier using double quotes.
func (d *OracleDialect) QuoteIdentifier(s string) string {
	return quoteWith(s, `"`, `"`)
}

// MaxIdentifierLength returns 30.
func (d *OracleDialect) MaxIdentifierLength() int {
	return OracleMaxIdentifierLength
}
