package dialects

// InterbaseMaxIdentifierLength applies to InterBase and Firebird before 4.0.
const InterbaseMaxIdentifierLength = 31

// InterbaseDialect implements InterBase/Firebird identifier rules.
type InterbaseDialect struct{}

func init() {
	RegisterDialect("interbase", &InterbaseDialect{})
	RegisterDialect("firebird", &InterbaseDialect{})
	RegisterDialect("firebirdsql", &InterbaseDialect{})
}

// Name returns "interbase".
func (d *InterbaseDialect) Name() string { return "interbase" }

// QuoteIdentifier quotes an InterBase identifier using double quotes.
func (d *InterbaseDialect) QuoteIdentifier(s string) string {
	return quoteWith(s, `"`, `"`)
}

// MaxIdentifierLength returns 31.
func (d *InterbaseDialect) MaxIdentifierLength() int {
	return InterbaseMaxIdentifierLength
}
