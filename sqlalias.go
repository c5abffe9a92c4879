// Package sqlalias generates short, deterministic aliases for SQL table and
// column identifiers. Table aliases are built from the consonant skeletons
// of the words in a table name and are distinct within one set of tables;
// column aliases combine a table alias with the column name and fit a
// maximum identifier length, such as PostgreSQL's 63 bytes.
package sqlalias

import (
	"github.com/coregx/sqlalias/internal/cache"
	"github.com/coregx/sqlalias/internal/core"
	"github.com/coregx/sqlalias/internal/dialects"
	"github.com/coregx/sqlalias/internal/logger"
	"github.com/coregx/sqlalias/internal/tracer"
	"github.com/coregx/sqlalias/internal/words"
)

type (
	// Aliaser computes table and column aliases under a fixed configuration.
	Aliaser = core.Aliaser
	// Option is a functional option for configuring an Aliaser.
	Option = core.Option
	// Pair identifies one column of one table.
	Pair = core.Pair
	// CacheStats holds the table cache metrics of an Aliaser.
	CacheStats = cache.Stats

	// Dialect describes the identifier rules of one SQL engine.
	Dialect = dialects.Dialect
	// Logger is the structured logging interface used by an Aliaser.
	Logger = logger.Logger
	// Tracer is the tracing interface used by an Aliaser.
	Tracer = tracer.Tracer
)

// DefaultRounds is the number of alias-growing rounds before the numeric fallback.
const DefaultRounds = core.DefaultRounds

// Re-export core functions.
var (
	NewAliaser            = core.NewAliaser
	WithDialect           = core.WithDialect
	WithMaxLength         = core.WithMaxLength
	WithRounds            = core.WithRounds
	WithStrictIdentifiers = core.WithStrictIdentifiers
	WithLogger            = core.WithLogger
	WithTracer            = core.WithTracer
	WithCache             = core.WithCache

	// Alias computation
	BuildAlias       = core.BuildAlias
	WordAlias        = core.WordAlias
	TableAliases     = core.TableAliases
	ColumnAliases    = core.ColumnAliases
	ColumnAliasesFor = core.ColumnAliasesFor

	// Word handling
	SplitWords = words.SplitWords
	MainWords  = words.MainWords
	Shorten    = words.Shorten
	IsCamel    = words.IsCamel

	// Dialects
	LookupDialect   = dialects.LookupDialect
	RegisterDialect = dialects.RegisterDialect
	DialectNames    = dialects.Names

	// Logging and tracing adapters
	NewSlogAdapter = logger.NewSlogAdapter
	NewTextLogger  = logger.NewTextLogger
	NewOtelTracer  = tracer.NewOtelTracer
)

// Re-export errors.
var (
	ErrMaxLenTooSmall     = core.ErrMaxLenTooSmall
	ErrInvalidCounter     = core.ErrInvalidCounter
	ErrEmptyTableSet      = core.ErrEmptyTableSet
	ErrUnknownTable       = core.ErrUnknownTable
	ErrInvalidIdentifier  = core.ErrInvalidIdentifier
	ErrUnsupportedDialect = core.ErrUnsupportedDialect
	ErrInvalidOption      = core.ErrInvalidOption
)
