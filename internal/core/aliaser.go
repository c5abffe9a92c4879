// Package core implements alias computation for sqlalias: the alias
// builder, the table and column aliasers, and the configurable Aliaser.
package core

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/coregx/sqlalias/internal/cache"
	"github.com/coregx/sqlalias/internal/dialects"
	"github.com/coregx/sqlalias/internal/logger"
	"github.com/coregx/sqlalias/internal/security"
	"github.com/coregx/sqlalias/internal/tracer"
	"github.com/coregx/sqlalias/internal/words"
)

// Aliaser computes table and column aliases under a fixed configuration.
// Results never depend on earlier calls; the optional table cache is
// synchronised, so an Aliaser is safe for concurrent use.
type Aliaser struct {
	dialect   dialects.Dialect
	maxLen    int
	maxLenSet bool
	rounds    int
	strict    bool
	validator *security.Validator
	logger    logger.Logger
	tracer    tracer.Tracer
	cache     *cache.LRU[tableResolution]
}

// Option is a functional option for configuring an Aliaser.
type Option func(*Aliaser) error

// WithDialect takes the maximum identifier length of the named dialect.
// An explicit WithMaxLength wins regardless of option order.
func WithDialect(name string) Option {
	return func(a *Aliaser) error {
		d, err := dialects.LookupDialect(name)
		if err != nil {
			return fmt.Errorf("%w: %q", ErrUnsupportedDialect, name)
		}
		a.dialect = d
		return nil
	}
}

// WithMaxLength sets the maximum column alias length; 0 disables truncation.
func WithMaxLength(n int) Option {
	return func(a *Aliaser) error {
		if n < 0 {
			return fmt.Errorf("%w: max length %d", ErrInvalidOption, n)
		}
		a.maxLen = n
		a.maxLenSet = true
		return nil
	}
}

// WithRounds sets how many alias-growing rounds run before the numeric
// fallback. The default is DefaultRounds.
func WithRounds(n int) Option {
	return func(a *Aliaser) error {
		if n < 1 {
			return fmt.Errorf("%w: rounds %d", ErrInvalidOption, n)
		}
		a.rounds = n
		return nil
	}
}

// WithStrictIdentifiers restricts input names to plain SQL identifiers.
func WithStrictIdentifiers(strict bool) Option {
	return func(a *Aliaser) error {
		a.strict = strict
		return nil
	}
}

// WithLogger sets the logger; nil restores the no-op logger.
func WithLogger(l logger.Logger) Option {
	return func(a *Aliaser) error {
		if l == nil {
			l = &logger.NoopLogger{}
		}
		a.logger = l
		return nil
	}
}

// WithTracer sets the tracer; nil restores the no-op tracer.
func WithTracer(t tracer.Tracer) Option {
	return func(a *Aliaser) error {
		if t == nil {
			t = &tracer.NoopTracer{}
		}
		a.tracer = t
		return nil
	}
}

// WithCache keeps up to capacity resolved table sets in an LRU cache so
// repeated calls for the same tables skip the computation. A non-positive
// capacity selects cache.DefaultCapacity.
func WithCache(capacity int) Option {
	return func(a *Aliaser) error {
		a.cache = cache.NewWithCapacity[tableResolution](capacity)
		return nil
	}
}

// NewAliaser creates an Aliaser. Without options it never truncates,
// runs DefaultRounds rounds and neither logs nor traces.
func NewAliaser(opts ...Option) (*Aliaser, error) {
	a := &Aliaser{
		rounds: DefaultRounds,
		logger: &logger.NoopLogger{},
		tracer: &tracer.NoopTracer{},
	}

	for _, opt := range opts {
		if err := opt(a); err != nil {
			return nil, err
		}
	}

	if !a.maxLenSet && a.dialect != nil {
		a.maxLen = a.dialect.MaxIdentifierLength()
	}
	a.validator = security.NewValidator(security.WithStrict(a.strict))

	return a, nil
}

// Dialect returns the configured dialect, or nil.
func (a *Aliaser) Dialect() dialects.Dialect {
	return a.dialect
}

// MaxLength returns the alias length limit; 0 means unlimited.
func (a *Aliaser) MaxLength() int {
	return a.maxLen
}

// Rounds returns the number of alias-growing rounds.
func (a *Aliaser) Rounds() int {
	return a.rounds
}

// CacheStats reports table cache metrics; the zero value when no cache is configured.
func (a *Aliaser) CacheStats() cache.Stats {
	if a.cache == nil {
		return cache.Stats{}
	}
	return a.cache.Stats()
}

// Shorten reduces a single word to its consonant skeleton.
func (a *Aliaser) Shorten(word string) string {
	return words.Shorten(word)
}

func (a *Aliaser) dialectName() string {
	if a.dialect == nil {
		return ""
	}
	return a.dialect.Name()
}

// effectiveMaxLen maps "unlimited" to a bound BuildAlias never reaches.
func (a *Aliaser) effectiveMaxLen() int {
	if a.maxLen == 0 {
		return math.MaxInt
	}
	return a.maxLen
}

// Tables returns a distinct alias for every table name.
func (a *Aliaser) Tables(ctx context.Context, names []string) (map[string]string, error) {
	_, span := a.tracer.StartSpan(ctx, tracer.SpanTables)
	defer span.End()

	start := time.Now()
	meta := &tracer.AliasMetadata{
		Operation: "tables",
		Dialect:   a.dialectName(),
		MaxLength: a.maxLen,
	}

	if err := a.validator.ValidateIdentifiers(names); err != nil {
		meta.Error = WrapError(err, "table names")
		meta.Duration = time.Since(start)
		tracer.AddAliasAttributes(span, meta)
		return nil, meta.Error
	}

	res := a.resolve(names)
	meta.Tables = len(res.aliases)
	meta.Rounds = res.rounds
	meta.Fallback = res.fallback
	meta.Duration = time.Since(start)
	tracer.AddAliasAttributes(span, meta)

	return res.aliases, nil
}

// Columns returns one alias per pair, in input order.
func (a *Aliaser) Columns(ctx context.Context, pairs []Pair) ([]string, error) {
	_, span := a.tracer.StartSpan(ctx, tracer.SpanColumns)
	defer span.End()

	start := time.Now()
	meta := &tracer.AliasMetadata{
		Operation: "columns",
		Dialect:   a.dialectName(),
		MaxLength: a.maxLen,
		Pairs:     len(pairs),
	}

	aliases, err := a.columns(pairs, meta)
	meta.Error = err
	meta.Duration = time.Since(start)
	tracer.AddAliasAttributes(span, meta)
	if err != nil {
		a.logger.Error("column aliasing failed", "pairs", len(pairs), "error", err)
		return nil, err
	}
	return aliases, nil
}

// ColumnMap returns the (table, column) to alias mapping for pairs.
// A pair listed more than once keeps the alias of its first occurrence.
func (a *Aliaser) ColumnMap(ctx context.Context, pairs []Pair) (map[Pair]string, error) {
	aliases, err := a.Columns(ctx, pairs)
	if err != nil {
		return nil, err
	}

	out := make(map[Pair]string, len(pairs))
	for i, p := range pairs {
		if _, ok := out[p]; !ok {
			out[p] = aliases[i]
		}
	}
	return out, nil
}

func (a *Aliaser) columns(pairs []Pair, meta *tracer.AliasMetadata) ([]string, error) {
	for i, p := range pairs {
		if err := a.validator.ValidateIdentifier(p.Table); err != nil {
			return nil, WrapError(err, fmt.Sprintf("pair %d table", i+1))
		}
		if err := a.validator.ValidateIdentifier(p.Column); err != nil {
			return nil, WrapError(err, fmt.Sprintf("pair %d column", i+1))
		}
	}

	res := a.resolve(distinctTables(pairs))
	meta.Tables = len(res.aliases)
	meta.Rounds = res.rounds
	meta.Fallback = res.fallback

	return ColumnAliasesFor(res.aliases, pairs, a.effectiveMaxLen())
}

func (a *Aliaser) resolve(names []string) tableResolution {
	var key string
	if a.cache != nil {
		key = cacheKey(names)
		if res, ok := a.cache.Get(key); ok {
			a.logger.Debug("table aliases resolved",
				"tables", len(res.aliases),
				"rounds", res.rounds,
				"cached", true)
			return res.clone()
		}
	}

	res := resolveTableAliases(names, a.rounds)
	a.logger.Debug("table aliases resolved",
		"tables", len(res.aliases),
		"rounds", res.rounds)
	if len(res.fallback) > 0 {
		a.logger.Warn("table alias conflicts remain, appending numeric suffixes",
			"rounds", res.rounds,
			"fallback", res.fallback)
	}

	if a.cache != nil {
		a.cache.Set(key, res.clone())
	}
	return res
}

// cacheKey identifies a table set regardless of order and duplicates.
func cacheKey(names []string) string {
	sorted := slices.Clone(names)
	slices.Sort(sorted)
	return strings.Join(slices.Compact(sorted), "\x00")
}
