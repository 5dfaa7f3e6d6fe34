package querysparql

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/roach88/gravsearch/internal/queryir"
)

// GravsearchCompiler compiles searches and maintains the pagination
// contract with a ParamsSink.
//
// CRITICAL: the sink is notified only for offset 0. Paging through results
// of the current search must not replace it.
type GravsearchCompiler struct {
	params ParamsSink
	logger *slog.Logger
}

// Option configures a GravsearchCompiler.
type Option func(*GravsearchCompiler)

// WithLogger sets the logger used for generation diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *GravsearchCompiler) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// NewGravsearchCompiler creates a compiler that registers offset-0 searches
// with params. A nil params disables registration.
func NewGravsearchCompiler(params ParamsSink, opts ...Option) *GravsearchCompiler {
	c := &GravsearchCompiler{
		params: params,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateGravsearchQuery compiles property selections, optionally restricted
// to resourceClassIRI ("" for none), into a query for the given page offset.
func (c *GravsearchCompiler) CreateGravsearchQuery(selections []queryir.PropertyWithValue, resourceClassIRI string, offset int) (string, error) {
	return c.Compile(queryir.AdvancedSearch{
		Selections:       slices.Clone(selections),
		ResourceClassIRI: resourceClassIRI,
	}, offset)
}

// CreateExpertQuery appends the page offset to a user-written query.
func (c *GravsearchCompiler) CreateExpertQuery(template string, offset int) (string, error) {
	return c.Compile(queryir.ExpertSearch{Template: template}, offset)
}

// CreateFulltextQuery renders the request path of a fulltext search.
func (c *GravsearchCompiler) CreateFulltextQuery(search queryir.FulltextSearch, offset int) (string, error) {
	return c.Compile(search, offset)
}

// Compile generates q at offset. At offset 0 the record is handed to the
// sink after generation succeeds; a failed generation registers nothing.
func (c *GravsearchCompiler) Compile(q queryir.Query, offset int) (string, error) {
	text, err := Generate(q, offset)
	if err != nil {
		c.logger.Debug("gravsearch generation failed", "offset", offset, "error", err)
		return "", err
	}

	mode, _ := queryir.Mode(q)
	if offset == 0 && c.params != nil {
		if err := c.params.ChangeSearchParams(q); err != nil {
			return "", fmt.Errorf("change search params: %w", err)
		}
		c.logger.Info("search params changed", "mode", mode)
	}

	c.logger.Debug("gravsearch generated", "mode", mode, "offset", offset, "bytes", len(text))
	return text, nil
}
