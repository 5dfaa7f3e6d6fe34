package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue/token"

	"github.com/roach88/gravsearch/internal/compiler"
	"github.com/roach88/gravsearch/internal/queryir"
	"github.com/roach88/gravsearch/internal/querysparql"
	"github.com/roach88/gravsearch/internal/store"
)

// Error codes reported in CLI responses. Request validation uses the
// compiler's E1xx codes as they are.
const (
	ErrCodeGeneric      = "E001" // unclassified failure
	ErrCodeNotFound     = "E002" // request file or directory missing
	ErrCodeCompileError = "E003" // request document does not compile
	ErrCodeStoreError   = "E004" // search history unavailable
	ErrCodeNoSearch     = "E005" // paging before any search was submitted

	ErrCodeUnsupportedValueKind = "E201"
	ErrCodeUnsupportedOperator  = "E202"
	ErrCodeInvalidOffset        = "E203"
	ErrCodeEmptySearch          = "E204"
	ErrCodeInvalidIRI           = "E205"
)

// LoadError represents a request that could not be loaded.
type LoadError struct {
	Code    string
	Message string
	Pos     token.Pos // CUE position if available
}

func (e *LoadError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s", e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(), e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// loadRequest compiles the request document at path, a .cue file or a
// directory holding one CUE package.
func loadRequest(path string) (*compiler.Request, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, &LoadError{Code: ErrCodeNotFound, Message: fmt.Sprintf("request not found: %s", path)}
	}

	req, err := compiler.Load(path)
	if err != nil {
		var ce *compiler.CompileError
		if errors.As(err, &ce) {
			return nil, &LoadError{Code: ErrCodeCompileError, Message: ce.Message, Pos: ce.Pos}
		}
		return nil, &LoadError{Code: ErrCodeCompileError, Message: err.Error()}
	}
	return req, nil
}

// classifyError maps an error from loading, generating or storing a
// search onto the CLIError reported to the user.
func classifyError(err error) *CLIError {
	var (
		cliErr  *CLIError
		loadErr *LoadError
		genErr  *queryir.GenerationError
	)
	switch {
	case errors.As(err, &cliErr):
		return cliErr
	case errors.As(err, &loadErr):
		return &CLIError{Code: loadErr.Code, Message: loadErr.Error()}
	case errors.As(err, &genErr):
		details := map[string]any{}
		if genErr.Index >= 0 {
			details["index"] = genErr.Index
		}
		if genErr.Property != "" {
			details["property"] = genErr.Property
		}
		if len(details) == 0 {
			return &CLIError{Code: generationCode(genErr.Code), Message: genErr.Message}
		}
		return &CLIError{Code: generationCode(genErr.Code), Message: genErr.Message, Details: details}
	case errors.Is(err, querysparql.ErrNoSearch):
		return &CLIError{Code: ErrCodeNoSearch, Message: "no search has been submitted; compile one at offset 0 first"}
	case errors.Is(err, store.ErrNotFound):
		return &CLIError{Code: ErrCodeNotFound, Message: err.Error()}
	default:
		return &CLIError{Code: ErrCodeGeneric, Message: err.Error()}
	}
}

func generationCode(code queryir.GenerationErrorCode) string {
	switch code {
	case queryir.ErrCodeUnsupportedValueKind:
		return ErrCodeUnsupportedValueKind
	case queryir.ErrCodeUnsupportedOperator:
		return ErrCodeUnsupportedOperator
	case queryir.ErrCodeInvalidOffset:
		return ErrCodeInvalidOffset
	case queryir.ErrCodeEmptySearch:
		return ErrCodeEmptySearch
	case queryir.ErrCodeInvalidIRI:
		return ErrCodeInvalidIRI
	default:
		return ErrCodeGeneric
	}
}

// exitCodeFor separates request problems (exit 1) from command errors
// (exit 2).
func exitCodeFor(code string) int {
	switch {
	case strings.HasPrefix(code, "E1"), strings.HasPrefix(code, "E2"), code == ErrCodeNoSearch:
		return ExitFailure
	default:
		return ExitCommandError
	}
}
