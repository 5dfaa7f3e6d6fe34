package harness

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/roach88/gravsearch/internal/store"
)

// AssertionError is returned when an assertion fails.
// It includes detailed context to help debug the failure.
type AssertionError struct {
	Type     string       // Assertion type for categorization
	Expected string       // Human-readable expected outcome
	Actual   string       // Human-readable actual outcome
	Trace    []TraceEvent // Full trace for debugging context
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	var buf strings.Builder

	fmt.Fprintf(&buf, "Assertion failed: %s\n", e.Type)
	fmt.Fprintf(&buf, "  Expected: %s\n", e.Expected)
	fmt.Fprintf(&buf, "  Actual: %s\n", e.Actual)

	if len(e.Trace) > 0 {
		fmt.Fprintf(&buf, "\nFull trace:\n")
		for _, event := range e.Trace {
			outcome := "ok"
			if event.Error != "" {
				outcome = event.Error
			}
			fmt.Fprintf(&buf, "  [%d] %s offset=%d notified=%t %s\n",
				event.Step, event.Action, event.Offset, event.Notified, outcome)
		}
	}

	return buf.String()
}

// checkExpect compares a step outcome with its expect clause.
// A step without an expect clause must not fail.
func checkExpect(event TraceEvent, expect *ExpectClause, trace []TraceEvent) []error {
	var errs []error
	label := fmt.Sprintf("step %d (%s)", event.Step, event.Action)

	wantErr := ""
	if expect != nil {
		wantErr = expect.Error
	}
	if event.Error != wantErr {
		expected := "success"
		if wantErr != "" {
			expected = "error " + wantErr
		}
		actual := "success"
		if event.Error != "" {
			actual = "error " + event.Error
		}
		errs = append(errs, &AssertionError{
			Type:     "expect",
			Expected: fmt.Sprintf("%s: %s", label, expected),
			Actual:   actual,
			Trace:    trace,
		})
	}

	if expect == nil {
		return errs
	}

	if expect.Notified != nil && *expect.Notified != event.Notified {
		errs = append(errs, &AssertionError{
			Type:     "expect",
			Expected: fmt.Sprintf("%s: notified=%t", label, *expect.Notified),
			Actual:   fmt.Sprintf("notified=%t", event.Notified),
			Trace:    trace,
		})
	}

	for _, want := range expect.Contains {
		if !strings.Contains(event.Query, want) {
			errs = append(errs, &AssertionError{
				Type:     "expect",
				Expected: fmt.Sprintf("%s: query containing %q", label, want),
				Actual:   fmt.Sprintf("query:\n%s", event.Query),
			})
		}
	}

	for _, unwanted := range expect.NotContains {
		if strings.Contains(event.Query, unwanted) {
			errs = append(errs, &AssertionError{
				Type:     "expect",
				Expected: fmt.Sprintf("%s: query without %q", label, unwanted),
				Actual:   fmt.Sprintf("query:\n%s", event.Query),
			})
		}
	}

	return errs
}

// assertHistoryCount checks the number of stored submissions.
func assertHistoryCount(ctx context.Context, st *store.Store, trace []TraceEvent, assertion Assertion) error {
	subs, err := st.ListSearches(ctx)
	if err != nil {
		return fmt.Errorf("history_count: %w", err)
	}
	if len(subs) != assertion.Count {
		return &AssertionError{
			Type:     AssertHistoryCount,
			Expected: fmt.Sprintf("%d stored submissions", assertion.Count),
			Actual:   fmt.Sprintf("%d stored submissions", len(subs)),
			Trace:    trace,
		}
	}
	return nil
}

// assertPageLog checks the offsets recorded for the current submission.
func assertPageLog(ctx context.Context, st *store.Store, trace []TraceEvent, assertion Assertion) error {
	cur, err := st.CurrentSearch(ctx)
	if errors.Is(err, store.ErrNotFound) {
		return &AssertionError{
			Type:     AssertPageLog,
			Expected: fmt.Sprintf("pages %v", assertion.Offsets),
			Actual:   "no current search",
			Trace:    trace,
		}
	}
	if err != nil {
		return fmt.Errorf("page_log: %w", err)
	}

	pages, err := st.Pages(ctx, cur.Seq)
	if err != nil {
		return fmt.Errorf("page_log: %w", err)
	}
	if !slices.Equal(pages, assertion.Offsets) {
		return &AssertionError{
			Type:     AssertPageLog,
			Expected: fmt.Sprintf("pages %v", assertion.Offsets),
			Actual:   fmt.Sprintf("pages %v", pages),
			Trace:    trace,
		}
	}
	return nil
}

// assertCurrentMode checks the mode of the current submission.
func assertCurrentMode(ctx context.Context, st *store.Store, trace []TraceEvent, assertion Assertion) error {
	cur, err := st.CurrentSearch(ctx)
	actual := ""
	switch {
	case errors.Is(err, store.ErrNotFound):
		actual = "no current search"
	case err != nil:
		return fmt.Errorf("current_mode: %w", err)
	default:
		actual = cur.Mode
	}

	if actual != assertion.Mode {
		return &AssertionError{
			Type:     AssertCurrentMode,
			Expected: assertion.Mode,
			Actual:   actual,
			Trace:    trace,
		}
	}
	return nil
}

// assertTraceCount checks how many steps produced a query.
func assertTraceCount(trace []TraceEvent, assertion Assertion) error {
	count := 0
	for _, event := range trace {
		if event.Query != "" {
			count++
		}
	}

	if count != assertion.Count {
		return &AssertionError{
			Type:     AssertTraceCount,
			Expected: fmt.Sprintf("%d generated queries", assertion.Count),
			Actual:   fmt.Sprintf("%d generated queries", count),
			Trace:    trace,
		}
	}
	return nil
}

// AssertionContext provides database access for state assertions.
type AssertionContext struct {
	Store *store.Store
	Ctx   context.Context
}

// EvaluateAssertions evaluates all assertions against the result.
// Returns a slice of error messages for failed assertions.
// The actx parameter provides database access for state assertions.
func EvaluateAssertions(result *Result, assertions []Assertion, actx *AssertionContext) []string {
	var errs []string

	for i, assertion := range assertions {
		var err error

		needsStore := assertion.Type == AssertHistoryCount ||
			assertion.Type == AssertPageLog ||
			assertion.Type == AssertCurrentMode
		if needsStore && (actx == nil || actx.Store == nil) {
			errs = append(errs, fmt.Sprintf("assertion[%d]: %s requires database context", i, assertion.Type))
			continue
		}

		switch assertion.Type {
		case AssertHistoryCount:
			err = assertHistoryCount(actx.Ctx, actx.Store, result.Trace, assertion)
		case AssertPageLog:
			err = assertPageLog(actx.Ctx, actx.Store, result.Trace, assertion)
		case AssertCurrentMode:
			err = assertCurrentMode(actx.Ctx, actx.Store, result.Trace, assertion)
		case AssertTraceCount:
			err = assertTraceCount(result.Trace, assertion)
		default:
			err = fmt.Errorf("assertion[%d]: unknown assertion type %q", i, assertion.Type)
		}

		if err != nil {
			errs = append(errs, err.Error())
		}
	}

	return errs
}
