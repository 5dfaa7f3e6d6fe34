package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/gravsearch/internal/compiler"
	"github.com/roach88/gravsearch/internal/queryir"
	"github.com/roach88/gravsearch/internal/querysparql"
	"github.com/roach88/gravsearch/internal/store"
	"github.com/roach88/gravsearch/internal/testutil"
)

// Error codes reported in the trace for failures that are not generation
// errors.
const (
	ErrorNoSearch = "NO_SEARCH"
	ErrorOther    = "ERROR"
)

// Harness is the test execution engine.
// It runs scenarios against a fresh store with deterministic submission IDs.
type Harness struct {
	store    *store.Store
	slot     *store.Slot
	gen      *querysparql.GravsearchCompiler
	logger   *slog.Logger
	requests map[string]*compiler.Request
}

// Run executes a test scenario and returns the result.
//
// Each scenario runs in a fresh in-memory database for isolation.
//
// Execution flow:
// 1. Create fresh in-memory database and pagination slot
// 2. Execute flow steps, checking each expect clause
// 3. Evaluate assertions against the stored state
// 4. Return result with pass/fail, trace, and errors
//
// Expectation mismatches are reported in the result. A returned error
// means the scenario itself is broken (unreadable request, store failure).
func Run(scenario *Scenario) (*Result, error) {
	st, err := store.Open(":memory:", store.WithIDGenerator(testutil.NewSequentialIDGenerator("")))
	if err != nil {
		return nil, fmt.Errorf("failed to create in-memory store: %w", err)
	}
	defer st.Close()

	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil)) // Suppress logs in tests
	slot := st.Slot(ctx)

	h := &Harness{
		store:    st,
		slot:     slot,
		gen:      querysparql.NewGravsearchCompiler(slot, querysparql.WithLogger(logger)),
		logger:   logger,
		requests: make(map[string]*compiler.Request),
	}

	result := NewResult()
	if err := h.executeFlow(scenario, result); err != nil {
		return nil, fmt.Errorf("failed to execute flow: %w", err)
	}

	actx := &AssertionContext{
		Store: st,
		Ctx:   ctx,
	}
	for _, errMsg := range EvaluateAssertions(result, scenario.Assertions, actx) {
		result.AddError(errMsg)
	}

	return result, nil
}

// executeFlow runs all flow steps and validates expect clauses.
func (h *Harness) executeFlow(scenario *Scenario, result *Result) error {
	for i, step := range scenario.Flow {
		before, _ := h.slot.Last()

		event, err := h.executeStep(i, step, scenario.Request)
		if err != nil {
			return fmt.Errorf("flow step %d: %w", i, err)
		}

		after, _ := h.slot.Last()
		event.Notified = after.Seq != before.Seq
		result.AddTrace(event)

		for _, failure := range checkExpect(event, step.Expect, result.Trace) {
			result.AddError(failure.Error())
		}

		h.logger.Info("flow step completed",
			"step", i,
			"action", step.Action,
			"offset", event.Offset,
			"notified", event.Notified,
			"error", event.Error,
		)
	}
	return nil
}

// executeStep performs one action. Generation failures are recorded in
// the event; only harness failures are returned.
func (h *Harness) executeStep(i int, step FlowStep, defaultRequest string) (TraceEvent, error) {
	event := TraceEvent{Step: i, Action: step.Action}

	var query string
	var genErr error

	switch step.Action {
	case ActionCompile:
		path := step.Request
		if path == "" {
			path = defaultRequest
		}
		req, err := h.loadRequest(path)
		if err != nil {
			return event, err
		}
		event.Offset = req.Offset
		if step.Offset != nil {
			event.Offset = *step.Offset
		}
		query, genErr = h.gen.Compile(req.Search, event.Offset)

	case ActionPage:
		if step.Offset != nil {
			event.Offset = *step.Offset
		}
		var page store.Page
		page, genErr = h.slot.GenerateGravsearch(event.Offset)
		query = page.Query

	case ActionNext:
		var page store.Page
		page, genErr = h.slot.NextPage()
		event.Offset = page.Offset
		query = page.Query

	default:
		return event, fmt.Errorf("unknown action %q", step.Action)
	}

	if genErr != nil {
		event.Error = errorCode(genErr)
		return event, nil
	}
	event.Query = query
	return event, nil
}

// loadRequest compiles a request file once per run.
func (h *Harness) loadRequest(path string) (*compiler.Request, error) {
	if req, ok := h.requests[path]; ok {
		return req, nil
	}
	req, err := compiler.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load request %s: %w", path, err)
	}
	h.requests[path] = req
	return req, nil
}

// errorCode maps a step failure to the code used in traces and expect
// clauses.
func errorCode(err error) string {
	var ge *queryir.GenerationError
	switch {
	case errors.As(err, &ge):
		return string(ge.Code)
	case errors.Is(err, querysparql.ErrNoSearch):
		return ErrorNoSearch
	default:
		return ErrorOther
	}
}
