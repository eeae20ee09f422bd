package core

import "context"

// Result is the tagged outcome of a cascade stage. A stage either
// produced a final response or explicitly fell through.
type Result struct {
	Matched  bool
	Response string
}

func Match(response string) Result {
	return Result{Matched: true, Response: response}
}

func NoMatch() Result {
	return Result{}
}

// Stage is one step of the response cascade. Returning an error is
// treated by the orchestrator as NoMatch, never as a fatal fault.
type Stage interface {
	Name() string
	Resolve(ctx context.Context, in Inbound) (Result, error)
}

// StageFunc adapts a function to the Stage interface.
type StageFunc struct {
	StageName string
	Fn        func(ctx context.Context, in Inbound) (Result, error)
}

func (s StageFunc) Name() string { return s.StageName }

func (s StageFunc) Resolve(ctx context.Context, in Inbound) (Result, error) {
	return s.Fn(ctx, in)
}
