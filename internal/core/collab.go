package core

import "context"

// FacetRenderer turns a resolved catalog item + facet into customer
// text. ErrFacetNotFound-style absence is signalled by ok=false so the
// resolver can keep cascading.
type FacetRenderer interface {
	RenderFacet(ctx context.Context, name string, facet Facet) (text string, ok bool)
}

// SafetyValidator gates operator teaching before anything is persisted.
type SafetyValidator interface {
	ValidateTeaching(ctx context.Context, trigger, response string, meta map[string]string) Verdict
}

// FallbackResponder is the external generative model, invoked only
// when the cascade ends with no local answer.
type FallbackResponder interface {
	Respond(ctx context.Context, in Inbound) (string, error)
}

// NaturalResponder is the optional small-talk collaborator consulted
// early in the cascade. ok=false means it has nothing to say.
type NaturalResponder interface {
	Read(ctx context.Context, message string) (response string, ok bool)
}

// Command is one operator slash command.
type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, in Inbound, args []string) (string, error)
}
