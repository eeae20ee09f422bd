package cascade

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/lapakbot/internal/catalog"
	"github.com/sandevgo/lapakbot/internal/core"
	"github.com/sandevgo/lapakbot/internal/faq"
	"github.com/sandevgo/lapakbot/internal/knowledge"
	"github.com/sandevgo/lapakbot/internal/match"
	"github.com/sandevgo/lapakbot/internal/mood"
	"github.com/sandevgo/lapakbot/internal/teach"
	"github.com/sandevgo/lapakbot/pkg/log"
)

// derivedConfidence is assigned to entries the orchestrator observes
// from successful resolver hits. Deliberately below operator-taught
// (1.0) so audits can tell them apart.
const derivedConfidence = 0.85

// stage is one step of the cascade. observe marks stages whose hits
// are fed back into the knowledge base as derived entries.
type stage struct {
	name    string
	observe bool
	fn      func(ctx context.Context, in core.Inbound) (core.Result, error)
}

// Orchestrator runs a single incoming message through the prioritized
// response cascade. Every stage is failure-isolated: an error or panic
// inside a stage is logged and treated as no-match.
type Orchestrator struct {
	classifier *mood.Classifier
	store      *knowledge.Store
	faqs       *faq.Resolver
	procedures *faq.Resolver
	promos     *faq.Resolver
	catalog    *catalog.Resolver
	items      core.CatalogRepository
	validator  core.SafetyValidator
	natural    core.NaturalResponder
	fallback   core.FallbackResponder
	picker     *Picker

	stages []stage
}

type Config struct {
	Classifier *mood.Classifier
	Store      *knowledge.Store
	FAQs       *faq.Resolver
	Procedures *faq.Resolver
	Promos     *faq.Resolver
	Catalog    *catalog.Resolver
	Items      core.CatalogRepository
	Validator  core.SafetyValidator
	Natural    core.NaturalResponder
	Fallback   core.FallbackResponder
	Picker     *Picker
}

func New(cfg Config) *Orchestrator {
	o := &Orchestrator{
		classifier: cfg.Classifier,
		store:      cfg.Store,
		faqs:       cfg.FAQs,
		procedures: cfg.Procedures,
		promos:     cfg.Promos,
		catalog:    cfg.Catalog,
		items:      cfg.Items,
		validator:  cfg.Validator,
		natural:    cfg.Natural,
		fallback:   cfg.Fallback,
		picker:     cfg.Picker,
	}
	if o.picker == nil {
		o.picker = NewPicker(0)
	}
	if o.classifier == nil {
		o.classifier = mood.NewClassifier(nil)
	}

	o.stages = []stage{
		{name: "shortcuts", fn: o.resolveShortcuts},
		{name: "mood", fn: o.resolveMood},
		{name: "natural", fn: o.resolveNatural},
		{name: "knowledge", fn: o.resolveKnowledge},
		{name: "faq", observe: true, fn: o.resolveFAQ},
		{name: "procedure", observe: true, fn: o.resolveProcedure},
		{name: "promo", fn: o.resolvePromo},
		{name: "catalog", observe: true, fn: o.resolveCatalog},
		{name: "gibberish", fn: o.resolveGibberish},
	}
	return o
}

// Handle answers one inbound message. It never returns an empty string
// and never lets a stage failure surface to the user: the worst case
// is the fixed apology template.
func (o *Orchestrator) Handle(ctx context.Context, in core.Inbound) (reply string) {
	logger := log.FromCtx(ctx)

	defer func() {
		if r := recover(); r != nil {
			logger.Error().Interface("panic", r).Msg("orchestrator failure")
			reply = failureTemplate
		}
	}()

	if strings.TrimSpace(in.Text) == "" {
		return emptyInputTemplate
	}

	// Operator teaching is intercepted before the customer cascade.
	if in.IsAdmin {
		if answer, handled := o.handleTeaching(ctx, in); handled {
			return answer
		}
	}

	for _, st := range o.stages {
		result := o.runStage(ctx, st, in)
		if !result.Matched {
			continue
		}
		logger.Debug().Str("stage", st.name).Msg("cascade matched")
		if st.observe {
			o.observe(ctx, in.Text, result.Response)
		}
		return result.Response
	}

	// No local answer. Deliberate non-answer, not an error: defer to
	// the generative responder if one is wired.
	if o.fallback != nil {
		answer, err := o.fallback.Respond(ctx, in)
		if err != nil {
			logger.Error().Err(err).Msg("generative fallback failed")
			return failureTemplate
		}
		if strings.TrimSpace(answer) != "" {
			return answer
		}
	}
	return o.picker.Pick(clarifyVariants)
}

// runStage isolates one stage: panics and errors degrade to no-match
// so the cascade keeps going.
func (o *Orchestrator) runStage(ctx context.Context, st stage, in core.Inbound) (result core.Result) {
	defer func() {
		if r := recover(); r != nil {
			log.FromCtx(ctx).Error().Str("stage", st.name).Interface("panic", r).Msg("stage panicked")
			result = core.NoMatch()
		}
	}()

	result, err := st.fn(ctx, in)
	if err != nil {
		log.FromCtx(ctx).Warn().Err(err).Str("stage", st.name).Msg("stage failed, continuing")
		return core.NoMatch()
	}
	return result
}

// observe feeds a successful resolver hit back into the knowledge base
// as a derived entry so the next identical question is answered from
// memory.
func (o *Orchestrator) observe(ctx context.Context, trigger, response string) {
	if o.store == nil {
		return
	}
	if _, ok := o.store.Lookup(ctx, trigger); ok {
		return
	}
	if _, err := o.store.Learn(ctx, trigger, response, core.ProvenanceDerived, derivedConfidence); err != nil {
		log.FromCtx(ctx).Warn().Err(err).Msg("failed to record derived knowledge")
	}
}

// handleTeaching processes operator teaching attempts. handled=false
// means the admin message is ordinary input and flows on through the
// cascade.
func (o *Orchestrator) handleTeaching(ctx context.Context, in core.Inbound) (string, bool) {
	parsed := teach.Parse(in.Text)
	if parsed == nil {
		if looksLikeTeaching(in.Text) {
			return teach.FormatHelp(), true
		}
		return "", false
	}

	if o.validator != nil {
		verdict := o.validator.ValidateTeaching(ctx, parsed.Trigger, parsed.Response, map[string]string{
			"sender": in.SenderID,
		})
		if !verdict.CanLearn {
			return fmt.Sprintf(teachBlockedTemplate, verdict.Reason, strings.Join(verdict.Issues, "\n- ")), true
		}
	}

	if _, err := o.store.Learn(ctx, parsed.Trigger, parsed.Response, core.ProvenanceTaught, 1.0); err != nil {
		log.FromCtx(ctx).Error().Err(err).Msg("failed to persist teaching")
		return failureTemplate, true
	}

	return fmt.Sprintf(teachConfirmTemplate, parsed.Trigger, parsed.Response), true
}

// looksLikeTeaching spots a failed teaching attempt so the operator
// gets the format help instead of a customer-style answer.
func looksLikeTeaching(text string) bool {
	msg := match.Normalize(text)
	for _, prefix := range []string{"ajari", "ajarin", "teach", "jawaban untuk", "jangan tanya balik"} {
		if strings.HasPrefix(msg, prefix) {
			return true
		}
	}
	return false
}
