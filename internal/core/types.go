package core

import "time"

// Facet is the aspect of a catalog item a customer is asking about.
type Facet string

const (
	FacetPrice    Facet = "price"
	FacetWarranty Facet = "warranty"
	FacetFeatures Facet = "features"
	FacetFull     Facet = "full"
)

// MoodLabel classifies the emotional tone of an incoming message.
type MoodLabel string

const (
	MoodAngry    MoodLabel = "angry"
	MoodPositive MoodLabel = "positive"
	MoodOffTopic MoodLabel = "offtopic"
	MoodNeutral  MoodLabel = "neutral"
)

// IntentCategory is the coarse purpose of a customer message.
type IntentCategory string

const (
	IntentGreeting  IntentCategory = "greeting"
	IntentOrdering  IntentCategory = "ordering"
	IntentProblem   IntentCategory = "problem"
	IntentInfo      IntentCategory = "info"
	IntentPayment   IntentCategory = "payment"
	IntentComplaint IntentCategory = "complaint"
	IntentThanks    IntentCategory = "thanks"
	IntentGoodbye   IntentCategory = "goodbye"
	IntentUnknown   IntentCategory = "unknown"
)

// Intent is a detected category with its confidence.
type Intent struct {
	Category   IntentCategory
	Confidence float64
}

// Provenance records where a knowledge entry came from.
type Provenance string

const (
	ProvenanceTaught  Provenance = "operator_taught"
	ProvenanceDerived Provenance = "derived"
	ProvenancePending Provenance = "pending_review"
)

// KnowledgeEntry is one taught or derived trigger→response pair.
// Entries are immutable once written; only the Reviewed flag on
// pending entries may change, via the repository.
type KnowledgeEntry struct {
	ID         int64
	Trigger    string
	Response   string
	Provenance Provenance
	Confidence float64
	Reviewed   bool
	CreatedAt  time.Time
}

// Pattern backs the exact/substring pre-filter in front of the
// similarity index. One pattern exists per accepted knowledge entry.
type Pattern struct {
	ID       int64
	Triggers []string
	Response string
	Tags     []string
}

// PackageOption is one duration/price line of a catalog item.
type PackageOption struct {
	Duration string
	Price    string
	Unit     string
}

// CatalogEntry is a sellable item. SourceText is the single source of
// truth; the structured view is derived from it on demand.
type CatalogEntry struct {
	Name       string
	SourceText string
}

// CatalogView is the structured projection of a CatalogEntry's source text.
type CatalogView struct {
	Packages     []PackageOption
	WarrantyTerm string
	Features     []string
	Notes        []string
}

// FAQEntry is a curated question/answer with one or more trigger
// keywords. Triggers are normalized to a list at ingestion.
type FAQEntry struct {
	ID       int64
	Triggers []string
	Answer   string
}

// Inbound is a message delivered by the chat transport.
type Inbound struct {
	SenderID  string
	ChatID    string
	Text      string
	Timestamp time.Time
	IsAdmin   bool
}

// Teaching is a parsed operator instruction.
type Teaching struct {
	Trigger  string
	Response string
}

// Verdict is the safety validator's decision on a teaching attempt.
type Verdict struct {
	CanLearn bool
	Reason   string
	Issues   []string
}
