package teach

import (
	"regexp"
	"strings"

	"github.com/sandevgo/lapakbot/internal/core"
)

// extractPattern is one (predicate, extractor) row of the parse table.
// The regex carries exactly two capture groups: trigger and response.
type extractPattern struct {
	name string
	re   *regexp.Regexp
}

// Ordered, first match wins. Explicit arrow forms go first because
// they are the least ambiguous; conversational phrasings follow.
var patterns = []extractPattern{
	{
		name: "arrow",
		re:   regexp.MustCompile(`(?i)^(?:ajari|ajarin|teach)\s*:?\s+(.+?)\s*(?:->|=>|→|~>)\s*(.+)$`),
	},
	{
		name: "answer-is-id",
		re:   regexp.MustCompile(`(?i)^jawaban\s+(?:untuk|buat)\s+(.+?)\s+(?:adalah|itu)\s+(.+)$`),
	},
	{
		name: "answer-is-en",
		re:   regexp.MustCompile(`(?i)^the\s+answer\s+(?:for|to)\s+(.+?)\s+is\s+(.+)$`),
	},
	{
		name: "no-ask-back-id",
		re:   regexp.MustCompile(`(?i)^jangan\s+tanya\s+balik\s+(?:kalo|kalau|jika)\s+ditanya\s+(.+?)\s*,\s*(?:langsung\s+)?(?:jawab|bilang)\s+(.+)$`),
	},
	{
		name: "no-ask-back-en",
		re:   regexp.MustCompile(`(?i)^don'?t\s+ask\s+back\s+when\s+asked\s+(?:about\s+)?(.+?)\s*,\s*(?:just\s+)?say\s+(.+)$`),
	},
	{
		name: "if-asked-id",
		re:   regexp.MustCompile(`(?i)^(?:kalo|kalau|jika)\s+(?:ada\s+yang\s+)?(?:nanya|tanya|bertanya|ditanya)\s+(?:soal\s+|tentang\s+)?(.+?)\s*,\s*(?:bilang|jawab|balas)\s+(.+)$`),
	},
	{
		name: "if-asked-en",
		re:   regexp.MustCompile(`(?i)^if\s+(?:someone\s+)?ask(?:s|ed)?\s+(?:about\s+)?(.+?)\s*,\s*(?:say|reply|answer)\s+(.+)$`),
	},
	{
		name: "instead-of-id",
		re:   regexp.MustCompile(`(?i)^(?:daripada|drpd)\s+(.+?)\s*,\s*(?:jawab|balas|bilang)\s+(.+)$`),
	},
	{
		name: "instead-of-en",
		re:   regexp.MustCompile(`(?i)^instead\s+of\s+(.+?)\s*,\s*(?:respond|reply|say)\s+(.+)$`),
	},
}

// Parse extracts a (trigger, response) pair from an operator message.
// A nil result means no supported phrasing matched; the caller must
// answer with the format help, never drop the attempt silently.
func Parse(message string) *core.Teaching {
	msg := strings.TrimSpace(message)
	if msg == "" {
		return nil
	}

	for _, p := range patterns {
		m := p.re.FindStringSubmatch(msg)
		if m == nil {
			continue
		}
		trigger := cleanCapture(m[1])
		response := cleanCapture(m[2])
		if trigger == "" || response == "" {
			continue
		}
		return &core.Teaching{Trigger: trigger, Response: response}
	}
	return nil
}

// FormatHelp lists the phrasings the parser understands, shown when an
// attempt does not parse.
func FormatHelp() string {
	return strings.Join([]string{
		"Format mengajar yang aku ngerti:",
		"• ajari: <pertanyaan> -> <jawaban>",
		"• jawaban untuk <pertanyaan> adalah <jawaban>",
		"• kalo ada yang nanya <pertanyaan>, bilang <jawaban>",
		"• jangan tanya balik kalo ditanya <pertanyaan>, langsung jawab <jawaban>",
		"• daripada <pertanyaan>, jawab <jawaban>",
	}, "\n")
}

var quoteRunes = "\"'“”‘’«»`"

func cleanCapture(s string) string {
	s = strings.TrimSpace(s)
	s = strings.Trim(s, quoteRunes)
	return strings.TrimSpace(s)
}
