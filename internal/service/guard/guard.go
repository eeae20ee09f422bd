package guard

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/sandevgo/lapakbot/internal/core"
	"github.com/sandevgo/lapakbot/pkg/log"
)

const (
	maxTriggerLen  = 120
	maxResponseLen = 1000
)

// Terms a taught response must never contain. Extend per shop policy.
var blockedTerms = []string{
	"password admin", "kode otp", "pinjol", "togel", "judi",
	"transfer ke rekening pribadi", "bit.ly/",
}

var linkPattern = regexp.MustCompile(`https?://\S+`)

// Validator is the rule-based safety gate in front of Learn. It
// implements core.SafetyValidator.
type Validator struct {
	allowedLinkHosts []string
}

func New(allowedLinkHosts []string) *Validator {
	return &Validator{allowedLinkHosts: allowedLinkHosts}
}

func (v *Validator) ValidateTeaching(ctx context.Context, trigger, response string, meta map[string]string) core.Verdict {
	var issues []string

	trigger = strings.TrimSpace(trigger)
	response = strings.TrimSpace(response)

	if trigger == "" {
		issues = append(issues, "trigger kosong")
	}
	if response == "" {
		issues = append(issues, "jawaban kosong")
	}
	if len([]rune(trigger)) > maxTriggerLen {
		issues = append(issues, fmt.Sprintf("trigger lebih dari %d karakter", maxTriggerLen))
	}
	if len([]rune(response)) > maxResponseLen {
		issues = append(issues, fmt.Sprintf("jawaban lebih dari %d karakter", maxResponseLen))
	}

	combined := strings.ToLower(trigger + " " + response)
	for _, term := range blockedTerms {
		if strings.Contains(combined, term) {
			issues = append(issues, fmt.Sprintf("mengandung istilah terlarang: %q", term))
		}
	}

	for _, link := range linkPattern.FindAllString(response, -1) {
		if !v.linkAllowed(link) {
			issues = append(issues, fmt.Sprintf("link tidak diizinkan: %s", link))
		}
	}

	if len(issues) > 0 {
		log.FromCtx(ctx).Warn().
			Strs("issues", issues).
			Msg("teaching attempt blocked")
		return core.Verdict{
			CanLearn: false,
			Reason:   "ditolak oleh pemeriksaan keamanan",
			Issues:   issues,
		}
	}

	return core.Verdict{CanLearn: true}
}

func (v *Validator) linkAllowed(link string) bool {
	for _, host := range v.allowedLinkHosts {
		if strings.Contains(link, host) {
			return true
		}
	}
	return false
}
