package cascade

import (
	"math/rand"
	"sync"
)

// Picker selects one of several equivalent response variants. Seedable
// so tests can assert over the full variant set deterministically.
type Picker struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewPicker(seed int64) *Picker {
	return &Picker{rnd: rand.New(rand.NewSource(seed))}
}

func (p *Picker) Pick(options []string) string {
	if len(options) == 0 {
		return ""
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	return options[p.rnd.Intn(len(options))]
}
