package llm

import (
	"context"
	"net/http"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
	"github.com/sandevgo/lapakbot/internal/core"
	"github.com/sandevgo/lapakbot/pkg/log"
	"github.com/sandevgo/lapakbot/pkg/retry"
)

// promptTokenBudget caps the user portion of the prompt. Pasted walls
// of text get truncated instead of inflating the request.
const promptTokenBudget = 1024

const systemPrompt = `Kamu adalah asisten customer service sebuah lapak produk digital Indonesia ` +
	`(akun streaming dan aplikasi premium). Jawab singkat, ramah, dan santai dengan sapaan "kak". ` +
	`Jawab hanya seputar belanja di lapak ini. Kalau tidak yakin atau pertanyaan di luar topik, ` +
	`minta pelanggan menghubungi admin. Jangan pernah mengarang harga atau stok.`

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
}

// Responder answers questions the deterministic cascade could not,
// via an OpenAI-compatible chat completion endpoint.
type Responder struct {
	baseProvider
	retrier *retry.Retrier
	catalog core.CatalogRepository
}

func NewResponder(cfg Config, catalog core.CatalogRepository) *Responder {
	return &Responder{
		baseProvider: newBaseProvider(strings.TrimRight(cfg.BaseURL, "/"), cfg.APIKey, cfg.Model),
		retrier:      retry.NewDefaultRetrier(),
		catalog:      catalog,
	}
}

func (r *Responder) Respond(ctx context.Context, in core.Inbound) (string, error) {
	messages := []chatMessage{
		{Role: "system", Content: r.systemPrompt(ctx)},
		{Role: "user", Content: truncateToBudget(in.Text, promptTokenBudget)},
	}

	payload := map[string]any{
		"model":       r.model,
		"messages":    messages,
		"temperature": 0.4,
	}

	var answer string
	err := r.retrier.Do(ctx, func() error {
		resp, err := r.doRequest(ctx, http.MethodPost, "/v1/chat/completions", payload)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		answer, err = parseChatResponse(resp)
		return err
	})
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

// systemPrompt extends the base persona with the current product list
// so the model knows what the shop actually sells.
func (r *Responder) systemPrompt(ctx context.Context) string {
	if r.catalog == nil {
		return systemPrompt
	}
	entries, err := r.catalog.List(ctx)
	if err != nil || len(entries) == 0 {
		if err != nil {
			log.FromCtx(ctx).Warn().Err(err).Msg("failed to load catalog for prompt")
		}
		return systemPrompt
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name)
	}
	return systemPrompt + " Produk yang dijual: " + strings.Join(names, ", ") + "."
}

var (
	tkOnce sync.Once
	tk     *tiktoken.Tiktoken
)

func getTokenizer() *tiktoken.Tiktoken {
	tkOnce.Do(func() {
		var err error
		tk, err = tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			panic("failed to load tiktoken: " + err.Error())
		}
	})
	return tk
}

func truncateToBudget(text string, budget int) string {
	tokens := getTokenizer().Encode(text, nil, nil)
	if len(tokens) <= budget {
		return text
	}
	return getTokenizer().Decode(tokens[:budget])
}
