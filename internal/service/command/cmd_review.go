package command

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/sandevgo/lapakbot/internal/core"
	"github.com/sandevgo/lapakbot/internal/knowledge"
)

// ReviewCommand lets the operator audit what the bot picked up on its
// own. Without arguments it lists unreviewed derived entries; with an
// id it marks that entry as checked.
type ReviewCommand struct {
	store *knowledge.Store
}

func NewReviewCommand(store *knowledge.Store) *ReviewCommand {
	return &ReviewCommand{store: store}
}

func (c *ReviewCommand) Name() string {
	return "review"
}

func (c *ReviewCommand) Description() string {
	return "Periksa jawaban yang dipelajari bot sendiri"
}

func (c *ReviewCommand) Execute(ctx context.Context, in core.Inbound, args []string) (string, error) {
	if len(args) == 0 {
		return c.list(ctx)
	}

	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return "Format: /review atau /review <id>", nil
	}
	if err := c.store.MarkReviewed(ctx, id); err != nil {
		return "", fmt.Errorf("failed to mark entry reviewed: %w", err)
	}
	return fmt.Sprintf("✅ Entri #%d ditandai sudah diperiksa.", id), nil
}

func (c *ReviewCommand) list(ctx context.Context) (string, error) {
	entries, err := c.store.Unreviewed(ctx)
	if err != nil {
		return "", err
	}
	if len(entries) == 0 {
		return "Tidak ada jawaban yang perlu diperiksa. 👍", nil
	}

	var sb strings.Builder
	sb.WriteString("📋 Jawaban yang dipelajari sendiri:\n\n")
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf("#%d • %s\n→ %s\n\n", e.ID, truncate(e.Trigger, 60), truncate(e.Response, 80)))
	}
	sb.WriteString("Ketik /review <id> kalau jawabannya sudah benar.")
	return sb.String(), nil
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
