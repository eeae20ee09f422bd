package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/lapakbot/internal/core"
	"github.com/sandevgo/lapakbot/internal/knowledge"
	"github.com/sandevgo/lapakbot/internal/service/session"
)

// ResetCommand wipes the learned knowledge base. Destructive, so it
// runs as a guided session with an explicit confirmation step.
type ResetCommand struct {
	store    *knowledge.Store
	sessions *session.Store
}

func NewResetCommand(store *knowledge.Store, sessions *session.Store) *ResetCommand {
	return &ResetCommand{store: store, sessions: sessions}
}

func (c *ResetCommand) Name() string {
	return "reset"
}

func (c *ResetCommand) Description() string {
	return "Hapus semua jawaban yang sudah diajarkan"
}

func (c *ResetCommand) Execute(ctx context.Context, in core.Inbound, args []string) (string, error) {
	if _, ok := c.sessions.Start(in.SenderID, in.ChatID, c.Name()); !ok {
		return "Masih ada perintah lain yang berjalan. Ketik /batal dulu.", nil
	}
	return fmt.Sprintf(
		"Ini akan menghapus %d jawaban yang sudah dipelajari dan tidak bisa dikembalikan.\n"+
			"Ketik YA untuk lanjut, atau /batal.", c.store.Count()), nil
}

func (c *ResetCommand) Resume(ctx context.Context, in core.Inbound, sess *session.Session) (string, error) {
	defer c.sessions.End(in.SenderID, in.ChatID)

	if !strings.EqualFold(strings.TrimSpace(in.Text), "ya") {
		return "Reset dibatalkan, tidak ada yang dihapus.", nil
	}
	if err := c.store.Reset(ctx); err != nil {
		return "", err
	}
	return "Semua jawaban yang dipelajari sudah dihapus.", nil
}
