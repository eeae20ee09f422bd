package command

import (
	"context"

	"github.com/sandevgo/lapakbot/internal/core"
	"github.com/sandevgo/lapakbot/internal/teach"
)

// AjarCommand prints the teaching formats. The actual teaching happens
// in plain chat; this is the cheat sheet.
type AjarCommand struct{}

func NewAjarCommand() *AjarCommand {
	return &AjarCommand{}
}

func (c *AjarCommand) Name() string {
	return "ajar"
}

func (c *AjarCommand) Description() string {
	return "Lihat format untuk mengajari bot jawaban baru"
}

func (c *AjarCommand) Execute(ctx context.Context, in core.Inbound, args []string) (string, error) {
	return teach.FormatHelp(), nil
}
