package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chzyer/readline"
	"github.com/sandevgo/lapakbot/internal/config"
	"github.com/sandevgo/lapakbot/internal/core"
	"github.com/sandevgo/lapakbot/internal/service/cascade"
	"github.com/sandevgo/lapakbot/internal/service/command"
	"github.com/sandevgo/lapakbot/pkg/log"
)

const localSenderID = "cli-local"

// ReadLine is a local chat console. The operator talks to the same
// cascade the customers get, always with admin rights, so teaching and
// commands can be tried before anything goes live.
type ReadLine struct {
	cfg      *config.AppConfig
	orch     *cascade.Orchestrator
	commands *command.Router
	rl       *readline.Instance
}

func NewReadLine(orch *cascade.Orchestrator, commands *command.Router, cfg *config.AppConfig) (*ReadLine, error) {
	// Ensure runtime directory exists
	if err := os.MkdirAll(cfg.RuntimePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create runtime directory: %w", err)
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          ">>> ",
		HistoryFile:     filepath.Join(cfg.RuntimePath, "input_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		return nil, err
	}

	return &ReadLine{
		cfg:      cfg,
		orch:     orch,
		commands: commands,
		rl:       rl,
	}, nil
}

func (r *ReadLine) Start(ctx context.Context) error {
	logger := log.FromCtx(ctx)
	logger.Info().Msg("local chat started, type 'exit' to quit")

	for {
		// Check context before blocking read
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.rl.Readline()
		if err != nil {
			if err == readline.ErrInterrupt {
				if len(line) == 0 {
					return nil // Exit on Ctrl+C
				}
				continue
			} else if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "exit" {
			return nil
		}
		if line == "" {
			continue
		}

		in := core.Inbound{
			SenderID:  localSenderID,
			ChatID:    localSenderID,
			Text:      line,
			Timestamp: time.Now(),
			IsAdmin:   true,
		}

		if r.commands != nil {
			if reply, handled := r.commands.Execute(ctx, in); handled {
				fmt.Fprintf(r.rl.Stdout(), "%s\n", reply)
				continue
			}
		}

		fmt.Fprintf(r.rl.Stdout(), "%s\n", r.orch.Handle(ctx, in))
	}
}

func (r *ReadLine) Shutdown(ctx context.Context) error {
	if r.rl != nil {
		return r.rl.Close()
	}
	return nil
}
