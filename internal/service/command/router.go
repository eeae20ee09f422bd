package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/lapakbot/internal/core"
	"github.com/sandevgo/lapakbot/internal/service/session"
)

// Resumable is implemented by guided multi-step commands. Once a
// session is open, every plain message from that operator is routed to
// Resume until the command ends it.
type Resumable interface {
	Resume(ctx context.Context, in core.Inbound, sess *session.Session) (string, error)
}

type Router struct {
	commands map[string]core.Command
	sessions *session.Store
}

func New(sessions *session.Store, commands []core.Command) *Router {
	r := &Router{
		commands: make(map[string]core.Command),
		sessions: sessions,
	}

	for _, cmd := range commands {
		r.commands[cmd.Name()] = cmd
	}
	return r
}

// Execute routes one operator message. handled=false means the input
// is neither a command nor part of a guided session and should flow on
// to the normal cascade.
func (r *Router) Execute(ctx context.Context, in core.Inbound) (string, bool) {
	input := strings.TrimSpace(in.Text)

	if strings.EqualFold(input, "/batal") {
		if _, ok := r.sessions.Get(in.SenderID, in.ChatID); !ok {
			return "Tidak ada perintah yang sedang berjalan.", true
		}
		r.sessions.End(in.SenderID, in.ChatID)
		return "Oke, perintah dibatalkan.", true
	}

	// An open guided session captures plain messages as step input.
	if sess, ok := r.sessions.Get(in.SenderID, in.ChatID); ok && !strings.HasPrefix(input, "/") {
		cmd, exists := r.commands[sess.CommandName]
		if !exists {
			r.sessions.End(in.SenderID, in.ChatID)
			return "", false
		}
		resumable, can := cmd.(Resumable)
		if !can {
			r.sessions.End(in.SenderID, in.ChatID)
			return "", false
		}
		result, err := resumable.Resume(ctx, in, sess)
		if err != nil {
			r.sessions.End(in.SenderID, in.ChatID)
			return fmt.Sprintf("Gagal: %v", err), true
		}
		return result, true
	}

	if !strings.HasPrefix(input, "/") {
		return "", false
	}

	parts := strings.Fields(input)
	name := strings.TrimPrefix(parts[0], "/")
	args := parts[1:]

	cmd, ok := r.commands[name]
	if !ok {
		return fmt.Sprintf("Perintah tidak dikenal: /%s\n\n%s", name, r.help()), true
	}

	result, err := cmd.Execute(ctx, in, args)
	if err != nil {
		return fmt.Sprintf("Gagal: %v", err), true
	}
	return result, true
}

func (r *Router) help() string {
	var sb strings.Builder
	sb.WriteString("Perintah yang tersedia:\n")
	for _, cmd := range r.commands {
		sb.WriteString(fmt.Sprintf("/%s — %s\n", cmd.Name(), cmd.Description()))
	}
	sb.WriteString("/batal — batalkan perintah yang sedang berjalan")
	return sb.String()
}
