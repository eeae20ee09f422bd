package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandevgo/lapakbot/internal/core"
	"github.com/sandevgo/lapakbot/internal/service/session"
)

// TambahProdukCommand adds or updates a catalog item through a guided
// two-step dialog: name first, then the raw product text.
type TambahProdukCommand struct {
	repo     core.CatalogRepository
	sessions *session.Store
}

func NewTambahProdukCommand(repo core.CatalogRepository, sessions *session.Store) *TambahProdukCommand {
	return &TambahProdukCommand{repo: repo, sessions: sessions}
}

func (c *TambahProdukCommand) Name() string {
	return "tambahproduk"
}

func (c *TambahProdukCommand) Description() string {
	return "Tambah atau perbarui produk di katalog"
}

func (c *TambahProdukCommand) Execute(ctx context.Context, in core.Inbound, args []string) (string, error) {
	if _, ok := c.sessions.Start(in.SenderID, in.ChatID, c.Name()); !ok {
		return "Masih ada perintah lain yang berjalan. Ketik /batal dulu.", nil
	}
	return "Nama produknya apa? (contoh: netflix)", nil
}

func (c *TambahProdukCommand) Resume(ctx context.Context, in core.Inbound, sess *session.Session) (string, error) {
	switch sess.CurrentStep {
	case 0:
		name := strings.ToLower(strings.TrimSpace(in.Text))
		if name == "" || strings.HasPrefix(name, "/") {
			return "Nama produk tidak boleh kosong. Coba lagi, atau /batal.", nil
		}
		c.sessions.Advance(in.SenderID, in.ChatID, "name", name)
		return fmt.Sprintf(
			"Oke, %q. Sekarang kirim deskripsi produknya, misal:\n\n"+
				"1 Bulan: Rp 25.000\nGaransi: full\nFitur:\n- Akun private", name), nil

	case 1:
		text := strings.TrimSpace(in.Text)
		if text == "" {
			return "Deskripsi tidak boleh kosong. Coba lagi, atau /batal.", nil
		}
		name := sess.PartialData["name"]
		c.sessions.End(in.SenderID, in.ChatID)

		if err := c.repo.Upsert(ctx, core.CatalogEntry{Name: name, SourceText: text}); err != nil {
			return "", err
		}
		return fmt.Sprintf("Produk %q tersimpan di katalog.", name), nil

	default:
		c.sessions.End(in.SenderID, in.ChatID)
		return "Ada yang aneh dengan sesi ini, aku batalkan dulu ya.", nil
	}
}
