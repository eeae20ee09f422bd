package cascade

// Fixed user-facing templates. Variants are equivalent; the picker
// chooses one per reply.

var greetingVariants = []string{
	"Halo kak! Ada yang bisa dibantu? Ketik nama produk buat cek harga ya 😊",
	"Hai! Mau cek produk apa hari ini kak?",
	"Halo! Silakan tanya harga atau info produk apa aja ya kak.",
}

var thanksVariants = []string{
	"Sama-sama kak! Kalau ada kendala tinggal chat lagi ya 🙏",
	"Siap kak, makasih juga sudah belanja di sini!",
}

var angryTemplate = "Mohon maaf banget atas kendalanya kak 🙏 Keluhan kakak sudah kami catat " +
	"dan admin akan segera bantu cek. Boleh kirim detail order/akunnya biar cepat kami proses?"

var offTopicTemplate = "Hehe maaf kak, aku cuma bisa bantu seputar produk di lapak ini ya. " +
	"Mau cek harga atau info produk apa?"

var clarifyVariants = []string{
	"Maaf kak, aku kurang nangkep maksudnya. Bisa tulis nama produk atau pertanyaannya lebih jelas?",
	"Hmm, boleh diketik ulang kak? Contoh: \"harga netflix\" atau \"cara bayar\".",
}

var emptyInputTemplate = "Pesannya kosong nih kak. Ketik nama produk atau pertanyaan ya."

var failureTemplate = "Waduh, lagi ada gangguan kecil di sistem kami kak 🙏 Coba ulangi sebentar lagi ya."

var catalogListHeader = "Produk yang tersedia saat ini:"

var teachConfirmTemplate = "Oke, aku ingat ya!\nKalau ada yang tanya: %q\nAku jawab: %q"

var teachBlockedTemplate = "Maaf, pengajaran ditolak: %s\n- %s"
