package mailer

import (
	"fmt"

	gomail "gopkg.in/gomail.v2"

	"github.com/4rul23/Kominfo-PKL-sub000/config"
)

// Mailer mengirim notifikasi email ke pengirim surat saat status berubah.
// Jika SMTP_HOST kosong (mode pengembangan) pengiriman dilewati tanpa error.
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
}

func NewFromEnv() *Mailer {
	return &Mailer{
		host: config.GetEnv("SMTP_HOST", ""),
		port: config.GetEnvAsInt("SMTP_PORT", 587),
		user: config.GetEnv("SMTP_USER", ""),
		pass: config.GetEnv("SMTP_PASS", ""),
		from: config.GetEnv("SMTP_FROM", "no-reply@kominfo.go.id"),
	}
}

func (m *Mailer) Enabled() bool {
	return m.host != ""
}

func (m *Mailer) Send(to, subject, body string) error {
	if !m.Enabled() || to == "" {
		return nil
	}
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/html", body)

	d := gomail.NewDialer(m.host, m.port, m.user, m.pass)
	return d.DialAndSend(msg)
}

// KirimStatusSurat menyusun dan mengirim notifikasi perubahan status surat.
func (m *Mailer) KirimStatusSurat(to, nomorTracking, status, catatan string) error {
	subject := fmt.Sprintf("[Layanan Surat] Status %s: %s", nomorTracking, status)
	body := fmt.Sprintf(
		"<p>Status surat Anda dengan nomor tracking <b>%s</b> kini: <b>%s</b>.</p>",
		nomorTracking, status)
	if catatan != "" {
		body += fmt.Sprintf("<p>Catatan petugas: %s</p>", catatan)
	}
	return m.Send(to, subject, body)
}
