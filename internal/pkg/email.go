package pkg

import (
	"crypto/tls"
	"fmt"
	"html"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string // displayed sender, may equal Username
}

// Enabled reports whether outbound mail is configured at all.
func (c SMTPConfig) Enabled() bool {
	return c.Host != ""
}

func SendEmail(cfg SMTPConfig, to, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", cfg.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password)
	d.TLSConfig = &tls.Config{InsecureSkipVerify: false}
	return d.DialAndSend(m)
}

// CommentNotificationHTML is the body mailed to a post's author when
// somebody else comments on their post.
func CommentNotificationHTML(commenter, text string, postID uint64) string {
	return fmt.Sprintf(
		`<p><b>%s</b> commented on your post:</p><blockquote>%s</blockquote><p><a href="/posts/%d">Open the post</a></p>`,
		html.EscapeString(commenter), html.EscapeString(text), postID,
	)
}
