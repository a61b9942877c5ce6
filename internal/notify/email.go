package notify

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net"
	"net/smtp"
	"strings"
)

// Email submits the alert to the account's own mailbox over SMTP with
// STARTTLS (app-password auth, Gmail by default).
type Email struct {
	Address  string // recipient and SMTP login
	Password string
	SMTPAddr string // host:port
}

func NewEmail(address, password, smtpAddr string) *Email {
	if address == "" || password == "" {
		return nil
	}
	if smtpAddr == "" {
		smtpAddr = "smtp.gmail.com:587"
	}
	return &Email{Address: address, Password: password, SMTPAddr: smtpAddr}
}

func (e *Email) Name() string { return "email" }

func (e *Email) Send(ctx context.Context, title, text string) error {
	if e == nil || e.Address == "" || e.Password == "" {
		return errors.New("email disabled")
	}
	host, _, err := net.SplitHostPort(e.SMTPAddr)
	if err != nil {
		return fmt.Errorf("bad SMTP address %q: %w", e.SMTPAddr, err)
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", e.SMTPAddr)
	if err != nil {
		return err
	}
	if deadline, ok := ctx.Deadline(); ok {
		_ = conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, host)
	if err != nil {
		conn.Close()
		return err
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: host}); err != nil {
			return err
		}
	}
	if err := c.Auth(smtp.PlainAuth("", e.Address, e.Password, host)); err != nil {
		return err
	}
	if err := c.Mail(e.Address); err != nil {
		return err
	}
	if err := c.Rcpt(e.Address); err != nil {
		return err
	}

	w, err := c.Data()
	if err != nil {
		return err
	}
	msg := strings.Join([]string{
		"From: " + e.Address,
		"To: " + e.Address,
		"Subject: " + title,
		"MIME-Version: 1.0",
		"Content-Type: text/plain; charset=utf-8",
		"",
		text,
	}, "\r\n")
	if _, err := w.Write([]byte(msg)); err != nil {
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}
	return c.Quit()
}
