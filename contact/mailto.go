// Package contact composes mailto links and drives the contact form
package contact

import (
	"strings"
)

const upperHex = "0123456789ABCDEF"

// EncodeURIComponent percent-encodes s byte-wise over its UTF-8 form,
// leaving only A-Z a-z 0-9 - _ . ! ~ * ' ( ) unescaped
func EncodeURIComponent(s string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if !unreserved(s[i]) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 2*n)
	for i := 0; i < len(s); i++ {
		c := s[i]
		if unreserved(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0f])
	}
	return b.String()
}

func unreserved(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '-', '_', '.', '!', '~', '*', '\'', '(', ')':
		return true
	}
	return false
}

// Message is one contact form submission
type Message struct {
	Name    string
	Email   string
	Subject string
	Body    string
}

// MailBody is the body text carried in the mailto link
func (m Message) MailBody() string {
	return "Name: " + m.Name + "\nEmail: " + m.Email + "\n\n" + m.Body
}

// BuildMailto composes mailto:<recipient>?subject=...&body=... for msg
// The recipient is inserted as given
func BuildMailto(recipient string, msg Message) string {
	return "mailto:" + recipient +
		"?subject=" + EncodeURIComponent(msg.Subject) +
		"&body=" + EncodeURIComponent(msg.MailBody())
}
