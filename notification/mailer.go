// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package notification

import (
	"bytes"
	"fmt"
	"mime"
	"net"
	"net/smtp"
	"strconv"
	"strings"
)

// Mailer - delivers one plain text message
type Mailer interface {
	Send(to string, subject string, body string) error
}

// SMTPConfiguration - outgoing mail server
type SMTPConfiguration struct {
	Host     string `gluamapper:"host" json:"host"`
	Port     int    `gluamapper:"port" json:"port"`
	Username string `gluamapper:"username" json:"username"`
	Password string `gluamapper:"password" json:"password"`
	From     string `gluamapper:"from" json:"from"`
}

// SMTPMailer - Mailer using an authenticated SMTP relay
type SMTPMailer struct {
	address string
	auth    smtp.Auth
	from    string
}

// NewSMTPMailer - mailer for the configured relay
func NewSMTPMailer(configuration *SMTPConfiguration) *SMTPMailer {
	m := &SMTPMailer{
		address: net.JoinHostPort(configuration.Host, strconv.Itoa(configuration.Port)),
		from:    configuration.From,
	}
	if "" != configuration.Username {
		m.auth = smtp.PlainAuth("", configuration.Username, configuration.Password, configuration.Host)
	}
	return m
}

// Send - deliver the message
func (m *SMTPMailer) Send(to string, subject string, body string) error {
	return smtp.SendMail(m.address, m.auth, m.from, []string{to}, message(m.from, to, subject, body))
}

func message(from string, to string, subject string, body string) []byte {
	b := bytes.Buffer{}
	fmt.Fprintf(&b, "From: %s\r\n", from)
	fmt.Fprintf(&b, "To: %s\r\n", to)
	fmt.Fprintf(&b, "Subject: %s\r\n", mime.QEncoding.Encode("utf-8", headerText(subject)))
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/plain; charset=\"utf-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(body)
	return b.Bytes()
}

// a header value is a single line
var lineBreaks = strings.NewReplacer("\r\n", " ", "\r", " ", "\n", " ")

func headerText(s string) string {
	return strings.TrimSpace(lineBreaks.Replace(s))
}
