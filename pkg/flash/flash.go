// Package flash carries one-shot messages across a redirect. The message
// value itself is plain data; only Set and Pop know about the cookie
// transport, so services and repositories never touch cookie mechanics.
package flash

import (
	"encoding/base64"
	"encoding/json"
	"time"

	"github.com/gofiber/fiber/v2"
)

const CookieName = "task_flash"

const (
	KindSuccess = "success"
	KindWarning = "warning"
)

// Message is a kind-tagged text shown once on the next page render.
type Message struct {
	Kind string `json:"kind"`
	Text string `json:"text"`
}

func Success(text string) Message {
	return Message{Kind: KindSuccess, Text: text}
}

func Warning(text string) Message {
	return Message{Kind: KindWarning, Text: text}
}

// Encode packs the message into a cookie-safe string.
func (m Message) Encode() string {
	b, _ := json.Marshal(m)
	return base64.URLEncoding.EncodeToString(b)
}

// Decode is the inverse of Encode. The second return is false for values
// that are not a flash cookie payload.
func Decode(value string) (Message, bool) {
	b, err := base64.URLEncoding.DecodeString(value)
	if err != nil {
		return Message{}, false
	}
	var m Message
	if err := json.Unmarshal(b, &m); err != nil || m.Kind == "" {
		return Message{}, false
	}
	return m, true
}

// Set attaches the message to the response as a flash cookie, to be read
// exactly once by the following GET.
func Set(c *fiber.Ctx, m Message) {
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    m.Encode(),
		Path:     "/",
		HTTPOnly: true,
	})
}

// Pop reads the flash cookie from the request, clears it, and returns the
// message. Returns nil when no flash is pending.
func Pop(c *fiber.Ctx) *Message {
	value := c.Cookies(CookieName)
	if value == "" {
		return nil
	}

	// Expire the cookie so the message is delivered only once.
	c.Cookie(&fiber.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
	})

	m, ok := Decode(value)
	if !ok {
		return nil
	}
	return &m
}
