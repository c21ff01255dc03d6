package auth

import (
	"errors"
	"net/mail"
	"regexp"
	"strings"
)

var (
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrInvalidChannel    = errors.New("invalid channel")
	ErrChannelMismatch   = errors.New("identifier does not match channel")
)

type Channel string

const (
	ChannelPhone Channel = "PHONE"
	ChannelEmail Channel = "EMAIL"
)

// NewChannel accepts only the canonical upper-case names.
func NewChannel(s string) (Channel, error) {
	ch := Channel(s)
	if !ch.IsValid() {
		return "", ErrInvalidChannel
	}
	return ch, nil
}

func (c Channel) String() string {
	return string(c)
}

func (c Channel) IsValid() bool {
	switch c {
	case ChannelPhone, ChannelEmail:
		return true
	default:
		return false
	}
}

var phoneRegex = regexp.MustCompile(`^\+[0-9]{8,15}$`)

var phoneSeparators = strings.NewReplacer(" ", "", "-", "", "(", "", ")", "", ".", "")

// Identifier is a normalized phone number (E.164-ish) or e-mail address.
type Identifier struct {
	value   string
	channel Channel
}

func NewIdentifier(raw string, channel Channel) (Identifier, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return Identifier{}, ErrInvalidIdentifier
	}

	switch channel {
	case ChannelPhone:
		v := phoneSeparators.Replace(raw)
		if !phoneRegex.MatchString(v) {
			if strings.Contains(raw, "@") {
				return Identifier{}, ErrChannelMismatch
			}
			return Identifier{}, ErrInvalidIdentifier
		}
		return Identifier{value: v, channel: channel}, nil
	case ChannelEmail:
		addr, err := mail.ParseAddress(raw)
		if err != nil || addr.Address != raw || addr.Name != "" {
			if phoneRegex.MatchString(phoneSeparators.Replace(raw)) {
				return Identifier{}, ErrChannelMismatch
			}
			return Identifier{}, ErrInvalidIdentifier
		}
		return Identifier{value: strings.ToLower(addr.Address), channel: channel}, nil
	default:
		return Identifier{}, ErrInvalidChannel
	}
}

// ParseIdentifier infers the channel from the shape of raw.
func ParseIdentifier(raw string) (Identifier, error) {
	if strings.Contains(raw, "@") {
		return NewIdentifier(raw, ChannelEmail)
	}
	return NewIdentifier(raw, ChannelPhone)
}

func (i Identifier) Value() string    { return i.value }
func (i Identifier) Channel() Channel { return i.channel }
func (i Identifier) IsZero() bool     { return i.value == "" }
func (i Identifier) String() string   { return i.value }

// Masked hides most of the identifier for logs.
func (i Identifier) Masked() string {
	v := i.value
	if i.channel == ChannelEmail {
		at := strings.IndexByte(v, '@')
		if at <= 1 {
			return "***" + v[max(at, 0):]
		}
		return v[:1] + "***" + v[at:]
	}
	if len(v) <= 4 {
		return "***"
	}
	return strings.Repeat("*", len(v)-4) + v[len(v)-4:]
}
