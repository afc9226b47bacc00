package share

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

type Channel string

const (
	ChannelDownload Channel = "download"
	ChannelWhatsApp Channel = "whatsapp"
	ChannelTelegram Channel = "telegram"
)

// ParseChannel accepts the channel names case-insensitively; blank means download.
func ParseChannel(s string) (Channel, error) {
	switch c := Channel(strings.ToLower(strings.TrimSpace(s))); c {
	case "":
		return ChannelDownload, nil
	case ChannelDownload, ChannelWhatsApp, ChannelTelegram:
		return c, nil
	default:
		return "", fmt.Errorf("unknown share channel %q", s)
	}
}

// Delivers reports whether the channel pushes the quote through a transport.
func (c Channel) Delivers() bool {
	return c == ChannelWhatsApp || c == ChannelTelegram
}

type Sender interface {
	Send(ctx context.Context, msg Message, pdf []byte) error
}

// TransportFailure is never swallowed: callers surface it with the message
// so the user can fall back to a deep-link.
type TransportFailure struct {
	Channel Channel
	Err     error
}

func (e *TransportFailure) Error() string {
	return fmt.Sprintf("share via %s: %v", e.Channel, e.Err)
}

func (e *TransportFailure) Unwrap() error { return e.Err }

var ErrNotConfigured = errors.New("channel not configured")

// Deliver sends through the sender registered for c and wraps any failure.
func Deliver(ctx context.Context, senders map[Channel]Sender, c Channel, msg Message, pdf []byte) error {
	s, ok := senders[c]
	if !ok || s == nil {
		return &TransportFailure{Channel: c, Err: ErrNotConfigured}
	}
	if err := s.Send(ctx, msg, pdf); err != nil {
		var tf *TransportFailure
		if errors.As(err, &tf) {
			return err
		}
		return &TransportFailure{Channel: c, Err: err}
	}
	return nil
}
