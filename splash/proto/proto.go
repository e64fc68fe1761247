// Package proto is the driver command protocol: the text lines the boot
// process writes to the splash, and their mailbox encoding.
package proto

import (
	"encoding/binary"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"bootsplash/kernel"
)

// Kind identifies the command carried in kernel.Message.Kind.
type Kind uint16

const (
	MsgProgress Kind = iota + 1
	MsgLabel
	MsgAsk
	MsgRecovery
	MsgQuit
	MsgFadeIn
)

func (k Kind) String() string {
	switch k {
	case MsgProgress:
		return "progress"
	case MsgLabel:
		return "label"
	case MsgAsk:
		return "ask"
	case MsgRecovery:
		return "recovery"
	case MsgQuit:
		return "quit"
	case MsgFadeIn:
		return "fade-in"
	default:
		return "unknown"
	}
}

var (
	ErrUnknownCommand = errors.New("proto: unknown command")
	ErrBadArgument    = errors.New("proto: bad argument")
	ErrTooLarge       = errors.New("proto: command too large")
)

// Command is one decoded driver command.
type Command struct {
	Kind Kind
	// Progress is the percentage for MsgProgress.
	Progress int
	// Text is the label text, or the placeholder for MsgAsk.
	Text string
	// ID identifies the question for MsgAsk.
	ID string
	// Flag is "on" for MsgRecovery and "sticky" for MsgQuit.
	Flag bool
}

// ParseLine parses one protocol line:
//
//	progress <0..100>
//	label <text...>
//	ask <identifier> [placeholder...]
//	recovery on|off
//	quit [sticky]
//	fade-in
func ParseLine(line string) (Command, error) {
	line = strings.TrimRight(line, "\r\n")
	verb, rest, _ := strings.Cut(strings.TrimLeft(line, " \t"), " ")
	switch verb {
	case "progress":
		n, err := strconv.Atoi(strings.TrimSpace(rest))
		if err != nil || n < 0 || n > 100 {
			return Command{}, fmt.Errorf("%w: progress %q", ErrBadArgument, rest)
		}
		return Command{Kind: MsgProgress, Progress: n}, nil
	case "label":
		return Command{Kind: MsgLabel, Text: rest}, nil
	case "ask":
		id, placeholder, _ := strings.Cut(strings.TrimLeft(rest, " "), " ")
		if id == "" {
			return Command{}, fmt.Errorf("%w: ask needs an identifier", ErrBadArgument)
		}
		return Command{Kind: MsgAsk, ID: id, Text: placeholder}, nil
	case "recovery":
		switch strings.TrimSpace(rest) {
		case "on", "":
			return Command{Kind: MsgRecovery, Flag: true}, nil
		case "off":
			return Command{Kind: MsgRecovery}, nil
		}
		return Command{}, fmt.Errorf("%w: recovery %q", ErrBadArgument, rest)
	case "quit":
		switch strings.TrimSpace(rest) {
		case "":
			return Command{Kind: MsgQuit}, nil
		case "sticky":
			return Command{Kind: MsgQuit, Flag: true}, nil
		}
		return Command{}, fmt.Errorf("%w: quit %q", ErrBadArgument, rest)
	case "fade-in":
		return Command{Kind: MsgFadeIn}, nil
	default:
		return Command{}, fmt.Errorf("%w: %q", ErrUnknownCommand, verb)
	}
}

// FormatAnswer formats the reply to an ask command.
func FormatAnswer(id, value string) string {
	return "answer " + id + " " + value + "\n"
}

// Message encodes c as a mailbox message.
func (c Command) Message() (kernel.Message, error) {
	var payload []byte
	switch c.Kind {
	case MsgProgress:
		payload = ProgressPayload(c.Progress)
	case MsgLabel:
		payload = TextPayload(c.Text)
	case MsgAsk:
		payload = AskPayload(c.ID, c.Text)
	case MsgRecovery, MsgQuit:
		payload = FlagPayload(c.Flag)
	case MsgFadeIn:
	default:
		return kernel.Message{}, fmt.Errorf("%w: kind %d", ErrUnknownCommand, c.Kind)
	}
	msg, ok := kernel.NewMessage(uint16(c.Kind), payload)
	if !ok {
		return kernel.Message{}, fmt.Errorf("%w: %s", ErrTooLarge, c.Kind)
	}
	return msg, nil
}

// Decode decodes a mailbox message built by Command.Message.
func Decode(msg kernel.Message) (Command, error) {
	kind := Kind(msg.Kind)
	payload := msg.Payload()
	switch kind {
	case MsgProgress:
		p, ok := DecodeProgressPayload(payload)
		if !ok {
			return Command{}, ErrBadArgument
		}
		return Command{Kind: kind, Progress: p}, nil
	case MsgLabel:
		return Command{Kind: kind, Text: string(payload)}, nil
	case MsgAsk:
		id, placeholder, ok := DecodeAskPayload(payload)
		if !ok {
			return Command{}, ErrBadArgument
		}
		return Command{Kind: kind, ID: id, Text: placeholder}, nil
	case MsgRecovery, MsgQuit:
		flag, ok := DecodeFlagPayload(payload)
		if !ok {
			return Command{}, ErrBadArgument
		}
		return Command{Kind: kind, Flag: flag}, nil
	case MsgFadeIn:
		return Command{Kind: kind}, nil
	default:
		return Command{}, fmt.Errorf("%w: kind %d", ErrUnknownCommand, msg.Kind)
	}
}

// ProgressPayload encodes a MsgProgress payload.
//
// Layout:
//   - u8: percent
func ProgressPayload(percent int) []byte {
	return []byte{uint8(min(max(percent, 0), 100))}
}

// DecodeProgressPayload decodes a ProgressPayload.
func DecodeProgressPayload(payload []byte) (percent int, ok bool) {
	if len(payload) < 1 {
		return 0, false
	}
	return int(payload[0]), true
}

// TextPayload encodes a MsgLabel payload: the UTF-8 text, unterminated.
func TextPayload(s string) []byte { return []byte(s) }

// AskPayload encodes a MsgAsk payload.
//
// Layout (little-endian):
//   - u16: identifier length
//   - identifier bytes
//   - placeholder bytes (rest)
func AskPayload(id, placeholder string) []byte {
	buf := make([]byte, 2+len(id)+len(placeholder))
	binary.LittleEndian.PutUint16(buf[0:2], uint16(len(id)))
	copy(buf[2:], id)
	copy(buf[2+len(id):], placeholder)
	return buf
}

// DecodeAskPayload decodes an AskPayload.
func DecodeAskPayload(payload []byte) (id, placeholder string, ok bool) {
	if len(payload) < 2 {
		return "", "", false
	}
	n := int(binary.LittleEndian.Uint16(payload[0:2]))
	if len(payload) < 2+n {
		return "", "", false
	}
	return string(payload[2 : 2+n]), string(payload[2+n:]), true
}

// FlagPayload encodes a one-byte boolean payload.
func FlagPayload(v bool) []byte {
	if v {
		return []byte{1}
	}
	return []byte{0}
}

// DecodeFlagPayload decodes a FlagPayload.
func DecodeFlagPayload(payload []byte) (v bool, ok bool) {
	if len(payload) < 1 {
		return false, false
	}
	return payload[0] != 0, true
}
