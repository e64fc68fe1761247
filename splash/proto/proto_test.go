package proto

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"progress 42", Command{Kind: MsgProgress, Progress: 42}},
		{"progress 100\r\n", Command{Kind: MsgProgress, Progress: 100}},
		{"label Mounting /home", Command{Kind: MsgLabel, Text: "Mounting /home"}},
		{"label", Command{Kind: MsgLabel}},
		{"ask luks Disk passphrase", Command{Kind: MsgAsk, ID: "luks", Text: "Disk passphrase"}},
		{"ask pin", Command{Kind: MsgAsk, ID: "pin"}},
		{"recovery", Command{Kind: MsgRecovery, Flag: true}},
		{"recovery off", Command{Kind: MsgRecovery}},
		{"quit", Command{Kind: MsgQuit}},
		{"quit sticky", Command{Kind: MsgQuit, Flag: true}},
		{"  fade-in", Command{Kind: MsgFadeIn}},
	}
	for _, tt := range tests {
		got, err := ParseLine(tt.line)
		if err != nil {
			t.Fatalf("ParseLine(%q) err = %v", tt.line, err)
		}
		if got != tt.want {
			t.Fatalf("ParseLine(%q) = %+v, want %+v", tt.line, got, tt.want)
		}
	}
}

func TestParseLineErrors(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"progress", ErrBadArgument},
		{"progress 101", ErrBadArgument},
		{"progress -1", ErrBadArgument},
		{"ask", ErrBadArgument},
		{"recovery maybe", ErrBadArgument},
		{"quit now", ErrBadArgument},
		{"reboot", ErrUnknownCommand},
	}
	for _, tt := range tests {
		if _, err := ParseLine(tt.line); !errors.Is(err, tt.want) {
			t.Fatalf("ParseLine(%q) err = %v, want %v", tt.line, err, tt.want)
		}
	}
}

func TestMessageDecode(t *testing.T) {
	cmds := []Command{
		{Kind: MsgProgress, Progress: 7},
		{Kind: MsgLabel, Text: "Starting udev"},
		{Kind: MsgAsk, ID: "luks", Text: "Passphrase for /dev/sda2"},
		{Kind: MsgRecovery, Flag: true},
		{Kind: MsgQuit},
		{Kind: MsgFadeIn},
	}
	for _, c := range cmds {
		msg, err := c.Message()
		if err != nil {
			t.Fatalf("%s: Message() err = %v", c.Kind, err)
		}
		got, err := Decode(msg)
		if err != nil {
			t.Fatalf("%s: Decode() err = %v", c.Kind, err)
		}
		if got != c {
			t.Fatalf("Decode() = %+v, want %+v", got, c)
		}
	}
}

func TestMessageTooLarge(t *testing.T) {
	c := Command{Kind: MsgLabel, Text: strings.Repeat("x", 600)}
	if _, err := c.Message(); !errors.Is(err, ErrTooLarge) {
		t.Fatalf("Message() err = %v, want ErrTooLarge", err)
	}
}

func TestDecodeAskPayloadShort(t *testing.T) {
	if _, _, ok := DecodeAskPayload([]byte{9, 0, 'a'}); ok {
		t.Fatalf("DecodeAskPayload() accepted a truncated identifier")
	}
}

func TestFormatAnswer(t *testing.T) {
	if got := FormatAnswer("luks", "hunter2"); got != "answer luks hunter2\n" {
		t.Fatalf("FormatAnswer() = %q", got)
	}
}

func TestReader(t *testing.T) {
	in := "# boot\nprogress 10\n\nbogus\nlabel done\n"
	r, err := NewReader(strings.NewReader(in), "")
	if err != nil {
		t.Fatalf("NewReader() err = %v", err)
	}
	cmd, err := r.Next()
	if err != nil || cmd.Kind != MsgProgress || cmd.Progress != 10 {
		t.Fatalf("Next() = %+v, %v", cmd, err)
	}
	if _, err := r.Next(); !errors.Is(err, ErrUnknownCommand) || !strings.Contains(err.Error(), "line 4") {
		t.Fatalf("Next() err = %v, want unknown command on line 4", err)
	}
	cmd, err = r.Next()
	if err != nil || cmd.Text != "done" {
		t.Fatalf("Next() = %+v, %v", cmd, err)
	}
	if _, err := r.Next(); err != io.EOF {
		t.Fatalf("Next() err = %v, want io.EOF", err)
	}
}

func TestReaderCharset(t *testing.T) {
	// "label Çé" in code page 437.
	in := []byte("label \x80\x82\n")
	r, err := NewReader(strings.NewReader(string(in)), "cp437")
	if err != nil {
		t.Fatalf("NewReader() err = %v", err)
	}
	cmd, err := r.Next()
	if err != nil {
		t.Fatalf("Next() err = %v", err)
	}
	if cmd.Text != "Çé" {
		t.Fatalf("Text = %q, want %q", cmd.Text, "Çé")
	}
}

func TestCharset(t *testing.T) {
	for _, name := range []string{"", "UTF-8", "latin1", "Windows 1252", "KOI8-R"} {
		if _, err := Charset(name); err != nil {
			t.Fatalf("Charset(%q) err = %v", name, err)
		}
	}
	if _, err := Charset("ebcdic-9000"); err == nil {
		t.Fatalf("Charset() accepted an unknown name")
	}
}
