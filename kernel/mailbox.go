package kernel

import (
	"runtime"
	"sync"
)

// MaxMessageBytes is the maximum payload size for a mailbox message.
const MaxMessageBytes = 512

const mailboxSlots = 32

// Message is a fixed-size message envelope.
type Message struct {
	Kind uint16
	Len  uint16
	Data [MaxMessageBytes]byte
}

// Payload returns the used part of Data.
func (m *Message) Payload() []byte {
	n := int(m.Len)
	if n > MaxMessageBytes {
		n = MaxMessageBytes
	}
	return m.Data[:n]
}

// NewMessage copies payload into a message. ok is false when the payload
// does not fit.
func NewMessage(kind uint16, payload []byte) (msg Message, ok bool) {
	if len(payload) > MaxMessageBytes {
		return Message{}, false
	}
	msg.Kind = kind
	msg.Len = uint16(len(payload))
	copy(msg.Data[:], payload)
	return msg, true
}

// Mailbox is a bounded multi-producer, single-consumer FIFO.
//
// Producers may live on any goroutine; the consumer is the main loop, which
// only ever uses TryRecv so a frame never waits on a producer.
type Mailbox struct {
	_     [0]func() // prevent accidental copying.
	mu    sync.Mutex
	head  uint32
	tail  uint32
	slots [mailboxSlots]Message
}

// TrySend attempts to enqueue a message, returning false if the mailbox is full.
func (mb *Mailbox) TrySend(msg Message) bool {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	if mb.head-mb.tail >= mailboxSlots {
		return false
	}
	mb.slots[mb.head%mailboxSlots] = msg
	mb.head++
	return true
}

// Send enqueues a message, yielding until there is room.
func (mb *Mailbox) Send(msg Message) {
	for !mb.TrySend(msg) {
		runtime.Gosched()
	}
}

// TryRecv attempts to dequeue one message, returning false if empty.
func (mb *Mailbox) TryRecv() (Message, bool) {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	if mb.tail == mb.head {
		return Message{}, false
	}
	msg := mb.slots[mb.tail%mailboxSlots]
	mb.tail++
	return msg, true
}

// Len returns the number of queued messages.
func (mb *Mailbox) Len() int {
	mb.mu.Lock()
	defer mb.mu.Unlock()
	return int(mb.head - mb.tail)
}
