package entity

import "strconv"

const DefaultMessagePrefix = "Message"

var _ = isComparable[Message]

func isComparable[T comparable]() {}

// Message is the unit of work passed from the producer to a consumer.
type Message struct {
	seq   uint64
	label string
}

// NewMessage labels the seq-th message as "<prefix> <seq>".
func NewMessage(prefix string, seq uint64) Message {
	if prefix == "" {
		prefix = DefaultMessagePrefix
	}

	return Message{
		seq:   seq,
		label: prefix + " " + strconv.FormatUint(seq, 10),
	}
}

func (m Message) Seq() uint64 {
	return m.seq
}

func (m Message) Label() string {
	return m.label
}

func (m Message) String() string {
	return m.label
}
