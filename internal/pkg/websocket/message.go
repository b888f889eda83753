package websocket

import "errors"

// TypeNotification tags a pushed status-change notification.
const TypeNotification = "NOTIFICATION"

var (
	// ErrChannelClosed is returned when sending on a channel whose connection has gone away
	ErrChannelClosed = errors.New("channel closed")

	// ErrSendBufferFull is returned when a slow peer has not drained its outbound queue
	ErrSendBufferFull = errors.New("send buffer full")
)

// Message is the frame pushed to a connected user.
type Message struct {
	// Type of message, currently always "NOTIFICATION"
	Type string `json:"type"`

	// Message is the human-readable notification text
	Message string `json:"message"`
}

// NewNotification builds a notification frame.
func NewNotification(text string) Message {
	return Message{Type: TypeNotification, Message: text}
}

// Channel is a live push channel to one user.
type Channel interface {
	// Send queues msg for delivery. It never blocks.
	Send(msg Message) error

	// IsOpen reports whether the underlying connection is still usable.
	IsOpen() bool
}
