package client

import (
	"log"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// Client is one websocket connection. Messages for the client are queued on
// SendQueue and written by the write pump.
type Client struct {
	ID        string
	Conn      *websocket.Conn
	SendQueue chan []byte
	SessionID string

	closeOnce sync.Once
	mu        sync.Mutex
	closed    bool

	// messages dropped since the queue last accepted one
	dropped int
}

// New creates a Client with a random id and a send queue of the given size.
func New(conn *websocket.Conn, queueSize int) *Client {
	return &Client{
		ID:        uuid.New().String(),
		Conn:      conn,
		SendQueue: make(chan []byte, queueSize),
	}
}

// Send queues a message without blocking. The message is dropped if the queue
// is full or the client has been closed. A run of drops is logged when it
// starts and when it ends.
func (c *Client) Send(message []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}

	select {
	case c.SendQueue <- message:
		if c.dropped > 0 {
			log.Printf("Send queue for client %s drained, %d messages dropped", c.ID, c.dropped)
			c.dropped = 0
		}
		return true
	default:
		if c.dropped == 0 {
			log.Printf("Dropping messages, send queue full for client %s", c.ID)
		}
		c.dropped++
		return false
	}
}

// Dropped returns the number of messages dropped since the queue last
// accepted one.
func (c *Client) Dropped() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dropped
}

// Close closes the send queue, which ends the write pump. It is safe to call
// more than once.
func (c *Client) Close() {
	c.closeOnce.Do(func() {
		c.mu.Lock()
		c.closed = true
		close(c.SendQueue)
		c.mu.Unlock()
	})
}

// WritePump writes queued messages to the connection until the queue is
// closed or a write fails. It closes the connection when it returns.
func (c *Client) WritePump() {
	defer c.Conn.Close()

	for msg := range c.SendQueue {
		if err := c.Conn.WriteMessage(websocket.BinaryMessage, msg); err != nil {
			log.Printf("Binary message write error for client %s: %v", c.ID, err)
			return
		}
	}

	c.Conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
