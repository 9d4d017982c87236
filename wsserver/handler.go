// wsserver/handler.go

package wsserver

import (
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/websocket"
	"github.com/mo-shahab/go-pong-mvc/client"
	"github.com/mo-shahab/go-pong-mvc/config"
	pb "github.com/mo-shahab/go-pong-mvc/proto"
	"github.com/mo-shahab/go-pong-mvc/session"
)

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(cfg config.Config) *WebSocketHandler {
	return &WebSocketHandler{
		Upgrader:    websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		Config:      cfg,
		Sessions:    session.NewManager(cfg.MaxSessions),
		Connections: make(map[string]*client.Client),
		ConnToId:    make(map[*websocket.Conn]string),
	}
}

// disconnectPlayer handles player disconnection
func (wsh *WebSocketHandler) disconnectPlayer(conn *websocket.Conn) {
	wsh.Mu.Lock()
	clientId, exists := wsh.ConnToId[conn]
	if !exists {
		wsh.Mu.Unlock()
		return
	}
	c := wsh.Connections[clientId]
	delete(wsh.Connections, clientId)
	delete(wsh.ConnToId, conn)
	wsh.Mu.Unlock()

	// the session must stop before the queue is closed
	if c.SessionID != "" {
		wsh.Sessions.Remove(c.SessionID)
	}
	c.Close()

	log.Printf("Client %s disconnected", clientId)
}

// ServeHTTP handles WebSocket connections
func (wsh *WebSocketHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := wsh.Upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Error %s when connecting to the socket", err)
		return
	}

	c := client.New(conn, wsh.Config.SendQueue)

	wsh.Mu.Lock()
	wsh.Connections[c.ID] = c
	wsh.ConnToId[conn] = c.ID
	wsh.Mu.Unlock()

	// Message queue goroutine
	go c.WritePump()

	s, err := wsh.Sessions.Create(c, wsh.Config)
	if err != nil {
		log.Printf("Client %s refused: %v", c.ID, err)
		if errors.Is(err, session.ErrFull) {
			wsh.sendError(c, "Server is full")
		} else {
			wsh.sendError(c, "Could not create session")
		}
		wsh.disconnectPlayer(conn)
		return
	}

	wsh.sendHello(c)
	s.Start()

	// Handle incoming messages
	for {
		_, p, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Error reading message: %v", err)
			}
			wsh.disconnectPlayer(conn)
			return
		}

		message := &pb.Message{}
		if err := pb.Unmarshal(p, message); err != nil {
			log.Printf("Error unmarshalling protobuf: %v", err)
			wsh.sendError(c, "Invalid protobuf format")
			continue
		}

		wsh.handleMessage(c, s, message)
	}
}

// handleMessage processes incoming messages
func (wsh *WebSocketHandler) handleMessage(c *client.Client, s *session.Session, message *pb.Message) {
	switch message.Type {
	case pb.MsgTypeKey:
		if message.Key == nil {
			wsh.sendError(c, "Key message without body")
			return
		}
		wsh.handleKeyMessage(s, message.Key)

	default:
		log.Printf("Unexpected message type from client %s: %v", c.ID, message.Type)
		wsh.sendError(c, "Unexpected message type")
	}
}

// handleKeyMessage routes key presses and releases to the session
func (wsh *WebSocketHandler) handleKeyMessage(s *session.Session, key *pb.KeyMessage) {
	switch key.Action {
	case pb.KeyDown:
		s.KeyDown(int(key.Code))
	case pb.KeyUp:
		s.KeyUp(int(key.Code))
	}
}

// Shutdown closes every session and connection.
func (wsh *WebSocketHandler) Shutdown() {
	wsh.Mu.Lock()
	conns := make([]*websocket.Conn, 0, len(wsh.ConnToId))
	for conn := range wsh.ConnToId {
		conns = append(conns, conn)
	}
	wsh.Mu.Unlock()

	// closing the connection ends the read loop, which disconnects the player
	for _, conn := range conns {
		conn.Close()
	}
	wsh.Sessions.CloseAll()
}
