package wsserver

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/mo-shahab/go-pong-mvc/client"
	"github.com/mo-shahab/go-pong-mvc/config"
	"github.com/mo-shahab/go-pong-mvc/session"
)

// WebSocketHandler accepts websocket connections and gives each one its own
// game session.
type WebSocketHandler struct {
	Upgrader    websocket.Upgrader
	Config      config.Config
	Sessions    *session.Manager
	Connections map[string]*client.Client
	ConnToId    map[*websocket.Conn]string
	Mu          sync.Mutex
}
