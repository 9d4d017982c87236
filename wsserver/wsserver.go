package wsserver

import (
	"log"

	"github.com/mo-shahab/go-pong-mvc/client"
	pb "github.com/mo-shahab/go-pong-mvc/proto"
)

// send encodes a message and queues it for the client.
func send(c *client.Client, msg *pb.Message) bool {
	encoded, err := pb.Marshal(msg)
	if err != nil {
		log.Printf("Failed to marshal %v message: %v", msg.Type, err)
		return false
	}
	return c.Send(encoded)
}

// sendHello tells the client which session it has joined and the stage size.
func (wsh *WebSocketHandler) sendHello(c *client.Client) bool {
	return send(c, &pb.Message{
		Type: pb.MsgTypeHello,
		Hello: &pb.HelloMessage{
			SessionID: c.SessionID,
			Width:     int32(wsh.Config.Width),
			Height:    int32(wsh.Config.Height),
		},
	})
}

// sendError sends an error message to a client
func (wsh *WebSocketHandler) sendError(c *client.Client, errorMsg string) {
	send(c, &pb.Message{
		Type:  pb.MsgTypeError,
		Error: &pb.ErrorMessage{Error: errorMsg},
	})
}

// Len returns the number of connected clients.
func (wsh *WebSocketHandler) Len() int {
	wsh.Mu.Lock()
	defer wsh.Mu.Unlock()
	return len(wsh.Connections)
}
