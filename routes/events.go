package routes

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Adjust this for production
	},
}

// Connected catalog-feed clients with mutex for thread safety
var wsClients = make(map[*websocket.Conn]bool)
var wsBroadcast = make(chan []byte, 100) // Buffered channel to prevent blocking
var wsMutex = &sync.Mutex{}

type catalogEvent struct {
	Event string `json:"event"`
	ID    uint   `json:"id"`
}

// publishEvent queues a catalog change for every connected feed client.
// Events are dropped when the buffer is full rather than blocking the
// request.
func publishEvent(event string, id uint) {
	payload, err := json.Marshal(catalogEvent{Event: event, ID: id})
	if err != nil {
		return
	}
	select {
	case wsBroadcast <- payload:
	default:
	}
}

// catalogEventLoop fans queued events out to all connected clients.
func catalogEventLoop(log *zap.SugaredLogger) {
	for message := range wsBroadcast {
		wsMutex.Lock()
		for client := range wsClients {
			if err := client.WriteMessage(websocket.TextMessage, message); err != nil {
				log.Warnw("websocket write failed", "error", err)
				client.Close()
				delete(wsClients, client)
			}
		}
		wsMutex.Unlock()
	}
}

// catalogFeedHandler upgrades the connection and keeps it registered
// until the client goes away. Inbound messages are ignored; the feed is
// one-way.
func catalogFeedHandler(log *zap.SugaredLogger) fiber.Handler {
	return adaptor.HTTPHandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Warnw("websocket upgrade failed", "error", err)
			return
		}
		defer conn.Close()

		wsMutex.Lock()
		wsClients[conn] = true
		wsMutex.Unlock()
		log.Infow("catalog feed client connected", "remote", conn.RemoteAddr().String())

		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
					log.Warnw("websocket read failed", "error", err)
				}
				wsMutex.Lock()
				delete(wsClients, conn)
				wsMutex.Unlock()
				log.Infow("catalog feed client disconnected", "remote", conn.RemoteAddr().String())
				break
			}
		}
	})
}
