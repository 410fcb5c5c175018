package realtime

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

// UpgradeRequired rejects plain HTTP requests to the WebSocket endpoint.
func UpgradeRequired(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Handler streams hub events to the connected client as JSON frames. The
// subscription is torn down when the client disconnects.
func Handler(hub *Hub) fiber.Handler {
	return websocket.New(func(c *websocket.Conn) {
		ch := hub.Subscribe()
		defer hub.Unsubscribe(ch)

		// Reads are discarded; the socket exists to push change events.
		done := make(chan struct{})
		go func() {
			defer close(done)
			for {
				if _, _, err := c.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case event, ok := <-ch:
				if !ok {
					return
				}
				if err := c.WriteJSON(event); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	})
}
