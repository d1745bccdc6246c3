package checkoutControllers

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/sayan01/groceri/models"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

var (
	feedMu      sync.Mutex
	feedClients = make(map[*websocket.Conn]bool)
)

// GET /checkout/feed — admins watch completed checkouts live.
func FeedHandler(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	feedMu.Lock()
	feedClients[conn] = true
	feedMu.Unlock()

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			feedMu.Lock()
			delete(feedClients, conn)
			feedMu.Unlock()
			break
		}
	}
}

type feedEvent struct {
	TransactionID uint   `json:"transaction_id"`
	Reference     string `json:"reference"`
	UserID        uint   `json:"user_id"`
	Total         string `json:"total"`
	Lines         int    `json:"lines"`
}

// Broadcast pushes a completed transaction summary to connected feed clients.
func Broadcast(trx *models.Transaction) {
	data, err := json.Marshal(feedEvent{
		TransactionID: trx.ID,
		Reference:     trx.Reference,
		UserID:        trx.UserID,
		Total:         trx.Total.StringFixed(2),
		Lines:         len(trx.Orders),
	})
	if err != nil {
		return
	}

	feedMu.Lock()
	defer feedMu.Unlock()
	for client := range feedClients {
		_ = client.WriteMessage(websocket.TextMessage, data)
	}
}
