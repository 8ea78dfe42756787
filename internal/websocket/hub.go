package websocket

import (
	"sync"

	"BlockJack/internal/utils"
)

type HubInterface interface {
	SendToSession(id string, msg OutgoingMessage)
	ClientBySession(id string) (*Client, bool)
	Close()
}

// Hub 每个 session 最多一条连接；游戏动作走 HTTP，
// 这里只负责把回合视图推给在看的客户端
type Hub struct {
	clients    map[string]*Client // sessionID -> client
	register   chan *Client
	unregister chan *Client
	sendOne    chan sendReq
	quit       chan struct{}
	mu         sync.RWMutex
}

type sendReq struct {
	SessionID string
	Message   OutgoingMessage
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		sendOne:    make(chan sendReq),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	utils.Info.Println("Hub started")

	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			// 同一 session 重连时顶掉旧连接
			if old, ok := h.clients[c.SessionID]; ok {
				close(old.Send)
			}
			h.clients[c.SessionID] = c
			utils.Info.Printf("Hub.register -> %s (当前连接数: %d)", c.SessionID, len(h.clients))
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if cur, ok := h.clients[c.SessionID]; ok && cur == c {
				delete(h.clients, c.SessionID)
				utils.Info.Printf("Hub.unregister -> %s (当前连接数: %d)", c.SessionID, len(h.clients))
				close(c.Send)
			}
			h.mu.Unlock()

		case req := <-h.sendOne:
			h.mu.RLock()
			client, ok := h.clients[req.SessionID]
			h.mu.RUnlock()
			if ok {
				select {
				case client.Send <- req.Message:
				default:
					// 慢客户端直接丢弃，不能阻塞结算路径
				}
			}

		case <-h.quit:
			h.mu.Lock()
			for _, c := range h.clients {
				close(c.Send)
			}
			h.clients = make(map[string]*Client)
			h.mu.Unlock()
			return
		}
	}
}

// SendToSession 没有连接时静默忽略
func (h *Hub) SendToSession(id string, msg OutgoingMessage) {
	h.sendOne <- sendReq{SessionID: id, Message: msg}
}

func (h *Hub) ClientBySession(id string) (*Client, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	c, ok := h.clients[id]
	return c, ok
}

func (h *Hub) Close() {
	close(h.quit)
}
