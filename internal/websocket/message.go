package websocket

// OutgoingMessage 服务端推送给前端的统一包装
type OutgoingMessage struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}
