package session

import (
	"errors"
	"net/http"

	"BlockJack/internal/middleware"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc    *Service
	secret []byte
}

func NewHandler(svc *Service, secret []byte) *Handler {
	return &Handler{svc: svc, secret: secret}
}

// POST /session/new  开新会话并签发 session token
func (h *Handler) Create(c *gin.Context) {
	id, bal, err := h.svc.Create(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	token, err := middleware.NewSessionToken(h.secret, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "token generation failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"sessionId": id,
		"balance":   bal,
		"token":     token,
	})
}

// GET /session/resume
func (h *Handler) Resume(c *gin.Context) {
	sid := c.GetString("sid")
	bal, err := h.svc.Resume(c.Request.Context(), sid)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sessionId": sid, "balance": bal})
}

// POST /game/start  body: {bet}
func (h *Handler) Start(c *gin.Context) {
	var req StartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.svc.StartRound(c.Request.Context(), c.GetString("sid"), req.Bet)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, maskDealer(view))
}

// POST /game/hit
func (h *Handler) Hit(c *gin.Context) {
	view, err := h.svc.Hit(c.Request.Context(), c.GetString("sid"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, maskDealer(view))
}

// POST /game/stand
func (h *Handler) Stand(c *gin.Context) {
	view, err := h.svc.Stand(c.Request.Context(), c.GetString("sid"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, maskDealer(view))
}

// POST /wallet/reset
func (h *Handler) Reset(c *gin.Context) {
	bal, err := h.svc.ResetWallet(c.Request.Context(), c.GetString("sid"))
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"balance": bal})
}

// maskDealer 未结算时只亮庄家第一张、不报庄家点数（原版桌面行为）。
// Service 给的是全量视图，遮不遮由这层定。
func maskDealer(v *RoundView) *RoundView {
	if v.Settled || len(v.DealerHand) == 0 {
		return v
	}
	out := *v
	out.DealerHand = v.DealerHand[:1]
	out.DealerScore = 0
	return &out
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrUnknownSession):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidBet),
		errors.Is(err, ErrInsufficientFunds),
		errors.Is(err, ErrNoActiveRound):
		return http.StatusBadRequest
	case errors.Is(err, ErrRoundActive):
		return http.StatusConflict
	case errors.Is(err, ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}
