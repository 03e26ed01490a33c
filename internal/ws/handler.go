package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/contrib/websocket"
	"github.com/lk16/flippy-bot/internal/bot"
	"github.com/lk16/flippy-bot/internal/models"
)

// Conn is the part of a websocket connection used by Handler.
type Conn interface {
	ReadMessage() (int, []byte, error)
	WriteMessage(messageType int, data []byte) error
}

type Handler struct {
	bot *bot.Bot
	ws  Conn
}

// NewHandler creates a new Handler.
func NewHandler(ws Conn, b *bot.Bot) *Handler {
	return &Handler{bot: b, ws: ws}
}

func (h *Handler) readMessage() (*Incoming, error) {
	var req Incoming

	msgType, msg, err := h.ws.ReadMessage()
	if err != nil {
		return nil, fmt.Errorf("ws read error: %w", err)
	}

	slog.Debug("read ws message", "msgType", msgType, "msg", string(msg))

	if msgType != websocket.TextMessage {
		return nil, fmt.Errorf("unexpected message type: %d", msgType)
	}

	if err = json.Unmarshal(msg, &req); err != nil {
		return nil, fmt.Errorf("unmarshal error: %w", err)
	}

	return &req, nil
}

func (h *Handler) writeMessage(outgoing *Outgoing) error {
	msg, err := json.Marshal(outgoing)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	slog.Debug("write ws message", "msg", string(msg))

	if err = h.ws.WriteMessage(websocket.TextMessage, msg); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	return nil
}

func (h *Handler) handleMessage(req *Incoming) (*Outgoing, error) {
	if req.Event == "" {
		return nil, errors.New("event field is either empty or missing")
	}

	switch req.Event {
	case bestMoveRequestEvent:
		return h.handleBestMoveRequest(req)
	default:
		return nil, fmt.Errorf("unknown event: %s", req.Event)
	}
}

// Handle handles the websocket connection.
// Requests with a bad payload or an illegal move get an error reply, other errors end the connection.
func (h *Handler) Handle() error {
	for {
		req, err := h.readMessage()
		if err != nil {
			return fmt.Errorf("ws read error: %w", err)
		}

		respData, err := h.handleMessage(req)
		if err != nil {
			if !bot.IsClientError(err) {
				return fmt.Errorf("ws handle error: %w", err)
			}
			respData = &Outgoing{ID: req.ID, Error: err.Error()}
		}

		if err = h.writeMessage(respData); err != nil {
			return fmt.Errorf("ws write error: %w", err)
		}
	}
}

func (h *Handler) handleBestMoveRequest(req *Incoming) (*Outgoing, error) {
	var reqData models.MoveRequest
	if err := json.Unmarshal(req.Data, &reqData); err != nil {
		return nil, fmt.Errorf("%w: %w", models.ErrInvalidPayload, err)
	}

	response, err := h.bot.BestMove(context.Background(), reqData)
	if err != nil {
		return nil, fmt.Errorf("failed to find best move: %w", err)
	}

	outgoing := &Outgoing{
		ID:   req.ID,
		Data: response,
	}

	return outgoing, nil
}
