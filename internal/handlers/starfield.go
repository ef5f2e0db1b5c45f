package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"starfolio.dev/internal/models"
	"starfolio.dev/internal/services"
	"starfolio.dev/internal/starfield"
)

const (
	defaultWidth  = 1920
	defaultHeight = 1080
	maxDimension  = 8192
)

// StarfieldHandler handles the background scene endpoints
type StarfieldHandler struct {
	service  *services.StarfieldService
	upgrader websocket.Upgrader
	logger   *zap.Logger
}

// NewStarfieldHandler creates a new StarfieldHandler
func NewStarfieldHandler(ss *services.StarfieldService, allowAllOrigins bool, logger *zap.Logger) *StarfieldHandler {
	h := &StarfieldHandler{
		service: ss,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 64 * 1024,
		},
		logger: logger,
	}
	if allowAllOrigins {
		h.upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	}
	return h
}

// clientMessage is what browsers send on the stream
type clientMessage struct {
	Type   string `json:"type"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// GetScene handles GET /api/starfield - scene snapshot for a viewport
func (h *StarfieldHandler) GetScene(w http.ResponseWriter, r *http.Request) {
	snapshot, err := h.service.Snapshot(viewportFromQuery(r))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, snapshot)
}

// Stream handles GET /ws/starfield - scene then frames over a websocket
func (h *StarfieldHandler) Stream(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("Websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	sess, err := h.service.NewSession(conn, viewportFromQuery(r))
	if err != nil {
		h.logger.Warn("Starfield unavailable", zap.Error(err))
		closeWith(conn, websocket.CloseInternalServerErr, "starfield unavailable")
		return
	}

	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()

	resizes := make(chan models.Viewport, 1)
	go h.readResizes(ctx, cancel, conn, resizes)

	h.logger.Info("Starfield stream opened", zap.String("session", sess.ID), zap.String("remote", r.RemoteAddr))
	err = sess.Stream(ctx, resizes)
	if err != nil && !isClosed(err) {
		h.logger.Warn("Starfield stream ended with error", zap.String("session", sess.ID), zap.Error(err))
	}
	closeWith(conn, websocket.CloseNormalClosure, "")
	h.logger.Info("Starfield stream closed",
		zap.String("session", sess.ID),
		zap.Uint64("frames", sess.Renderer.Frames()),
	)
}

// readResizes forwards client resize messages until the connection drops
func (h *StarfieldHandler) readResizes(ctx context.Context, cancel context.CancelFunc, conn *websocket.Conn, out chan<- models.Viewport) {
	defer cancel()
	for {
		var msg clientMessage
		if err := conn.ReadJSON(&msg); err != nil {
			return
		}
		if msg.Type != starfield.MessageResize {
			continue
		}
		vp := models.Viewport{
			Width:  clamp(msg.Width, 0, maxDimension),
			Height: clamp(msg.Height, 0, maxDimension),
		}
		select {
		case out <- vp:
		case <-ctx.Done():
			return
		}
	}
}

func viewportFromQuery(r *http.Request) models.Viewport {
	return models.Viewport{
		Width:  clamp(parseIntParam(r, "width", defaultWidth), 1, maxDimension),
		Height: clamp(parseIntParam(r, "height", defaultHeight), 1, maxDimension),
	}
}

func closeWith(conn *websocket.Conn, code int, text string) {
	msg := websocket.FormatCloseMessage(code, text)
	_ = conn.WriteControl(websocket.CloseMessage, msg, time.Now().Add(time.Second))
}

func isClosed(err error) bool {
	var ce *websocket.CloseError
	return errors.As(err, &ce) || errors.Is(err, websocket.ErrCloseSent)
}
