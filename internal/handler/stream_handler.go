package handler

import (
	"bufio"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"stockadmin/internal/middleware"
	"stockadmin/internal/realtime"
)

// StreamHandler serves notification events over Server-Sent Events. Each
// connection subscribes to the public system channel plus the current
// user's private channel; frames are forwarded as published, with no
// replay of anything missed while disconnected.
type StreamHandler struct {
	broker *realtime.RedisBroker
	logger *slog.Logger
}

func NewStreamHandler(broker *realtime.RedisBroker, logger *slog.Logger) *StreamHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &StreamHandler{broker: broker, logger: logger}
}

func (h *StreamHandler) Stream(c *fiber.Ctx) error {
	userID := middleware.GetCurrentUserID(c)

	channels := []string{realtime.SystemChannel, realtime.UserChannel(userID)}
	for _, ch := range channels {
		if !realtime.Authorize(userID, ch) {
			return middleware.Forbidden("Not authorized for channel")
		}
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no")

	sub := h.broker.Subscribe(c.Context(), channels...)

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer sub.Close()

		fmt.Fprint(w, "event: connected\ndata: {}\n\n")
		if err := w.Flush(); err != nil {
			return
		}

		for msg := range sub.Channel() {
			// The envelope is already serialized JSON; forward it as one frame.
			fmt.Fprintf(w, "data: %s\n\n", msg.Payload)
			if err := w.Flush(); err != nil {
				h.logger.Debug("sse client disconnected",
					slog.String("user_id", userID.String()),
				)
				return
			}
		}
	}))

	return nil
}
