package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/NisaargPendal/local-clipboard-share/internal/config"
	"github.com/NisaargPendal/local-clipboard-share/internal/domain"
	"github.com/NisaargPendal/local-clipboard-share/internal/http/dto"
	"github.com/NisaargPendal/local-clipboard-share/internal/model"
	"github.com/NisaargPendal/local-clipboard-share/internal/queue"
	"github.com/NisaargPendal/local-clipboard-share/internal/service/clipboard"
	"github.com/NisaargPendal/local-clipboard-share/internal/sse"
)

type Handler struct {
	cfg *config.Config
	svc *clipboard.Service
	hub *sse.Hub
	log *zap.Logger
	pub queue.Publisher
}

func NewHandler(cfg *config.Config, svc *clipboard.Service, hub *sse.Hub, logger *zap.Logger, publisher queue.Publisher) *Handler {
	return &Handler{cfg: cfg, svc: svc, hub: hub, log: logger, pub: publisher}
}

func (h *Handler) CreateEntry(c *gin.Context) {
	var req dto.CreateEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Content == nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Content is required"})
		return
	}
	entry, err := h.svc.Create(c.Request.Context(), *req.Content)
	if err != nil {
		h.log.Error("create entry failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to create entry"})
		return
	}
	h.publishCreated(c, entry)
	c.JSON(http.StatusOK, dto.CreateEntryResponse{ID: entry.ID})
}

// publishCreated fans the event out to the broker when one is configured.
// Failures are logged, not surfaced: the entry is already durable.
func (h *Handler) publishCreated(c *gin.Context, entry model.Entry) {
	payload, err := json.Marshal(entry)
	if err != nil {
		h.log.Error("entry event marshal failed", zap.String("id", entry.ID), zap.Error(err))
		return
	}
	if err := h.pub.Publish(c.Request.Context(), payload, h.cfg.RabbitRoutingKey); err != nil {
		h.log.Error("entry event publish failed", zap.String("id", entry.ID), zap.Error(err))
	}
}

func (h *Handler) GetEntry(c *gin.Context) {
	id := c.Param("id")
	entry, err := h.svc.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrEntryNotFound) {
			c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: "Entry not found"})
			return
		}
		h.log.Error("get entry failed", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "failed to get entry"})
		return
	}
	c.JSON(http.StatusOK, dto.EntryResponse{Content: entry.Content, Timestamp: entry.Timestamp})
}

func (h *Handler) Watch(c *gin.Context) {
	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		h.log.Error("streaming unsupported")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "streaming unsupported"})
		return
	}

	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Header().Set("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	flusher.Flush()

	client := &sse.Client{
		Ch: make(chan model.Entry, 16),
	}
	h.hub.Register(client)
	defer h.hub.Unregister(client)

	heartbeat := time.NewTicker(h.cfg.SSEHeartbeat)
	defer heartbeat.Stop()

	for {
		select {
		case <-c.Request.Context().Done():
			return
		case <-heartbeat.C:
			if _, err := fmt.Fprint(c.Writer, ": ping\n\n"); err != nil {
				h.log.Error("heartbeat write failed", zap.Error(err))
				return
			}
			flusher.Flush()
		case entry, ok := <-client.Ch:
			if !ok {
				return
			}
			if err := writeEntry(c.Writer, entry); err != nil {
				h.log.Error("write entry event failed", zap.String("id", entry.ID), zap.Error(err))
				return
			}
			flusher.Flush()
		}
	}
}

func writeEntry(w http.ResponseWriter, entry model.Entry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	// SSE frame mapping:
	// - id: the entry identifier
	// - event: "entry" (JS uses addEventListener("entry", ...))
	// - data: JSON payload with id/content/timestamp
	_, err = fmt.Fprintf(w, "id: %s\nevent: entry\ndata: %s\n\n", entry.ID, payload)
	return err
}
