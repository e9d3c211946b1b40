// Package stream plays trajectory comparisons to websocket clients.
package stream

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/gorilla/websocket"

	"github.com/san-kum/trajsim/internal/ballistics"
	"github.com/san-kum/trajsim/internal/config"
	"github.com/san-kum/trajsim/internal/experiment"
)

const (
	DefaultFrameInterval = 40 * time.Millisecond
	DefaultMaxFrames     = 500
	// DefaultMaxSteps bounds each model's sample count for one request.
	DefaultMaxSteps = 1_000_000

	writeWait = 10 * time.Second
)

type HandlerConfig struct {
	Logger        *log.Logger
	Registry      *experiment.Registry
	FrameInterval time.Duration
	MaxFrames     int
	// MaxSteps caps both models for every request; query parameters cannot
	// raise it.
	MaxSteps int
	// Base is the configuration query parameters are applied to when no
	// preset is named.
	Base *config.Config
}

type Handler struct {
	logger   *log.Logger
	registry *experiment.Registry
	interval time.Duration
	maxFrame int
	maxSteps int
	base     config.Config
	upgrader websocket.Upgrader
}

func NewHandler(cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = log.Default()
	}
	registry := cfg.Registry
	if registry == nil {
		registry = experiment.NewRegistry()
	}
	interval := cfg.FrameInterval
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	maxFrames := cfg.MaxFrames
	if maxFrames <= 0 {
		maxFrames = DefaultMaxFrames
	}
	maxSteps := cfg.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	base := config.DefaultConfig()
	if cfg.Base != nil {
		base = cfg.Base
	}

	return &Handler{
		logger:   logger,
		registry: registry,
		interval: interval,
		maxFrame: maxFrames,
		maxSteps: maxSteps,
		base:     *base,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}
}

type summaryMessage struct {
	Type   string             `json:"type"`
	Label  string             `json:"label"`
	Params ballistics.Params  `json:"params"`
	Frames int                `json:"frames"`
	Vacuum ballistics.Summary `json:"vacuum"`
	Drag   ballistics.Summary `json:"drag"`
}

type frameMessage struct {
	Type   string            `json:"type"`
	Index  int               `json:"index"`
	Vacuum ballistics.Sample `json:"vacuum"`
	Drag   ballistics.Sample `json:"drag"`
}

type doneMessage struct {
	Type string `json:"type"`
}

type errorMessage struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	cfg, err := ConfigFromQuery(&h.base, r.URL.Query())
	var cmp *ballistics.Comparison
	if err == nil {
		if cfg.MaxSteps == 0 || cfg.MaxSteps > h.maxSteps {
			cfg.MaxSteps = h.maxSteps
		}
		cmp, err = experiment.New(cfg, h.registry).Run(r.Context())
	}
	if err != nil {
		h.logger.Printf("rejecting %s: %v", r.URL.RawQuery, err)
		h.reject(conn, err)
		return
	}

	gone := make(chan struct{})
	go func() {
		defer close(gone)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	indices := cmp.FrameIndices(h.maxFrame)
	if !h.writeJSON(conn, summaryMessage{
		Type:   "summary",
		Label:  cfg.Label(),
		Params: cmp.Params,
		Frames: len(indices),
		Vacuum: cmp.VacuumSummary,
		Drag:   cmp.DragSummary,
	}) {
		return
	}

	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for _, i := range indices {
		select {
		case <-ticker.C:
		case <-gone:
			return
		case <-r.Context().Done():
			return
		}
		if !h.writeJSON(conn, frameMessage{
			Type:   "frame",
			Index:  i,
			Vacuum: cmp.Vacuum.At(i),
			Drag:   cmp.Drag.At(i),
		}) {
			return
		}
	}

	if !h.writeJSON(conn, doneMessage{Type: "done"}) {
		return
	}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "done"))
}

func (h *Handler) reject(conn *websocket.Conn, cause error) {
	if !h.writeJSON(conn, errorMessage{Type: "error", Error: cause.Error()}) {
		return
	}
	reason := cause.Error()
	// Close frame payloads are limited to 125 bytes.
	if len(reason) > 120 {
		reason = reason[:120]
	}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.ClosePolicyViolation, reason))
}

func (h *Handler) writeJSON(conn *websocket.Conn, payload any) bool {
	data, err := json.Marshal(payload)
	if err != nil {
		h.logger.Printf("failed to marshal message: %v", err)
		return false
	}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return false
	}
	return true
}

// ConfigFromQuery starts from the named preset, or base when none is given,
// and applies numeric overrides. Angles are in degrees.
func ConfigFromQuery(base *config.Config, q url.Values) (*config.Config, error) {
	cfg := *base
	if name := q.Get("preset"); name != "" {
		p := config.GetPreset(name)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s", name)
		}
		cfg = *p
	}

	overrides := []struct {
		key string
		dst *float64
	}{
		{"speed", &cfg.Speed},
		{"angle", &cfg.AngleDeg},
		{"drag", &cfg.Drag},
		{"mass", &cfg.Mass},
		{"gravity", &cfg.Gravity},
		{"dt", &cfg.Dt},
	}
	for _, o := range overrides {
		raw := q.Get(o.key)
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid %s %q: %w", o.key, raw, err)
		}
		*o.dst = v
	}
	if integ := q.Get("integrator"); integ != "" {
		cfg.Integrator = integ
	}

	return &cfg, nil
}

// NewMux routes /ws to the handler and answers /healthz.
func NewMux(h *Handler) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.Handle)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})
	return mux
}
