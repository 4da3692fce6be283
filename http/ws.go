package http

import (
	"context"
	"encoding/json"
	"net/http"
	"slices"
	"sync"
	"time"

	"github.com/fwojciec/startpage"
	"github.com/fwojciec/startpage/app"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// WriteTimeout bounds each WebSocket write.
const WriteTimeout = 10 * time.Second

// EventHello is sent by the page once connected. It carries the page's
// colour scheme preference, which the server needs to resolve the theme.
const EventHello app.EventType = "hello"

// Message is a frame sent from the server to the page.
type Message struct {
	Session string          `json:"session,omitempty"`
	Effects []app.Effect    `json:"effects,omitempty"`
	View    *app.View       `json:"view,omitempty"`
	Clock   *startpage.Face `json:"clock,omitempty"`
}

// inbound is a frame sent from the page to the server.
type inbound struct {
	app.Event
	PrefersDark bool `json:"prefersDark,omitempty"`
}

type session struct {
	id   string
	conn *websocket.Conn

	mu          sync.Mutex
	prefersDark bool
}

func (c *session) dark() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.prefersDark
}

func (c *session) send(m Message) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	_ = c.conn.SetWriteDeadline(time.Now().Add(WriteTimeout))
	return c.conn.WriteMessage(websocket.TextMessage, data)
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade", "err", err)
		return
	}
	sess := &session{id: uuid.NewString(), conn: conn}

	s.mu.Lock()
	s.sessions[sess.id] = sess
	s.mu.Unlock()
	s.logger.Debug("session opened", "session", sess.id)

	defer func() {
		conn.Close()
		s.mu.Lock()
		delete(s.sessions, sess.id)
		s.mu.Unlock()
		s.logger.Debug("session closed", "session", sess.id)
	}()

	ctx := r.Context()
	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			return
		}
		var in inbound
		if err := json.Unmarshal(msg, &in); err != nil {
			s.logger.Debug("malformed event", "session", sess.id, "err", err)
			continue
		}
		if err := s.handleEvent(ctx, sess, in); err != nil {
			s.logger.Warn("session write", "session", sess.id, "err", err)
			return
		}
	}
}

func (s *Server) handleEvent(ctx context.Context, sess *session, in inbound) error {
	if in.Type == EventHello {
		sess.mu.Lock()
		sess.prefersDark = in.PrefersDark
		sess.mu.Unlock()

		v, err := s.view(ctx, in.PrefersDark)
		if err != nil {
			return sess.send(Message{Session: sess.id, Effects: []app.Effect{app.Toast(startpage.ErrorMessage(err))}})
		}
		return sess.send(Message{Session: sess.id, View: &v})
	}

	effects := s.controller.Handle(ctx, in.Event)
	if !slices.ContainsFunc(effects, isRender) {
		if len(effects) == 0 {
			return nil
		}
		return sess.send(Message{Effects: effects})
	}

	v, err := s.view(ctx, sess.dark())
	if err != nil {
		return sess.send(Message{Effects: []app.Effect{app.Toast(startpage.ErrorMessage(err))}})
	}
	if err := sess.send(Message{Effects: effects, View: &v}); err != nil {
		return err
	}
	s.broadcastView(ctx, sess.id)
	return nil
}

func isRender(e app.Effect) bool {
	return e.Type == app.EffectRender
}

func (s *Server) snapshot() []*session {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]*session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, sess)
	}
	return out
}

// BroadcastView pushes the current view to every connected page.
func (s *Server) BroadcastView(ctx context.Context) {
	s.broadcastView(ctx, "")
}

func (s *Server) broadcastView(ctx context.Context, except string) {
	for _, sess := range s.snapshot() {
		if sess.id == except {
			continue
		}
		v, err := s.view(ctx, sess.dark())
		if err != nil {
			s.logger.Warn("render view", "err", err)
			return
		}
		if err := sess.send(Message{View: &v}); err != nil {
			s.logger.Debug("broadcast", "session", sess.id, "err", err)
		}
	}
}

// BroadcastClock pushes a clock face to every connected page.
func (s *Server) BroadcastClock(face startpage.Face) {
	for _, sess := range s.snapshot() {
		if err := sess.send(Message{Clock: &face}); err != nil {
			s.logger.Debug("clock tick", "session", sess.id, "err", err)
		}
	}
}

// Sessions returns the number of connected pages.
func (s *Server) Sessions() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}

func (s *Server) closeSessions() {
	for _, sess := range s.snapshot() {
		sess.mu.Lock()
		_ = sess.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "server shutting down"),
			time.Now().Add(time.Second))
		sess.mu.Unlock()
		_ = sess.conn.Close()
	}
}
