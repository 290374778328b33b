package dashboard

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/reef-robotics/reefbot/pkg/robotlog"
)

// Server errors.
var (
	// ErrAlreadyStarted indicates Start was called twice.
	ErrAlreadyStarted = errors.New("dashboard server already started")

	// ErrBadHandshake indicates the client's opening message was invalid.
	ErrBadHandshake = errors.New("bad dashboard handshake")
)

// handshakeTimeout bounds how long a connection may sit idle before
// completing the hello exchange.
const handshakeTimeout = 5 * time.Second

// ServerConfig configures the dashboard server.
type ServerConfig struct {
	// Addr is the TCP listen address.
	Addr string

	// Secret is the shared handshake secret. Empty allows any client
	// presenting the empty-secret token.
	Secret string

	// FlushInterval is the delta publish cadence.
	FlushInterval time.Duration

	// Announce enables mDNS advertisement of the service.
	Announce bool

	// Instance is the mDNS instance name.
	Instance string
}

// DefaultServerConfig returns the default dashboard server configuration.
func DefaultServerConfig() ServerConfig {
	return ServerConfig{
		Addr:          ":5811",
		FlushInterval: 100 * time.Millisecond,
		Announce:      true,
		Instance:      "reefbot",
	}
}

// client is a connected dashboard console session.
type client struct {
	id   string
	conn net.Conn
	fw   *FrameWriter
}

// Server publishes a Board to dashboard clients over TCP.
type Server struct {
	cfg    ServerConfig
	board  *Board
	logger robotlog.Logger
	token  []byte

	mu        sync.Mutex
	ln        net.Listener
	clients   map[string]*client
	announcer *announcer
	cancel    context.CancelFunc
	started   bool

	wg sync.WaitGroup
}

// NewServer creates a dashboard server for the given board.
// A nil logger disables logging.
func NewServer(cfg ServerConfig, board *Board, logger robotlog.Logger) *Server {
	if logger == nil {
		logger = robotlog.NoopLogger{}
	}
	if cfg.FlushInterval <= 0 {
		cfg.FlushInterval = DefaultServerConfig().FlushInterval
	}
	return &Server{
		cfg:     cfg,
		board:   board,
		logger:  logger,
		token:   DeriveToken(cfg.Secret),
		clients: make(map[string]*client),
	}
}

// Start begins listening, accepting clients, and flushing deltas.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.started {
		return ErrAlreadyStarted
	}

	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("dashboard listen: %w", err)
	}
	s.ln = ln
	s.started = true

	ctx, s.cancel = context.WithCancel(ctx)

	if s.cfg.Announce {
		port := ln.Addr().(*net.TCPAddr).Port
		ann, err := announce(s.cfg.Instance, port)
		if err != nil {
			// The dashboard still works by direct address; keep going.
			s.logError("announce", err)
		} else {
			s.announcer = ann
		}
	}

	s.wg.Add(2)
	go s.acceptLoop(ctx)
	go s.flushLoop(ctx)
	return nil
}

// Addr returns the bound listen address, or nil before Start.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}

// Stop shuts the server down and disconnects all clients.
func (s *Server) Stop() {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return
	}
	s.started = false
	s.cancel()
	if s.announcer != nil {
		s.announcer.shutdown()
		s.announcer = nil
	}
	_ = s.ln.Close()
	for _, c := range s.clients {
		_ = c.conn.Close()
	}
	s.mu.Unlock()

	s.wg.Wait()
}

// acceptLoop accepts client connections until the listener closes.
func (s *Server) acceptLoop(ctx context.Context) {
	defer s.wg.Done()
	for {
		conn, err := s.ln.Accept()
		if err != nil {
			return
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handleConn(ctx, conn)
		}()
	}
}

// handleConn performs the handshake and then serves client writes.
func (s *Server) handleConn(ctx context.Context, conn net.Conn) {
	defer conn.Close()

	fr := NewFrameReader(conn)
	fw := NewFrameWriter(conn)

	c, err := s.handshake(conn, fr, fw)
	if err != nil {
		s.logError("handshake", err)
		return
	}

	s.mu.Lock()
	s.clients[c.id] = c
	s.mu.Unlock()
	s.logTraffic(c.id, robotlog.DirectionIn, "", 0)

	defer func() {
		s.mu.Lock()
		delete(s.clients, c.id)
		s.mu.Unlock()
	}()

	for {
		if ctx.Err() != nil {
			return
		}
		data, err := fr.ReadFrame()
		if err != nil {
			return
		}
		msg, err := DecodeMessage(data)
		if err != nil {
			s.reject(fw, err)
			continue
		}
		if msg.Type != TypeWrite {
			s.reject(fw, fmt.Errorf("%w: unexpected %s", ErrBadHandshake, msg.Type))
			continue
		}
		if err := s.board.Write(msg.Path, msg.Value); err != nil {
			s.reject(fw, err)
			continue
		}
		s.logTraffic(c.id, robotlog.DirectionIn, msg.Path, len(data))
	}
}

// handshake validates the hello and sends welcome plus a full snapshot.
func (s *Server) handshake(conn net.Conn, fr *FrameReader, fw *FrameWriter) (*client, error) {
	_ = conn.SetReadDeadline(time.Now().Add(handshakeTimeout))
	defer conn.SetReadDeadline(time.Time{})

	data, err := fr.ReadFrame()
	if err != nil {
		return nil, err
	}
	hello, err := DecodeMessage(data)
	if err != nil {
		return nil, err
	}
	if hello.Type != TypeHello {
		s.reject(fw, ErrBadHandshake)
		return nil, fmt.Errorf("%w: got %s", ErrBadHandshake, hello.Type)
	}
	if !VerifyToken(s.token, hello.Token) {
		s.reject(fw, ErrBadHandshake)
		return nil, fmt.Errorf("%w: token mismatch", ErrBadHandshake)
	}

	c := &client{
		id:   uuid.NewString(),
		conn: conn,
		fw:   fw,
	}

	if err := s.send(fw, Message{Type: TypeWelcome, ClientID: c.id}); err != nil {
		return nil, err
	}
	if err := s.send(fw, Message{Type: TypeSnapshot, Entries: s.board.Snapshot()}); err != nil {
		return nil, err
	}
	return c, nil
}

// flushLoop pushes dirty entries to all clients at the flush cadence.
func (s *Server) flushLoop(ctx context.Context) {
	defer s.wg.Done()

	ticker := time.NewTicker(s.cfg.FlushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.flush()
		}
	}
}

// flush sends one delta update to every connected client.
func (s *Server) flush() {
	dirty := s.board.Dirty()
	if len(dirty) == 0 {
		return
	}

	data, err := EncodeMessage(Message{Type: TypeUpdate, Entries: dirty})
	if err != nil {
		s.logError("flush", err)
		return
	}

	s.mu.Lock()
	clients := make([]*client, 0, len(s.clients))
	for _, c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()

	for _, c := range clients {
		if err := c.fw.WriteFrame(data); err != nil {
			// Reader side will notice the closed connection and clean up.
			_ = c.conn.Close()
			continue
		}
		s.logTraffic(c.id, robotlog.DirectionOut, "", len(data))
	}
}

// send encodes and writes one message.
func (s *Server) send(fw *FrameWriter, m Message) error {
	data, err := EncodeMessage(m)
	if err != nil {
		return err
	}
	return fw.WriteFrame(data)
}

// reject reports an error to the client, ignoring write failures.
func (s *Server) reject(fw *FrameWriter, cause error) {
	_ = s.send(fw, Message{Type: TypeError, Error: cause.Error()})
}

func (s *Server) logTraffic(clientID string, dir robotlog.Direction, entry string, size int) {
	s.logger.Log(robotlog.Event{
		Timestamp: time.Now(),
		Category:  robotlog.CategoryDashboard,
		Source:    "dashboard",
		Dashboard: &robotlog.DashboardEvent{
			ClientID:  clientID,
			Direction: dir,
			Entry:     entry,
			Size:      size,
		},
	})
}

func (s *Server) logError(op string, err error) {
	s.logger.Log(robotlog.Event{
		Timestamp: time.Now(),
		Category:  robotlog.CategoryError,
		Source:    "dashboard",
		Error:     &robotlog.ErrorEventData{Op: op, Message: err.Error()},
	})
}
