package server

import (
	"context"
	"errors"
	"io"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/semaphore"

	"github.com/nhdewitt/http-router/internal/request"
	"github.com/nhdewitt/http-router/internal/response"
)

const (
	defaultMaxConnections = 128
	drainTimeout          = 500 * time.Millisecond
	maxDrainBytes         = 256 << 10
)

type Config struct {
	Addr            string
	MaxConnections  int64
	MaxRequestBytes int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
}

// Server accepts connections and answers exactly one request on each.
type Server struct {
	listener    net.Listener
	isListening atomic.Bool
	dispatcher  Dispatcher
	cfg         Config
	logger      *zap.Logger
	slots       *semaphore.Weighted
	ctx         context.Context
	cancel      context.CancelFunc
	wg          sync.WaitGroup
}

func Serve(cfg Config, d Dispatcher, logger *zap.Logger) (*Server, error) {
	listener, err := net.Listen("tcp", cfg.Addr)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MaxConnections <= 0 {
		cfg.MaxConnections = defaultMaxConnections
	}

	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		listener:   listener,
		dispatcher: d,
		cfg:        cfg,
		logger:     logger,
		slots:      semaphore.NewWeighted(cfg.MaxConnections),
		ctx:        ctx,
		cancel:     cancel,
	}
	s.isListening.Store(true)
	go s.listen()

	return s, nil
}

func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

func (s *Server) Close() error {
	if !s.isListening.CompareAndSwap(true, false) {
		return nil
	}

	s.cancel()
	if s.listener != nil {
		return s.listener.Close()
	}

	return nil
}

// Shutdown stops accepting and waits for in-flight connections until ctx
// is done.
func (s *Server) Shutdown(ctx context.Context) error {
	err := s.Close()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Server) listen() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if !s.isListening.Load() {
				return
			}
			s.logger.Error("accept connection failed", zap.Error(err))
			continue
		}

		// Blocks the accept loop while every slot is busy.
		if err := s.slots.Acquire(s.ctx, 1); err != nil {
			conn.Close()
			return
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer s.slots.Release(1)
			s.handle(conn)
		}()
	}
}

func (s *Server) handle(conn net.Conn) {
	defer conn.Close()

	start := time.Now()
	log := s.logger.With(
		zap.String("request_id", uuid.NewString()),
		zap.String("remote", conn.RemoteAddr().String()),
	)

	if s.cfg.ReadTimeout > 0 {
		_ = conn.SetReadDeadline(start.Add(s.cfg.ReadTimeout))
	}
	raw, err := request.ReadRaw(conn, s.cfg.MaxRequestBytes)

	var (
		req    *request.Request
		resp   *response.Response
		unread bool
	)
	switch {
	case errors.Is(err, io.EOF):
		log.Debug("connection closed before request")
		return
	case errors.Is(err, request.ErrRequestTooLarge):
		log.Warn("request too large", zap.Int("limit", s.cfg.MaxRequestBytes))
		resp = badRequest()
		unread = true
	case err != nil:
		log.Warn("read request failed", zap.Error(err))
		return
	default:
		req, err = request.Parse(raw)
		if err != nil {
			log.Warn("parse request failed", zap.Error(err))
			resp = badRequest()
		} else {
			resp = s.dispatch(req, log)
		}
	}

	if s.cfg.WriteTimeout > 0 {
		_ = conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
	}
	n, err := response.NewWriter(conn).WriteResponse(resp)
	if err != nil {
		log.Warn("write response failed", zap.Error(err))
		return
	}
	if unread {
		drain(conn)
	}

	fields := []zap.Field{
		zap.String("status", resp.StatusCode),
		zap.Int("bytes", n),
		zap.Duration("latency", time.Since(start)),
	}
	if req != nil {
		fields = append(fields,
			zap.String("method", req.Method.String()),
			zap.String("path", req.Resource.Path()),
		)
	}
	log.Info("access", fields...)
}

// drain half-closes conn and discards what the peer is still sending, so
// closing with unread input does not reset the connection before the
// response is read.
func drain(conn net.Conn) {
	if tc, ok := conn.(*net.TCPConn); ok {
		_ = tc.CloseWrite()
	}
	_ = conn.SetReadDeadline(time.Now().Add(drainTimeout))
	_, _ = io.Copy(io.Discard, io.LimitReader(conn, maxDrainBytes))
}

func (s *Server) dispatch(req *request.Request, log *zap.Logger) (resp *response.Response) {
	defer func() {
		if r := recover(); r != nil {
			log.Error("handler panic", zap.Any("panic", r), zap.Stack("stack"))
			resp = internalError()
		}
	}()
	resp = s.dispatcher.Dispatch(req)
	if resp == nil {
		resp = internalError()
	}
	return resp
}
