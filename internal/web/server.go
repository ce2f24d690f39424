// Package web serves the game to browsers. The page draws on a canvas while
// the game itself runs on the server, one session per websocket.
package web

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/dharshanroshanth/snake/internal/config"
	"github.com/dharshanroshanth/snake/internal/ctxlog"
	"github.com/gorilla/websocket"
	"golang.org/x/sync/errgroup"
)

const (
	connectPath     = "/connect"
	shutdownTimeout = 5 * time.Second
)

type Server struct {
	cfg      config.Config
	lobby    *Lobby
	upgrader websocket.Upgrader
	logger   *slog.Logger
}

func NewServer(ctx context.Context, cfg config.Config) *Server {
	return &Server{
		cfg:   cfg,
		lobby: NewLobby(cfg.Server.MaxSessions),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: ctxlog.FromContext(ctx),
	}
}

// Lobby exposes the running sessions.
func (s *Server) Lobby() *Lobby {
	return s.lobby
}

// Handler routes the page, the websocket endpoint and the health check.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("GET "+connectPath, s.handleConnect)
	mux.HandleFunc("GET /health", s.handleHealth)
	return mux
}

// Run listens on the configured address until ctx is done, then shuts the
// server down and ends every session.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Server.Address)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.cfg.Server.Address, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	g, gctx := errgroup.WithContext(ctx)
	httpServer := &http.Server{
		Handler: s.Handler(),
		BaseContext: func(net.Listener) context.Context {
			return ctxlog.WithLogger(gctx, s.logger)
		},
	}

	g.Go(func() error {
		s.logger.Info("Snek server starting", "address", fmt.Sprintf("http://%s/", ln.Addr()))
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("Shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Error("Server shutdown failed", "error", err)
			return err
		}
		s.logger.Debug("Server shut down gracefully.")
		return nil
	})
	return g.Wait()
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	width, height := s.cfg.CanvasSize()
	page, err := Render("index", pageData{
		CanvasWidth:  width,
		CanvasHeight: height,
		CellSize:     s.cfg.CellSize,
		ConnectPath:  connectPath,
	})
	if err != nil {
		s.logger.Error("Failed to render page.", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(page.Bytes())
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.logger.Debug("Health check endpoint hit.", "remote_addr", r.RemoteAddr)
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "OK")
}

func (s *Server) handleConnect(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already answered the request.
		s.logger.Warn("Error upgrading connection.", "error", err, "remote_addr", r.RemoteAddr)
		return
	}
	defer conn.Close()

	id, ok := s.lobby.Join()
	if !ok {
		s.logger.Info("Lobby is full, turning browser away.", "remote_addr", r.RemoteAddr, "sessions", s.lobby.Len())
		if err := writeJSON(conn, message{Type: typeFull}); err != nil {
			s.logger.Debug("Failed to tell browser the lobby is full.", "error", err)
		}
		err := conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseTryAgainLater, "lobby is full"),
			time.Now().Add(writeWait))
		if err != nil {
			s.logger.Debug("Failed to close full-lobby connection.", "error", err)
		}
		return
	}
	defer s.lobby.Leave(id)

	ctx := ctxlog.WithLogger(r.Context(), s.logger)
	sess, err := newSession(ctx, id, conn, s.cfg.Game)
	if err != nil {
		s.logger.Error("Failed to start session.", "error", err)
		return
	}
	sess.run(ctx)
}
