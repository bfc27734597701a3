package main

import (
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"codeberg.org/digitalrecipes/parser/internal/config"
	"codeberg.org/digitalrecipes/parser/internal/logger"
	"github.com/gin-gonic/gin"
)

const (
	readTimeout  = 15 * time.Second
	writeTimeout = 15 * time.Second
	idleTimeout  = 60 * time.Second
)

// creates and configures a new server instance
func NewServer(cfg *config.Config) *Server {
	router := gin.New()

	server := &Server{
		config: cfg,
		router: router,
	}

	RegisterRoutes(router, server)

	server.httpServer = &http.Server{
		Addr:         cfg.Address(),
		Handler:      router,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return server
}

// binds the configured address; a taken port is an error, never a fallback
func (s *Server) Listen() error {
	ln, err := net.Listen("tcp", s.config.Address())
	if err != nil {
		return fmt.Errorf("failed to bind %s: %w", s.config.Address(), err)
	}

	s.listener = ln

	return nil
}

// returns the bound address, or nil before Listen
func (s *Server) Addr() net.Addr {
	if s.listener == nil {
		return nil
	}

	return s.listener.Addr()
}

// accepts connections until the listener is closed
func (s *Server) Serve() error {
	if s.listener == nil {
		return errors.New("server is not listening")
	}

	logger.Info("server listening",
		"address", s.listener.Addr().String(),
		"service", config.ServiceName,
		"version", config.ServiceVersion,
	)

	if err := s.httpServer.Serve(s.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("server stopped: %w", err)
	}

	return nil
}

// binds and serves, blocking until the process is terminated
func (s *Server) Run() error {
	if err := s.Listen(); err != nil {
		return err
	}

	return s.Serve()
}

// closes the listener and all connections immediately
func (s *Server) Close() error {
	return s.httpServer.Close()
}
