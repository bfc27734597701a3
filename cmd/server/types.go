package main

import (
	"net"
	"net/http"

	"codeberg.org/digitalrecipes/parser/internal/config"
	"github.com/gin-gonic/gin"
)

// holds all dependencies and state for the parser server
type Server struct {
	config     *config.Config
	router     *gin.Engine
	httpServer *http.Server
	listener   net.Listener
}
