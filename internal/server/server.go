package server

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"self-order-agent/internal/handler"
)

type Server struct {
	echo         *echo.Echo
	agentHandler *handler.AgentHandler
}

func NewServer(agentHandler *handler.AgentHandler) *Server {
	e := echo.New()

	e.Use(middleware.RequestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:         e,
		agentHandler: agentHandler,
	}

	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	api := s.echo.Group("/api")

	api.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok"})
	})

	api.GET("/agent", s.agentHandler.GetAgent)
	api.GET("/tools", s.agentHandler.ListTools)
	api.POST("/tools/:name", s.agentHandler.InvokeTool)
	api.POST("/chat", s.agentHandler.Chat)
}

func (s *Server) Start(address string) error {
	return s.echo.Start(address)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}
