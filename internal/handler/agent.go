package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"self-order-agent/agent"
)

type AgentHandler struct {
	agent   *agent.Agent
	runtime agent.Runtime
}

func NewAgentHandler(a *agent.Agent, runtime agent.Runtime) *AgentHandler {
	return &AgentHandler{
		agent:   a,
		runtime: runtime,
	}
}

// GetAgent returns the agent descriptor for host-runtime discovery.
func (h *AgentHandler) GetAgent(c echo.Context) error {
	return c.JSON(http.StatusOK, h.agent.Descriptor())
}

func (h *AgentHandler) ListTools(c echo.Context) error {
	return c.JSON(http.StatusOK, h.agent.Registry().Tools())
}

// InvokeTool executes one tool by name with the request body as arguments.
func (h *AgentHandler) InvokeTool(c echo.Context) error {
	ctx := c.Request().Context()
	name := c.Param("name")

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "read request body")
	}

	result, err := h.agent.Registry().Invoke(ctx, name, json.RawMessage(body))
	if err != nil {
		if errors.Is(err, agent.ErrUnknownTool) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return err
	}

	return c.JSON(http.StatusOK, result)
}

type ChatRequest struct {
	Message string `json:"message"`
}

type ChatResponse struct {
	Response string `json:"response"`
}

// Chat forwards a user utterance to the configured runtime.
func (h *AgentHandler) Chat(c echo.Context) error {
	ctx := c.Request().Context()

	var req ChatRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	reply, err := h.runtime.Respond(ctx, req.Message)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, ChatResponse{Response: reply})
}
