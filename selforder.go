// Package selforder re-exports the root agent at the module root so host
// runtimes that import the repository path directly can locate it.
package selforder

import "self-order-agent/agent"

// Aliases for the agent package's public surface.
type (
	Agent      = agent.Agent
	Descriptor = agent.Descriptor
	Services   = agent.Services
	Tool       = agent.Tool
	Runtime    = agent.Runtime
)

// RootAgentName is the stable identifier of the root agent.
const RootAgentName = agent.Name

// NewRootAgent builds the root agent with its full tool registry.
func NewRootAgent(modelID string, svcs Services) (*Agent, error) {
	return agent.New(modelID, svcs)
}
