// Package selforderagent is a compatibility shim: some host runtimes look
// for the agent under an underscored import path matching the original
// project name. It re-exports the same surface as the module root.
package selforderagent

import "self-order-agent/agent"

type (
	Agent      = agent.Agent
	Descriptor = agent.Descriptor
	Services   = agent.Services
	Tool       = agent.Tool
	Runtime    = agent.Runtime
)

const RootAgentName = agent.Name

func NewRootAgent(modelID string, svcs Services) (*Agent, error) {
	return agent.New(modelID, svcs)
}
