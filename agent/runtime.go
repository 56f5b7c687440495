package agent

import (
	"context"
	"fmt"
)

// Runtime is the conversational engine that drives the agent. The real
// model-backed runtime lives outside this repository; LocalRuntime stands in
// when it is unavailable or explicitly forced via FORCE_LOCAL_ADK_FALLBACK.
type Runtime interface {
	Respond(ctx context.Context, prompt string) (string, error)
}

// LocalRuntime returns a deterministic templated response. It performs no
// model inference and never invokes tools; it exists so the process runs
// end to end without the hosted runtime.
type LocalRuntime struct {
	agent *Agent
}

func NewLocalRuntime(a *Agent) *LocalRuntime {
	return &LocalRuntime{agent: a}
}

func (r *LocalRuntime) Respond(ctx context.Context, prompt string) (string, error) {
	return fmt.Sprintf(
		"[mock:%s] The hosted agent runtime is not available. You asked: %s",
		r.agent.Name, prompt,
	), nil
}
