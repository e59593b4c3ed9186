package repositories

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bytedance/sonic"

	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/agentconfig"
)

var (
	ErrAgentNotFound = errors.New("agent not found")
	ErrAgentExists   = errors.New("agent already exists")
)

type AgentRepo interface {
	Create(agent agentconfig.Agent) error
	FindByID(id string) (agentconfig.Agent, error)
	FindAll() ([]agentconfig.Agent, error)
	Update(agent agentconfig.Agent) error
	Delete(id string) error
}

// agentRepo keeps agents in memory. Every read and write goes through a deep
// copy so callers never share nested slices with the stored value.
type agentRepo struct {
	mu     sync.RWMutex
	agents map[string]agentconfig.Agent
	order  []string
}

func NewAgentRepo() AgentRepo {
	return &agentRepo{agents: make(map[string]agentconfig.Agent)}
}

func (r *agentRepo) Create(agent agentconfig.Agent) error {
	stored, err := clone(agent)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.agents[agent.ID]; ok {
		return fmt.Errorf("%w: %s", ErrAgentExists, agent.ID)
	}
	r.agents[agent.ID] = stored
	r.order = append(r.order, agent.ID)
	return nil
}

func (r *agentRepo) FindByID(id string) (agentconfig.Agent, error) {
	r.mu.RLock()
	agent, ok := r.agents[id]
	r.mu.RUnlock()
	if !ok {
		return agentconfig.Agent{}, fmt.Errorf("%w: %s", ErrAgentNotFound, id)
	}
	return clone(agent)
}

// FindAll returns agents in creation order
func (r *agentRepo) FindAll() ([]agentconfig.Agent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	agents := make([]agentconfig.Agent, 0, len(r.order))
	for _, id := range r.order {
		agent, err := clone(r.agents[id])
		if err != nil {
			return nil, err
		}
		agents = append(agents, agent)
	}
	return agents, nil
}

func (r *agentRepo) Update(agent agentconfig.Agent) error {
	stored, err := clone(agent)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.agents[agent.ID]; !ok {
		return fmt.Errorf("%w: %s", ErrAgentNotFound, agent.ID)
	}
	r.agents[agent.ID] = stored
	return nil
}

func (r *agentRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.agents[id]; !ok {
		return fmt.Errorf("%w: %s", ErrAgentNotFound, id)
	}
	delete(r.agents, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// clone deep-copies an agent through its JSON form
func clone(agent agentconfig.Agent) (agentconfig.Agent, error) {
	data, err := sonic.Marshal(agent)
	if err != nil {
		return agentconfig.Agent{}, fmt.Errorf("failed to copy agent %s: %w", agent.ID, err)
	}
	var out agentconfig.Agent
	if err := sonic.Unmarshal(data, &out); err != nil {
		return agentconfig.Agent{}, fmt.Errorf("failed to copy agent %s: %w", agent.ID, err)
	}
	return out, nil
}
