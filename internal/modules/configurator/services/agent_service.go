package services

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/agentconfig"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/export"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/followup"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/prompt"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/stage"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/modules/configurator/repositories"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/shared/utils"
)

var (
	ErrNoDraft            = errors.New("agent has no draft")
	ErrNoFollowUpStrategy = errors.New("agent has no follow-up strategy")
)

// AgentService manages saved agents and their in-progress drafts.
// A draft is created on first access and holds unsaved edits until it is
// saved (validated and committed) or discarded.
type AgentService struct {
	agentRepo repositories.AgentRepo
	exporter  *export.Service
	resolver  *stage.Resolver

	mu     sync.Mutex
	drafts map[string]*agentconfig.Store

	now func() time.Time
}

func NewAgentService(agentRepo repositories.AgentRepo, exporter *export.Service) *AgentService {
	return &AgentService{
		agentRepo: agentRepo,
		exporter:  exporter,
		resolver:  stage.NewResolver(),
		drafts:    make(map[string]*agentconfig.Store),
		now:       time.Now,
	}
}

// ListAgents returns every saved agent
func (s *AgentService) ListAgents() ([]agentconfig.Agent, error) {
	return s.agentRepo.FindAll()
}

// GetAgent returns the saved agent, ignoring any draft
func (s *AgentService) GetAgent(id string) (agentconfig.Agent, error) {
	return s.agentRepo.FindByID(id)
}

// CreateAgent stores a new default agent, optionally renamed
func (s *AgentService) CreateAgent(name string) (agentconfig.Agent, error) {
	agent := agentconfig.NewDefaultAgent(uuid.New().String())
	if name != "" {
		agent.Name = name
	}
	if err := s.agentRepo.Create(agent); err != nil {
		return agentconfig.Agent{}, fmt.Errorf("failed to create agent: %w", err)
	}

	utils.LogInfo("✅ Agent created", map[string]interface{}{"agent_id": agent.ID, "name": agent.Name})
	return agent, nil
}

// ImportAgent stores a complete agent after validation. An empty id gets a new one.
func (s *AgentService) ImportAgent(agent agentconfig.Agent) (agentconfig.Agent, agentconfig.Result, error) {
	if agent.ID == "" {
		agent.ID = uuid.New().String()
	}
	result := agentconfig.Validate(agent)
	if err := result.Err(); err != nil {
		return agentconfig.Agent{}, result, err
	}
	if err := s.agentRepo.Create(agent); err != nil {
		return agentconfig.Agent{}, result, fmt.Errorf("failed to import agent: %w", err)
	}
	return agent, result, nil
}

// ReplaceAgent overwrites a saved agent with a validated full configuration
func (s *AgentService) ReplaceAgent(id string, agent agentconfig.Agent) (agentconfig.Agent, agentconfig.Result, error) {
	if _, err := s.agentRepo.FindByID(id); err != nil {
		return agentconfig.Agent{}, agentconfig.Result{}, err
	}
	agent.ID = id
	result := agentconfig.Validate(agent)
	if err := result.Err(); err != nil {
		return agentconfig.Agent{}, result, err
	}
	if err := s.agentRepo.Update(agent); err != nil {
		return agentconfig.Agent{}, result, err
	}
	s.dropDraft(id)
	return agent, result, nil
}

func (s *AgentService) DeleteAgent(id string) error {
	if err := s.agentRepo.Delete(id); err != nil {
		return err
	}
	s.dropDraft(id)
	utils.LogInfo("🗑️ Agent deleted", map[string]interface{}{"agent_id": id})
	return nil
}

// SetActive toggles an agent. Activation requires a valid configuration.
func (s *AgentService) SetActive(id string, active bool) (agentconfig.Agent, error) {
	agent, err := s.agentRepo.FindByID(id)
	if err != nil {
		return agentconfig.Agent{}, err
	}
	if active {
		if err := agentconfig.Validate(agent).Err(); err != nil {
			return agentconfig.Agent{}, err
		}
	}
	agent.IsActive = active
	if err := s.agentRepo.Update(agent); err != nil {
		return agentconfig.Agent{}, err
	}
	return agent, nil
}

// DuplicateAgent copies a saved agent under a new id, inactive and without stats
func (s *AgentService) DuplicateAgent(id string) (agentconfig.Agent, error) {
	agent, err := s.agentRepo.FindByID(id)
	if err != nil {
		return agentconfig.Agent{}, err
	}
	agent.ID = uuid.New().String()
	agent.Name = agent.Name + " (cópia)"
	agent.IsActive = false
	agent.ConversationsToday = 0
	agent.WhatsappConnected = false

	if err := s.agentRepo.Create(agent); err != nil {
		return agentconfig.Agent{}, fmt.Errorf("failed to duplicate agent: %w", err)
	}
	return agent, nil
}

// Draft returns the working copy, opening one from the saved agent if needed
func (s *AgentService) Draft(id string) (agentconfig.Agent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	store, err := s.draftStore(id)
	if err != nil {
		return agentconfig.Agent{}, err
	}
	return store.Current(), nil
}

// PatchDraft merges a partial update into the draft without validating
func (s *AgentService) PatchDraft(id string, update agentconfig.AgentUpdate) (agentconfig.Agent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	store, err := s.draftStore(id)
	if err != nil {
		return agentconfig.Agent{}, err
	}
	return store.Update(update), nil
}

// AddStage appends a blank stage to the draft's funnel
func (s *AgentService) AddStage(id string) (agentconfig.Agent, agentconfig.ConversationStage, error) {
	var created agentconfig.ConversationStage
	agent, err := s.editStages(id, func(stages []agentconfig.ConversationStage) ([]agentconfig.ConversationStage, error) {
		var out []agentconfig.ConversationStage
		out, created = agentconfig.AddStage(stages, newStageID())
		return out, nil
	})
	if err != nil {
		return agentconfig.Agent{}, agentconfig.ConversationStage{}, err
	}
	return agent, created, nil
}

// DuplicateStage copies a draft stage under a new id at the end of the funnel
func (s *AgentService) DuplicateStage(id, stageID string) (agentconfig.Agent, agentconfig.ConversationStage, error) {
	var dup agentconfig.ConversationStage
	agent, err := s.editStages(id, func(stages []agentconfig.ConversationStage) ([]agentconfig.ConversationStage, error) {
		out, copied, err := agentconfig.DuplicateStage(stages, stageID, newStageID())
		dup = copied
		return out, err
	})
	if err != nil {
		return agentconfig.Agent{}, agentconfig.ConversationStage{}, err
	}
	return agent, dup, nil
}

// DeleteStage removes a non-default stage from the draft along with the
// transitions pointing at it
func (s *AgentService) DeleteStage(id, stageID string) (agentconfig.Agent, error) {
	return s.editStages(id, func(stages []agentconfig.ConversationStage) ([]agentconfig.ConversationStage, error) {
		return agentconfig.DeleteStage(stages, stageID)
	})
}

// SaveDraft validates the draft and commits it. On validation errors the
// draft is kept and a *agentconfig.ValidationError is returned. The draft
// lock is held from read to drop so concurrent patches are never lost.
func (s *AgentService) SaveDraft(id string) (agentconfig.Agent, agentconfig.Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	store, ok := s.drafts[id]
	if !ok {
		return agentconfig.Agent{}, agentconfig.Result{}, fmt.Errorf("%w: %s", ErrNoDraft, id)
	}

	draft := store.Current()
	draft.ID = id
	result := agentconfig.Validate(draft)
	if err := result.Err(); err != nil {
		utils.LogWarn("⚠️ Draft rejected", map[string]interface{}{"agent_id": id, "errors": len(result.Errors)})
		return agentconfig.Agent{}, result, err
	}

	if err := s.agentRepo.Update(draft); err != nil {
		return agentconfig.Agent{}, result, err
	}
	delete(s.drafts, id)

	utils.LogInfo("💾 Draft saved", map[string]interface{}{"agent_id": id, "warnings": len(result.Warnings)})
	return draft, result, nil
}

// DiscardDraft drops unsaved edits
func (s *AgentService) DiscardDraft(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.drafts[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNoDraft, id)
	}
	delete(s.drafts, id)
	return nil
}

// HasDraft reports whether the agent has unsaved edits
func (s *AgentService) HasDraft(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.drafts[id]
	return ok
}

// Validate checks the working copy: the draft if one is open, else the saved agent
func (s *AgentService) Validate(id string) (agentconfig.Result, error) {
	agent, err := s.workingCopy(id)
	if err != nil {
		return agentconfig.Result{}, err
	}
	return agentconfig.Validate(agent), nil
}

// CompilePrompt compiles the working copy's system prompt, optionally for one stage
func (s *AgentService) CompilePrompt(id, stageID string) (string, error) {
	agent, err := s.workingCopy(id)
	if err != nil {
		return "", err
	}
	if stageID == "" {
		return prompt.Compile(agent), nil
	}
	return prompt.CompileForStage(agent, stageID)
}

// Export renders the saved agent in the given format
func (s *AgentService) Export(id string, format export.ExportFormat) ([]byte, string, string, error) {
	agent, err := s.agentRepo.FindByID(id)
	if err != nil {
		return nil, "", "", err
	}
	data, contentType, err := s.exporter.Export(agent, format)
	if err != nil {
		return nil, "", "", err
	}
	return data, contentType, s.exporter.GetFileExtension(format), nil
}

// ResolveStage runs the stage resolver against the working copy
func (s *AgentService) ResolveStage(id, currentStageID string, lead stage.LeadState) (stage.Outcome, error) {
	agent, err := s.workingCopy(id)
	if err != nil {
		return stage.Outcome{}, err
	}
	if currentStageID == "" {
		entry, err := stage.EntryStage(agent.ConversationStages)
		if err != nil {
			return stage.Outcome{}, err
		}
		currentStageID = entry.ID
	}
	return s.resolver.Resolve(agent.ConversationStages, currentStageID, lead)
}

// NextFollowUp plans the next follow-up for a lead in a funnel stage.
// Quiet hours are evaluated in the agent's business-hours timezone.
func (s *AgentService) NextFollowUp(id string, funnelStage agentconfig.FunnelStage, history followup.History) (*followup.Plan, followup.GateDecision, error) {
	agent, err := s.workingCopy(id)
	if err != nil {
		return nil, followup.GateDecision{}, err
	}
	if agent.FollowUpStrategy == nil {
		return nil, followup.GateDecision{}, fmt.Errorf("%w: %s", ErrNoFollowUpStrategy, id)
	}
	loc, err := agent.BusinessHours.Location()
	if err != nil {
		return nil, followup.GateDecision{}, err
	}
	return followup.Next(*agent.FollowUpStrategy, funnelStage, history, s.now(), loc)
}

// draftStore returns the open draft or opens one. Callers hold s.mu.
func (s *AgentService) draftStore(id string) (*agentconfig.Store, error) {
	if store, ok := s.drafts[id]; ok {
		return store, nil
	}
	agent, err := s.agentRepo.FindByID(id)
	if err != nil {
		return nil, err
	}
	store := agentconfig.NewStore(agent)
	s.drafts[id] = store
	return store, nil
}

func (s *AgentService) editStages(id string, edit func([]agentconfig.ConversationStage) ([]agentconfig.ConversationStage, error)) (agentconfig.Agent, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	store, err := s.draftStore(id)
	if err != nil {
		return agentconfig.Agent{}, err
	}
	stages, err := edit(store.Current().ConversationStages)
	if err != nil {
		return agentconfig.Agent{}, err
	}
	return store.Update(agentconfig.AgentUpdate{ConversationStages: &stages}), nil
}

func newStageID() string {
	return "stage_" + uuid.New().String()
}

func (s *AgentService) workingCopy(id string) (agentconfig.Agent, error) {
	s.mu.Lock()
	store, ok := s.drafts[id]
	s.mu.Unlock()
	if ok {
		return store.Current(), nil
	}
	return s.agentRepo.FindByID(id)
}

func (s *AgentService) dropDraft(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, id)
}
