package stage

import (
	"errors"
	"fmt"
	"sort"

	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/agentconfig"
)

var (
	ErrStageNotFound         = agentconfig.ErrStageNotFound
	ErrNoDefaultStage        = errors.New("no default stage configured")
	ErrMultipleDefaultStages = errors.New("more than one default stage configured")
	ErrInvalidTimeoutTarget  = errors.New("invalid timeout target stage")
	ErrInvalidCondition      = errors.New("invalid stage condition")
	ErrInvalidTimeoutAction  = errors.New("invalid timeout action")
)

// OutcomeKind tells the engine what to do with the lead
type OutcomeKind string

const (
	OutcomeStay       OutcomeKind = "stay"
	OutcomeTransition OutcomeKind = "transition"
	OutcomeHandoff    OutcomeKind = "handoff"
)

// Reason explains which rule produced an outcome
type Reason string

const (
	ReasonTransition Reason = "transition"
	ReasonTimeout    Reason = "timeout"
	ReasonMessageCap Reason = "message_cap"
	ReasonNoMatch    Reason = "no_match"
)

// LeadState is the lead's situation inside its current stage
type LeadState struct {
	LeadContext
	MinutesInStage  int `json:"minutesInStage"`
	MessagesInStage int `json:"messagesInStage"`
}

type Outcome struct {
	Kind          OutcomeKind `json:"kind"`
	Reason        Reason      `json:"reason"`
	FromStageID   string      `json:"fromStageId"`
	TargetStageID string      `json:"targetStageId,omitempty"`
	TransitionID  string      `json:"transitionId,omitempty"`
}

// Resolver picks the next stage for a lead
type Resolver struct {
	evaluator *ConditionEvaluator
}

func NewResolver() *Resolver {
	return &Resolver{evaluator: NewConditionEvaluator()}
}

// SortedTransitions orders transitions by ascending priority; ties keep list order
func SortedTransitions(transitions []agentconfig.StageTransition) []agentconfig.StageTransition {
	sorted := make([]agentconfig.StageTransition, len(transitions))
	copy(sorted, transitions)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority < sorted[j].Priority
	})
	return sorted
}

// Resolve evaluates the current stage's transitions, first satisfied wins.
// When none fires and the stage timed out or hit its message cap, the
// stage timeout action applies.
func (r *Resolver) Resolve(stages []agentconfig.ConversationStage, currentID string, lead LeadState) (Outcome, error) {
	current, ok := agentconfig.StageByID(stages, currentID)
	if !ok {
		return Outcome{}, fmt.Errorf("%w: %s", ErrStageNotFound, currentID)
	}

	for _, t := range SortedTransitions(current.Transitions) {
		target, ok := agentconfig.StageByID(stages, t.TargetStageID)
		if !ok || !target.IsActive || target.ID == current.ID {
			continue
		}
		fired, err := r.evaluator.Evaluate(t.Conditions, t.ConditionLogic, lead.LeadContext)
		if err != nil {
			return Outcome{}, fmt.Errorf("%w: transition %s: %v", ErrInvalidCondition, t.ID, err)
		}
		if fired {
			return Outcome{
				Kind:          OutcomeTransition,
				Reason:        ReasonTransition,
				FromStageID:   current.ID,
				TargetStageID: t.TargetStageID,
				TransitionID:  t.ID,
			}, nil
		}
	}

	settings := current.Settings
	var reason Reason
	switch {
	case settings.TimeoutMinutes > 0 && lead.MinutesInStage >= settings.TimeoutMinutes:
		reason = ReasonTimeout
	case settings.MaxMessagesInStage > 0 && lead.MessagesInStage >= settings.MaxMessagesInStage:
		reason = ReasonMessageCap
	default:
		return Outcome{Kind: OutcomeStay, Reason: ReasonNoMatch, FromStageID: current.ID}, nil
	}

	return applyTimeout(stages, current, reason)
}

func applyTimeout(stages []agentconfig.ConversationStage, current agentconfig.ConversationStage, reason Reason) (Outcome, error) {
	settings := current.Settings
	switch settings.TimeoutAction {
	case agentconfig.TimeoutStay, "":
		return Outcome{Kind: OutcomeStay, Reason: reason, FromStageID: current.ID}, nil

	case agentconfig.TimeoutHandoff:
		return Outcome{Kind: OutcomeHandoff, Reason: reason, FromStageID: current.ID}, nil

	case agentconfig.TimeoutTransition:
		target := settings.TimeoutTargetStageID
		if target == current.ID {
			return Outcome{}, fmt.Errorf("%w: stage %s times out into itself", ErrInvalidTimeoutTarget, current.ID)
		}
		if _, ok := agentconfig.StageByID(stages, target); !ok {
			return Outcome{}, fmt.Errorf("%w: %q", ErrInvalidTimeoutTarget, target)
		}
		return Outcome{Kind: OutcomeTransition, Reason: reason, FromStageID: current.ID, TargetStageID: target}, nil

	default:
		return Outcome{}, fmt.Errorf("%w: %q", ErrInvalidTimeoutAction, settings.TimeoutAction)
	}
}

// EntryStage returns the single default stage where every lead starts
func EntryStage(stages []agentconfig.ConversationStage) (agentconfig.ConversationStage, error) {
	var found []agentconfig.ConversationStage
	for _, s := range stages {
		if s.IsDefault {
			found = append(found, s)
		}
	}
	switch len(found) {
	case 0:
		return agentconfig.ConversationStage{}, ErrNoDefaultStage
	case 1:
		return found[0], nil
	default:
		return agentconfig.ConversationStage{}, fmt.Errorf("%w: %d stages", ErrMultipleDefaultStages, len(found))
	}
}

// Admits reports whether a lead satisfies a stage's entry conditions
func (r *Resolver) Admits(s agentconfig.ConversationStage, lead LeadContext) (bool, error) {
	ok, err := r.evaluator.Evaluate(s.EntryConditions, s.ConditionLogic, lead)
	if err != nil {
		return false, fmt.Errorf("%w: stage %s: %v", ErrInvalidCondition, s.ID, err)
	}
	return ok, nil
}

// Funnel returns the active stages in funnel order
func Funnel(stages []agentconfig.ConversationStage) []agentconfig.ConversationStage {
	var funnel []agentconfig.ConversationStage
	for _, s := range stages {
		if s.IsActive {
			funnel = append(funnel, s)
		}
	}
	sort.SliceStable(funnel, func(i, j int) bool {
		return funnel[i].Order < funnel[j].Order
	})
	return funnel
}
