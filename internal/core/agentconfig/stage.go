package agentconfig

import (
	"errors"
	"fmt"
)

var (
	ErrStageNotFound      = errors.New("stage not found")
	ErrDeleteDefaultStage = errors.New("the default stage cannot be deleted")
)

// StageColors is the palette new stages cycle through
var StageColors = []string{
	"#4CAF50", "#2196F3", "#9C27B0", "#FF9800", "#F44336",
	"#00BCD4", "#795548", "#607D8B", "#E91E63", "#3F51B5",
}

// ConversationStage is one state of the conversation funnel state machine.
// Exactly one stage of an agent must be the default entry stage.
type ConversationStage struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	Icon            string            `json:"icon"`
	Color           string            `json:"color"`
	IsDefault       bool              `json:"isDefault"`
	IsActive        bool              `json:"isActive"`
	Order           int               `json:"order"`
	Instructions    string            `json:"instructions"`
	EntryConditions []StageCondition  `json:"entryConditions"`
	ConditionLogic  ConditionLogic    `json:"conditionLogic"`
	Transitions     []StageTransition `json:"transitions"`
	EntryActions    []StageAction     `json:"entryActions"`
	Settings        StageSettings     `json:"settings"`
}

type StageSettings struct {
	AllowHumanHandoff    bool          `json:"allowHumanHandoff"`
	MaxMessagesInStage   int           `json:"maxMessagesInStage"`
	TimeoutMinutes       int           `json:"timeoutMinutes"`
	TimeoutAction        TimeoutAction `json:"timeoutAction"`
	TimeoutTargetStageID string        `json:"timeoutTargetStageId,omitempty"`
}

// StageCondition value semantics depend on Type and Operator, e.g. a numeric
// string for time_elapsed, or a "|"-separated alternation for keyword.
type StageCondition struct {
	ID       string            `json:"id"`
	Type     ConditionType     `json:"type"`
	Operator ConditionOperator `json:"operator"`
	Value    string            `json:"value"`
}

// StageTransition moves the lead to TargetStageID. Lower Priority is evaluated first.
type StageTransition struct {
	ID             string           `json:"id"`
	TargetStageID  string           `json:"targetStageId"`
	Conditions     []StageCondition `json:"conditions"`
	ConditionLogic ConditionLogic   `json:"conditionLogic"`
	Priority       int              `json:"priority"`
}

// StageByID looks a stage up in a stage list
func StageByID(stages []ConversationStage, id string) (ConversationStage, bool) {
	for _, s := range stages {
		if s.ID == id {
			return s, true
		}
	}
	return ConversationStage{}, false
}

// NewStage returns a blank active stage placed after the existing ones
func NewStage(id string, existing []ConversationStage) ConversationStage {
	return ConversationStage{
		ID:              id,
		Name:            "Novo Estágio",
		Description:     "Descrição do novo estágio",
		Icon:            "wave",
		Color:           StageColors[len(existing)%len(StageColors)],
		IsActive:        true,
		Order:           len(existing) + 1,
		Instructions:    "Instruções para este estágio...",
		EntryConditions: []StageCondition{},
		ConditionLogic:  LogicAnd,
		Transitions:     []StageTransition{},
		EntryActions:    []StageAction{},
		Settings: StageSettings{
			MaxMessagesInStage: 10,
			TimeoutMinutes:     60,
			TimeoutAction:      TimeoutStay,
		},
	}
}

// AddStage appends a new blank stage. The input slice is not modified.
func AddStage(stages []ConversationStage, id string) ([]ConversationStage, ConversationStage) {
	created := NewStage(id, stages)
	out := make([]ConversationStage, 0, len(stages)+1)
	out = append(out, stages...)
	return append(out, created), created
}

// DuplicateStage appends a copy of sourceID under newID. The copy is never
// the default stage and goes to the end of the funnel.
func DuplicateStage(stages []ConversationStage, sourceID, newID string) ([]ConversationStage, ConversationStage, error) {
	source, ok := StageByID(stages, sourceID)
	if !ok {
		return nil, ConversationStage{}, fmt.Errorf("%w: %s", ErrStageNotFound, sourceID)
	}

	dup := source
	dup.ID = newID
	dup.Name = source.Name + " (cópia)"
	dup.IsDefault = false
	dup.Order = len(stages) + 1
	dup.EntryConditions = append([]StageCondition(nil), source.EntryConditions...)
	dup.EntryActions = append([]StageAction(nil), source.EntryActions...)
	dup.Transitions = make([]StageTransition, len(source.Transitions))
	for i, t := range source.Transitions {
		t.Conditions = append([]StageCondition(nil), t.Conditions...)
		dup.Transitions[i] = t
	}

	out := make([]ConversationStage, 0, len(stages)+1)
	out = append(out, stages...)
	return append(out, dup), dup, nil
}

// DeleteStage removes a stage that is not the default one. Transitions into
// it are dropped and timeouts into it fall back to staying.
func DeleteStage(stages []ConversationStage, id string) ([]ConversationStage, error) {
	target, ok := StageByID(stages, id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrStageNotFound, id)
	}
	if target.IsDefault {
		return nil, fmt.Errorf("%w: %s", ErrDeleteDefaultStage, id)
	}

	out := make([]ConversationStage, 0, len(stages)-1)
	for _, s := range stages {
		if s.ID == id {
			continue
		}
		kept := make([]StageTransition, 0, len(s.Transitions))
		for _, t := range s.Transitions {
			if t.TargetStageID != id {
				kept = append(kept, t)
			}
		}
		s.Transitions = kept
		if s.Settings.TimeoutTargetStageID == id {
			s.Settings.TimeoutTargetStageID = ""
			if s.Settings.TimeoutAction == TimeoutTransition {
				s.Settings.TimeoutAction = TimeoutStay
			}
		}
		out = append(out, s)
	}
	return out, nil
}
