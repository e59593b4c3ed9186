package stage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/agentconfig"
)

func keyword(id, value string) agentconfig.StageCondition {
	return agentconfig.StageCondition{ID: id, Type: agentconfig.ConditionKeyword, Operator: agentconfig.OperatorContains, Value: value}
}

func twoStageFunnel() []agentconfig.ConversationStage {
	return []agentconfig.ConversationStage{
		{ID: "a", Name: "A", IsDefault: true, IsActive: true, Order: 1},
		{ID: "b", Name: "B", IsActive: true, Order: 2},
		{ID: "c", Name: "C", IsActive: true, Order: 3},
	}
}

func TestResolve_LowestPriorityWins(t *testing.T) {
	stages := twoStageFunnel()
	stages[0].Transitions = []agentconfig.StageTransition{
		{ID: "to_c", TargetStageID: "c", Priority: 2, ConditionLogic: agentconfig.LogicAnd, Conditions: []agentconfig.StageCondition{keyword("k2", "preço")}},
		{ID: "to_b", TargetStageID: "b", Priority: 1, ConditionLogic: agentconfig.LogicAnd, Conditions: []agentconfig.StageCondition{keyword("k1", "preço")}},
	}

	out, err := NewResolver().Resolve(stages, "a", LeadState{LeadContext: LeadContext{LastMessage: "Qual o preço?"}})
	require.NoError(t, err)
	assert.Equal(t, OutcomeTransition, out.Kind)
	assert.Equal(t, "b", out.TargetStageID)
	assert.Equal(t, "to_b", out.TransitionID)
}

func TestResolve_EqualPriorityKeepsListOrder(t *testing.T) {
	stages := twoStageFunnel()
	stages[0].Transitions = []agentconfig.StageTransition{
		{ID: "to_c", TargetStageID: "c", Priority: 1},
		{ID: "to_b", TargetStageID: "b", Priority: 1},
	}

	out, err := NewResolver().Resolve(stages, "a", LeadState{})
	require.NoError(t, err)
	assert.Equal(t, "c", out.TargetStageID)
}

func TestResolve_EmptyConditionLists(t *testing.T) {
	tests := []struct {
		name     string
		logic    agentconfig.ConditionLogic
		wantKind OutcomeKind
	}{
		{name: "and fires", logic: agentconfig.LogicAnd, wantKind: OutcomeTransition},
		{name: "unset logic behaves as and", logic: "", wantKind: OutcomeTransition},
		{name: "or never fires", logic: agentconfig.LogicOr, wantKind: OutcomeStay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stages := twoStageFunnel()
			stages[0].Transitions = []agentconfig.StageTransition{
				{ID: "t", TargetStageID: "b", Priority: 1, ConditionLogic: tt.logic},
			}
			out, err := NewResolver().Resolve(stages, "a", LeadState{})
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, out.Kind)
		})
	}
}

func TestResolve_SkipsInactiveTarget(t *testing.T) {
	stages := twoStageFunnel()
	stages[1].IsActive = false
	stages[0].Transitions = []agentconfig.StageTransition{
		{ID: "to_b", TargetStageID: "b", Priority: 1},
		{ID: "to_c", TargetStageID: "c", Priority: 2},
	}

	out, err := NewResolver().Resolve(stages, "a", LeadState{})
	require.NoError(t, err)
	assert.Equal(t, "c", out.TargetStageID)
}

func TestResolve_TimeoutActions(t *testing.T) {
	tests := []struct {
		name       string
		settings   agentconfig.StageSettings
		lead       LeadState
		wantKind   OutcomeKind
		wantReason Reason
		wantTarget string
		wantErr    error
	}{
		{
			name:       "not timed out",
			settings:   agentconfig.StageSettings{TimeoutMinutes: 60, TimeoutAction: agentconfig.TimeoutHandoff},
			lead:       LeadState{MinutesInStage: 59},
			wantKind:   OutcomeStay,
			wantReason: ReasonNoMatch,
		},
		{
			name:       "timeout hands off",
			settings:   agentconfig.StageSettings{TimeoutMinutes: 60, TimeoutAction: agentconfig.TimeoutHandoff},
			lead:       LeadState{MinutesInStage: 60},
			wantKind:   OutcomeHandoff,
			wantReason: ReasonTimeout,
		},
		{
			name:       "message cap transitions",
			settings:   agentconfig.StageSettings{MaxMessagesInStage: 5, TimeoutAction: agentconfig.TimeoutTransition, TimeoutTargetStageID: "c"},
			lead:       LeadState{MessagesInStage: 5},
			wantKind:   OutcomeTransition,
			wantReason: ReasonMessageCap,
			wantTarget: "c",
		},
		{
			name:       "zero limits never time out",
			settings:   agentconfig.StageSettings{TimeoutAction: agentconfig.TimeoutHandoff},
			lead:       LeadState{MinutesInStage: 10000, MessagesInStage: 10000},
			wantKind:   OutcomeStay,
			wantReason: ReasonNoMatch,
		},
		{
			name:       "stay on timeout",
			settings:   agentconfig.StageSettings{TimeoutMinutes: 1, TimeoutAction: agentconfig.TimeoutStay},
			lead:       LeadState{MinutesInStage: 2},
			wantKind:   OutcomeStay,
			wantReason: ReasonTimeout,
		},
		{
			name:     "dangling timeout target",
			settings: agentconfig.StageSettings{TimeoutMinutes: 1, TimeoutAction: agentconfig.TimeoutTransition, TimeoutTargetStageID: "missing"},
			lead:     LeadState{MinutesInStage: 2},
			wantErr:  ErrInvalidTimeoutTarget,
		},
		{
			name:     "self timeout target",
			settings: agentconfig.StageSettings{TimeoutMinutes: 1, TimeoutAction: agentconfig.TimeoutTransition, TimeoutTargetStageID: "a"},
			lead:     LeadState{MinutesInStage: 2},
			wantErr:  ErrInvalidTimeoutTarget,
		},
		{
			name:     "unknown timeout action",
			settings: agentconfig.StageSettings{TimeoutMinutes: 1, TimeoutAction: "escalate"},
			lead:     LeadState{MinutesInStage: 2},
			wantErr:  ErrInvalidTimeoutAction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stages := twoStageFunnel()
			stages[0].Settings = tt.settings

			out, err := NewResolver().Resolve(stages, "a", tt.lead)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantKind, out.Kind)
			assert.Equal(t, tt.wantReason, out.Reason)
			assert.Equal(t, tt.wantTarget, out.TargetStageID)
		})
	}
}

func TestResolve_TransitionBeatsTimeout(t *testing.T) {
	stages := twoStageFunnel()
	stages[0].Settings = agentconfig.StageSettings{TimeoutMinutes: 1, TimeoutAction: agentconfig.TimeoutHandoff}
	stages[0].Transitions = []agentconfig.StageTransition{{ID: "to_b", TargetStageID: "b", Priority: 1}}

	out, err := NewResolver().Resolve(stages, "a", LeadState{MinutesInStage: 100})
	require.NoError(t, err)
	assert.Equal(t, OutcomeTransition, out.Kind)
	assert.Equal(t, ReasonTransition, out.Reason)
}

func TestResolve_UnknownStage(t *testing.T) {
	_, err := NewResolver().Resolve(twoStageFunnel(), "nope", LeadState{})
	assert.ErrorIs(t, err, ErrStageNotFound)
}

func TestResolve_DefaultFunnel(t *testing.T) {
	stages := agentconfig.DefaultConversationStages()
	r := NewResolver()

	out, err := r.Resolve(stages, "stage_welcome", LeadState{LeadContext: LeadContext{Intent: "Interesse"}})
	require.NoError(t, err)
	assert.Equal(t, "stage_discovery", out.TargetStageID)

	out, err = r.Resolve(stages, "stage_discovery", LeadState{LeadContext: LeadContext{MentionedProducts: []string{"Curso de Vendas"}}})
	require.NoError(t, err)
	assert.Equal(t, "stage_presentation", out.TargetStageID)

	out, err = r.Resolve(stages, "stage_negotiation", LeadState{MinutesInStage: 1440})
	require.NoError(t, err)
	assert.Equal(t, OutcomeHandoff, out.Kind)
}

func TestEntryStage(t *testing.T) {
	stage, err := EntryStage(twoStageFunnel())
	require.NoError(t, err)
	assert.Equal(t, "a", stage.ID)

	none := twoStageFunnel()
	none[0].IsDefault = false
	_, err = EntryStage(none)
	assert.ErrorIs(t, err, ErrNoDefaultStage)

	many := twoStageFunnel()
	many[1].IsDefault = true
	_, err = EntryStage(many)
	assert.ErrorIs(t, err, ErrMultipleDefaultStages)
}

func TestFunnel(t *testing.T) {
	stages := []agentconfig.ConversationStage{
		{ID: "late", Order: 3, IsActive: true},
		{ID: "off", Order: 1, IsActive: false},
		{ID: "early", Order: 2, IsActive: true},
	}

	funnel := Funnel(stages)
	require.Len(t, funnel, 2)
	assert.Equal(t, "early", funnel[0].ID)
	assert.Equal(t, "late", funnel[1].ID)
}

func TestAdmits(t *testing.T) {
	s := agentconfig.ConversationStage{
		ConditionLogic:  agentconfig.LogicOr,
		EntryConditions: []agentconfig.StageCondition{keyword("k", "comprar|fechar")},
	}
	ok, err := NewResolver().Admits(s, LeadContext{LastMessage: "Quero FECHAR hoje"})
	require.NoError(t, err)
	assert.True(t, ok)
}
