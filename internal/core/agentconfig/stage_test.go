package agentconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddStage(t *testing.T) {
	stages := DefaultConversationStages()

	out, created := AddStage(stages, "stage_new")
	require.Len(t, out, 6)
	assert.Len(t, stages, 5, "input is not modified")
	assert.Equal(t, created, out[5])

	assert.Equal(t, "stage_new", created.ID)
	assert.False(t, created.IsDefault)
	assert.True(t, created.IsActive)
	assert.Equal(t, 6, created.Order)
	assert.Equal(t, StageColors[5], created.Color)
	assert.Equal(t, LogicAnd, created.ConditionLogic)
	assert.Equal(t, StageSettings{MaxMessagesInStage: 10, TimeoutMinutes: 60, TimeoutAction: TimeoutStay}, created.Settings)

	agent := NewDefaultAgent("a")
	agent.WebhookURL = "https://n8n.example.com/hook"
	agent.ConversationStages = out
	assert.True(t, Validate(agent).Valid(), "added stage keeps the funnel valid")
}

func TestAddStage_ColorsWrap(t *testing.T) {
	var stages []ConversationStage
	for i := 0; i < len(StageColors); i++ {
		stages, _ = AddStage(stages, "s")
	}
	_, created := AddStage(stages, "next")
	assert.Equal(t, StageColors[0], created.Color)
}

func TestDuplicateStage(t *testing.T) {
	stages := DefaultConversationStages()

	out, dup, err := DuplicateStage(stages, "stage_welcome", "stage_copy")
	require.NoError(t, err)
	require.Len(t, out, 6)
	assert.Equal(t, "stage_copy", dup.ID)
	assert.Equal(t, "Boas-vindas (cópia)", dup.Name)
	assert.False(t, dup.IsDefault)
	assert.Equal(t, 6, dup.Order)
	assert.Equal(t, stages[0].Transitions, dup.Transitions)

	dup.Transitions[0].Conditions[0].Value = "changed"
	assert.Equal(t, "interesse", stages[0].Transitions[0].Conditions[0].Value, "copy does not share conditions")

	agent := NewDefaultAgent("a")
	agent.WebhookURL = "https://n8n.example.com/hook"
	agent.ConversationStages = out
	assert.True(t, Validate(agent).Valid(), "still exactly one default stage")

	_, _, err = DuplicateStage(stages, "stage_gone", "x")
	assert.ErrorIs(t, err, ErrStageNotFound)
}

func TestDeleteStage(t *testing.T) {
	stages := DefaultConversationStages()
	stages[1].Settings.TimeoutAction = TimeoutTransition
	stages[1].Settings.TimeoutTargetStageID = "stage_presentation"

	out, err := DeleteStage(stages, "stage_presentation")
	require.NoError(t, err)
	require.Len(t, out, 4)
	_, found := StageByID(out, "stage_presentation")
	assert.False(t, found)

	discovery, _ := StageByID(out, "stage_discovery")
	for _, tr := range discovery.Transitions {
		assert.NotEqual(t, "stage_presentation", tr.TargetStageID)
	}
	assert.Equal(t, TimeoutStay, discovery.Settings.TimeoutAction)
	assert.Empty(t, discovery.Settings.TimeoutTargetStageID)
	assert.Equal(t, "stage_presentation", stages[1].Settings.TimeoutTargetStageID, "input is not modified")

	agent := NewDefaultAgent("a")
	agent.WebhookURL = "https://n8n.example.com/hook"
	agent.ConversationStages = out
	result := Validate(agent)
	assert.True(t, result.Valid(), "no dangling references left: %v", result.Errors)
}

func TestDeleteStage_Errors(t *testing.T) {
	stages := DefaultConversationStages()

	_, err := DeleteStage(stages, "stage_welcome")
	assert.ErrorIs(t, err, ErrDeleteDefaultStage)

	_, err = DeleteStage(stages, "stage_gone")
	assert.ErrorIs(t, err, ErrStageNotFound)
}
