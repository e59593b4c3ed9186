package schema

import (
	"testing"

	"github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/agentconfig"
)

func TestAgentSchema_Enums(t *testing.T) {
	s := AgentSchema()
	require.NotNil(t, s.Properties)
	assert.Equal(t, AgentSchemaID, string(s.ID))

	persona, ok := s.Properties.Get("persona")
	require.True(t, ok)
	assert.Len(t, persona.Enum, len(agentconfig.Persona("").Values()))
	assert.Contains(t, persona.Enum, "consultor")

	tone, ok := s.Properties.Get("voiceTone")
	require.True(t, ok)
	assert.Contains(t, tone.Enum, "profissional")
}

func TestAgentSchema_StageActionShape(t *testing.T) {
	s := AgentSchema()

	stages, ok := s.Properties.Get("conversationStages")
	require.True(t, ok)
	require.NotNil(t, stages.Items)

	actions, ok := stages.Items.Properties.Get("entryActions")
	require.True(t, ok)
	require.NotNil(t, actions.Items)
	assert.ElementsMatch(t, []string{"id", "type", "config"}, actions.Items.Required)

	actionType, ok := actions.Items.Properties.Get("type")
	require.True(t, ok)
	assert.Contains(t, actionType.Enum, "schedule_followup")
}

func TestAgentSchema_Marshals(t *testing.T) {
	data, err := sonic.Marshal(AgentSchema())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"greetingMessage"`)
}

func TestActionConfigSchemas(t *testing.T) {
	schemas := ActionConfigSchemas()
	assert.Len(t, schemas, len(agentconfig.ActionType("").Values()))

	tag := schemas[agentconfig.ActionTagLead]
	require.NotNil(t, tag)
	_, ok := tag.Properties.Get("tag")
	assert.True(t, ok)
}
