package seed

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/agentconfig"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/modules/configurator/repositories"
)

func TestMockAgentsAreValid(t *testing.T) {
	for _, agent := range MockAgents() {
		result := agentconfig.Validate(agent)
		assert.True(t, result.Valid(), "%s: %v", agent.Name, result.Errors)
	}
}

func TestScaledStrategy(t *testing.T) {
	fast := scaledStrategy(5, 0.7)
	assert.Equal(t, 5, fast.MaxDailyMessages)
	// cart abandoned attempt 1: 15 * 0.7 = 10.5, rounded half away from zero
	tmpl, ok := findTemplate(fast.Templates, "fu_cart_1")
	require.True(t, ok)
	assert.Equal(t, 11, tmpl.DelayMinutes)

	slow := scaledStrategy(2, 1.5)
	tmpl, ok = findTemplate(slow.Templates, "fu_decision_2")
	require.True(t, ok)
	assert.Equal(t, 6480, tmpl.DelayMinutes)
}

func TestSeed_Idempotent(t *testing.T) {
	repo := repositories.NewAgentRepo()

	created, err := Seed(repo)
	require.NoError(t, err)
	assert.Equal(t, 3, created)

	created, err = Seed(repo)
	require.NoError(t, err)
	assert.Equal(t, 0, created)

	agents, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, agents, 3)
	assert.Equal(t, "Vendedor Hunter", agents[0].Name)
}

func findTemplate(templates []agentconfig.FollowUpTemplate, id string) (agentconfig.FollowUpTemplate, bool) {
	for _, t := range templates {
		if t.ID == id {
			return t, true
		}
	}
	return agentconfig.FollowUpTemplate{}, false
}
