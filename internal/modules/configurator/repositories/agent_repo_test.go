package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/agentconfig"
)

func TestAgentRepo_CRUD(t *testing.T) {
	repo := NewAgentRepo()

	require.NoError(t, repo.Create(agentconfig.NewDefaultAgent("a")))
	require.NoError(t, repo.Create(agentconfig.NewDefaultAgent("b")))
	assert.ErrorIs(t, repo.Create(agentconfig.NewDefaultAgent("a")), ErrAgentExists)

	agent, err := repo.FindByID("a")
	require.NoError(t, err)
	assert.Equal(t, "a", agent.ID)

	_, err = repo.FindByID("missing")
	assert.ErrorIs(t, err, ErrAgentNotFound)

	agent.Name = "Renamed"
	require.NoError(t, repo.Update(agent))
	agent, err = repo.FindByID("a")
	require.NoError(t, err)
	assert.Equal(t, "Renamed", agent.Name)

	assert.ErrorIs(t, repo.Update(agentconfig.NewDefaultAgent("ghost")), ErrAgentNotFound)

	require.NoError(t, repo.Delete("a"))
	assert.ErrorIs(t, repo.Delete("a"), ErrAgentNotFound)

	all, err := repo.FindAll()
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, "b", all[0].ID)
}

func TestAgentRepo_FindAllKeepsCreationOrder(t *testing.T) {
	repo := NewAgentRepo()
	for _, id := range []string{"z", "a", "m"} {
		require.NoError(t, repo.Create(agentconfig.NewDefaultAgent(id)))
	}

	all, err := repo.FindAll()
	require.NoError(t, err)
	ids := make([]string, len(all))
	for i, a := range all {
		ids[i] = a.ID
	}
	assert.Equal(t, []string{"z", "a", "m"}, ids)
}

func TestAgentRepo_ReturnsIsolatedCopies(t *testing.T) {
	repo := NewAgentRepo()
	agent := agentconfig.NewDefaultAgent("a")
	agent.ForbiddenWords = []string{"grátis"}
	require.NoError(t, repo.Create(agent))

	agent.ForbiddenWords[0] = "mutated"

	stored, err := repo.FindByID("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"grátis"}, stored.ForbiddenWords)

	stored.ConversationStages[0].Name = "mutated"
	again, err := repo.FindByID("a")
	require.NoError(t, err)
	assert.Equal(t, "Boas-vindas", again.ConversationStages[0].Name)
	assert.Equal(t, agentconfig.ActionTagLead, again.ConversationStages[0].EntryActions[0].Type())
}
