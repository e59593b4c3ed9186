package followup

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/agentconfig"
)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 10, hour, minute, 0, 0, time.UTC)
}

func TestSelect_CartAbandonedSequence(t *testing.T) {
	strategy := agentconfig.DefaultFollowUpStrategy()

	for prior, wantDelay := range []int{15, 60, 1440} {
		tmpl, ok := Select(strategy, agentconfig.FunnelCartAbandoned, prior)
		require.True(t, ok, "attempt %d", prior+1)
		assert.Equal(t, prior+1, tmpl.Attempt)
		assert.Equal(t, wantDelay, tmpl.DelayMinutes)
	}

	_, ok := Select(strategy, agentconfig.FunnelCartAbandoned, 3)
	assert.False(t, ok)
}

func TestSelect_SkipsInactive(t *testing.T) {
	strategy := agentconfig.FollowUpStrategy{Templates: []agentconfig.FollowUpTemplate{
		{ID: "off", Stage: agentconfig.FunnelNegotiation, Attempt: 1, IsActive: false},
	}}
	_, ok := Select(strategy, agentconfig.FunnelNegotiation, 0)
	assert.False(t, ok)
}

func TestGate(t *testing.T) {
	base := agentconfig.DefaultFollowUpStrategy()
	disabled := base
	disabled.Enabled = false
	noQuiet := base
	noQuiet.RespectQuietHours = false
	keepGoing := base
	keepGoing.StopOnNegativeResponse = false

	tests := []struct {
		name     string
		strategy agentconfig.FollowUpStrategy
		in       GateInput
		want     GateDecision
	}{
		{"allowed midday", base, GateInput{Now: at(12, 0)}, GateDecision{Allowed: true}},
		{"disabled", disabled, GateInput{Now: at(12, 0)}, GateDecision{Reason: GateDisabled}},
		{"daily cap", base, GateInput{Now: at(12, 0), SentToday: 3}, GateDecision{Reason: GateDailyCap}},
		{"quiet late night", base, GateInput{Now: at(23, 30)}, GateDecision{Reason: GateQuietHours}},
		{"quiet early morning", base, GateInput{Now: at(7, 59)}, GateDecision{Reason: GateQuietHours}},
		{"quiet ends exclusive", base, GateInput{Now: at(8, 0)}, GateDecision{Allowed: true}},
		{"quiet starts inclusive", base, GateInput{Now: at(21, 0)}, GateDecision{Reason: GateQuietHours}},
		{"quiet ignored", noQuiet, GateInput{Now: at(23, 30)}, GateDecision{Allowed: true}},
		{"negative stops", base, GateInput{Now: at(12, 0), LastResponseNegative: true}, GateDecision{Reason: GateNegativeResponse}},
		{"negative tolerated", keepGoing, GateInput{Now: at(12, 0), LastResponseNegative: true}, GateDecision{Allowed: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Gate(tt.strategy, tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGate_UsesLocation(t *testing.T) {
	loc := time.FixedZone("BRT", -3*60*60)
	strategy := agentconfig.DefaultFollowUpStrategy()

	// 23:30 UTC is 20:30 local, before quiet hours
	got, err := Gate(strategy, GateInput{Now: at(23, 30), Location: loc})
	require.NoError(t, err)
	assert.True(t, got.Allowed)
}

func TestGate_BadQuietHours(t *testing.T) {
	strategy := agentconfig.DefaultFollowUpStrategy()
	strategy.QuietHoursStart = "9pm"
	_, err := Gate(strategy, GateInput{Now: at(12, 0)})
	assert.ErrorIs(t, err, ErrInvalidQuietHours)

	strategy = agentconfig.DefaultFollowUpStrategy()
	strategy.QuietHoursEnd = "25:00"
	_, _, err = Next(strategy, agentconfig.FunnelCartAbandoned, History{StageEnteredAt: at(10, 0)}, at(12, 0), time.UTC)
	assert.ErrorIs(t, err, ErrInvalidQuietHours)
}

func TestInWindow_SameDay(t *testing.T) {
	assert.True(t, inWindow(13*60, 12*60, 14*60))
	assert.False(t, inWindow(14*60, 12*60, 14*60))
	assert.False(t, inWindow(10*60, 10*60, 10*60))
}

func TestNext(t *testing.T) {
	strategy := agentconfig.DefaultFollowUpStrategy()

	t.Run("first attempt from stage entry", func(t *testing.T) {
		plan, decision, err := Next(strategy, agentconfig.FunnelCartAbandoned, History{StageEnteredAt: at(10, 0)}, at(10, 5), time.UTC)
		require.NoError(t, err)
		require.NotNil(t, plan)
		assert.True(t, decision.Allowed)
		assert.Equal(t, "fu_cart_1", plan.Template.ID)
		assert.Equal(t, at(10, 15), plan.SendAt)
		assert.False(t, plan.Shifted)
	})

	t.Run("later attempt from previous attempt", func(t *testing.T) {
		h := History{StageEnteredAt: at(9, 0), PriorAttempts: 1, LastAttemptAt: at(10, 15), SentToday: 1}
		plan, _, err := Next(strategy, agentconfig.FunnelCartAbandoned, h, at(10, 20), time.UTC)
		require.NoError(t, err)
		require.NotNil(t, plan)
		assert.Equal(t, at(11, 15), plan.SendAt)
	})

	t.Run("shifted out of quiet hours", func(t *testing.T) {
		h := History{StageEnteredAt: at(20, 50)}
		plan, _, err := Next(strategy, agentconfig.FunnelCartAbandoned, h, at(20, 55), time.UTC)
		require.NoError(t, err)
		require.NotNil(t, plan)
		assert.True(t, plan.Shifted)
		assert.Equal(t, time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC), plan.SendAt)
	})

	t.Run("shifted within the same morning", func(t *testing.T) {
		h := History{StageEnteredAt: time.Date(2026, 3, 10, 2, 0, 0, 0, time.UTC)}
		plan, _, err := Next(strategy, agentconfig.FunnelCartAbandoned, h, at(2, 0), time.UTC)
		require.NoError(t, err)
		require.NotNil(t, plan)
		assert.Equal(t, at(8, 0), plan.SendAt)
	})

	t.Run("exhausted", func(t *testing.T) {
		plan, decision, err := Next(strategy, agentconfig.FunnelCartAbandoned, History{PriorAttempts: 3}, at(12, 0), time.UTC)
		require.NoError(t, err)
		assert.Nil(t, plan)
		assert.Equal(t, GateExhausted, decision.Reason)
	})

	t.Run("plan kept when gated", func(t *testing.T) {
		plan, decision, err := Next(strategy, agentconfig.FunnelNegotiation, History{StageEnteredAt: at(9, 0), SentToday: 3}, at(12, 0), time.UTC)
		require.NoError(t, err)
		require.NotNil(t, plan)
		assert.False(t, decision.Allowed)
		assert.Equal(t, GateDailyCap, decision.Reason)
	})
}

func TestSorted(t *testing.T) {
	templates := []agentconfig.FollowUpTemplate{
		{ID: "decision_2", Stage: agentconfig.FunnelWaitingDecision, Attempt: 2},
		{ID: "initial_2", Stage: agentconfig.FunnelInitialContact, Attempt: 2},
		{ID: "decision_1", Stage: agentconfig.FunnelWaitingDecision, Attempt: 1},
		{ID: "initial_1", Stage: agentconfig.FunnelInitialContact, Attempt: 1},
	}

	sorted := Sorted(templates)
	ids := make([]string, len(sorted))
	for i, tmpl := range sorted {
		ids[i] = tmpl.ID
	}
	assert.Equal(t, []string{"initial_1", "initial_2", "decision_1", "decision_2"}, ids)
	assert.Equal(t, "decision_2", templates[0].ID, "input must not be reordered")

	groups := ByStage(templates)
	assert.Len(t, groups, 2)
	assert.Equal(t, 1, groups[agentconfig.FunnelWaitingDecision][0].Attempt)
}
