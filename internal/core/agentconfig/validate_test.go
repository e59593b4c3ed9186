package agentconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(issues []Issue) []string {
	out := make([]string, len(issues))
	for i, issue := range issues {
		out[i] = issue.Code
	}
	return out
}

func TestValidate_DefaultAgent(t *testing.T) {
	agent := NewDefaultAgent("a")
	strategy := DefaultFollowUpStrategy()
	agent.FollowUpStrategy = &strategy
	agent.BusinessHours.Enabled = true

	result := Validate(agent)
	assert.True(t, result.Valid(), "%v", result.Errors)
	assert.NoError(t, result.Err())
	// closing stage webhook has no target until a webhook url is configured
	assert.Equal(t, []string{CodeMissingWebhookTarget}, codes(result.Warnings))

	agent.WebhookURL = "https://n8n.example.com/hook"
	assert.Empty(t, Validate(agent).Warnings)
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(a *Agent)
		wantCode string
		wantPath string
	}{
		{
			name:     "unknown persona",
			mutate:   func(a *Agent) { a.Persona = "pirata" },
			wantCode: CodeInvalidEnum,
			wantPath: "persona",
		},
		{
			name:     "discount above 100",
			mutate:   func(a *Agent) { a.DiscountLimit = 101 },
			wantCode: CodeOutOfRange,
			wantPath: "discountLimit",
		},
		{
			name:     "trait below 0",
			mutate:   func(a *Agent) { a.PersonalityTraits = &PersonalityTraits{Empathy: -1} },
			wantCode: CodeOutOfRange,
			wantPath: "personalityTraits.empathy",
		},
		{
			name:     "product without name",
			mutate:   func(a *Agent) { a.Products = []Product{{ID: "p1", Price: 10}} },
			wantCode: CodeRequired,
			wantPath: "products[0].name",
		},
		{
			name:     "negative price",
			mutate:   func(a *Agent) { a.Products = []Product{{ID: "p1", Name: "Curso", Price: -1}} },
			wantCode: CodeOutOfRange,
			wantPath: "products[0].price",
		},
		{
			name: "custom event without description",
			mutate: func(a *Agent) {
				a.IntegrationTriggers = []IntegrationTrigger{{ID: "t1", Name: "x", Event: EventCustom}}
			},
			wantCode: CodeRequired,
			wantPath: "integrationTriggers[0].customEvent",
		},
		{
			name: "duplicate data field",
			mutate: func(a *Agent) {
				a.IntegrationTriggers = []IntegrationTrigger{{ID: "t1", Event: EventLeadCaptured, DataFields: []string{"email", "email"}}}
			},
			wantCode: CodeDuplicateDataField,
			wantPath: "integrationTriggers[0].dataFields",
		},
		{
			name: "bad business hours clock",
			mutate: func(a *Agent) {
				a.BusinessHours.Enabled = true
				a.BusinessHours.Schedule[Monday] = DaySchedule{Start: "9:00", End: "18:00", Active: true}
			},
			wantCode: CodeInvalidFormat,
			wantPath: "businessHours.schedule.monday.start",
		},
		{
			name: "unknown timezone",
			mutate: func(a *Agent) {
				a.BusinessHours.Enabled = true
				a.BusinessHours.Timezone = "Mars/Olympus"
			},
			wantCode: CodeInvalidFormat,
			wantPath: "businessHours.timezone",
		},
		{
			name: "duplicate follow-up attempt",
			mutate: func(a *Agent) {
				s := DefaultFollowUpStrategy()
				s.Templates = append(s.Templates, FollowUpTemplate{ID: "dup", Stage: FunnelCartAbandoned, Attempt: 1})
				a.FollowUpStrategy = &s
			},
			wantCode: CodeDuplicateAttempt,
			wantPath: "followUpStrategy.templates[13]",
		},
		{
			name: "zero daily cap",
			mutate: func(a *Agent) {
				s := DefaultFollowUpStrategy()
				s.MaxDailyMessages = 0
				a.FollowUpStrategy = &s
			},
			wantCode: CodeOutOfRange,
			wantPath: "followUpStrategy.maxDailyMessages",
		},
		{
			name:     "no default stage",
			mutate:   func(a *Agent) { a.ConversationStages[0].IsDefault = false },
			wantCode: CodeDefaultStageCount,
			wantPath: "conversationStages",
		},
		{
			name:     "two default stages",
			mutate:   func(a *Agent) { a.ConversationStages[2].IsDefault = true },
			wantCode: CodeDefaultStageCount,
			wantPath: "conversationStages",
		},
		{
			name:     "duplicate stage id",
			mutate:   func(a *Agent) { a.ConversationStages = append(a.ConversationStages, a.ConversationStages[4]) },
			wantCode: CodeDuplicateID,
			wantPath: "conversationStages[5].id",
		},
		{
			name:     "dangling transition",
			mutate:   func(a *Agent) { a.ConversationStages[0].Transitions[0].TargetStageID = "stage_gone" },
			wantCode: CodeUnknownStage,
			wantPath: "conversationStages[0].transitions[0].targetStageId",
		},
		{
			name:     "unknown transition logic",
			mutate:   func(a *Agent) { a.ConversationStages[0].Transitions[0].ConditionLogic = "xor" },
			wantCode: CodeInvalidEnum,
			wantPath: "conversationStages[0].transitions[0].conditionLogic",
		},
		{
			name:     "self transition",
			mutate:   func(a *Agent) { a.ConversationStages[0].Transitions[0].TargetStageID = "stage_welcome" },
			wantCode: CodeSelfTransition,
			wantPath: "conversationStages[0].transitions[0].targetStageId",
		},
		{
			name: "timeout transition without target",
			mutate: func(a *Agent) {
				a.ConversationStages[0].Settings.TimeoutAction = TimeoutTransition
			},
			wantCode: CodeRequired,
			wantPath: "conversationStages[0].settings.timeoutTargetStageId",
		},
		{
			name: "timeout into itself",
			mutate: func(a *Agent) {
				a.ConversationStages[0].Settings.TimeoutAction = TimeoutTransition
				a.ConversationStages[0].Settings.TimeoutTargetStageID = "stage_welcome"
			},
			wantCode: CodeSelfTransition,
			wantPath: "conversationStages[0].settings.timeoutTargetStageId",
		},
		{
			name: "unknown condition operator",
			mutate: func(a *Agent) {
				a.ConversationStages[0].Transitions[0].Conditions[0].Operator = "like"
			},
			wantCode: CodeInvalidEnum,
			wantPath: "conversationStages[0].transitions[0].conditions[0].operator",
		},
		{
			name: "webhook action with unknown trigger",
			mutate: func(a *Agent) {
				a.ConversationStages[4].EntryActions[0] = NewStageAction("act", TriggerWebhookConfig{TriggerID: "nope"})
			},
			wantCode: CodeUnknownTrigger,
			wantPath: "conversationStages[4].entryActions[0].config.triggerId",
		},
		{
			name: "tag action without tag",
			mutate: func(a *Agent) {
				a.ConversationStages[0].EntryActions[0] = NewStageAction("act", TagLeadConfig{})
			},
			wantCode: CodeRequired,
			wantPath: "conversationStages[0].entryActions[0].config.tag",
		},
		{
			name: "action without config",
			mutate: func(a *Agent) {
				a.ConversationStages[0].EntryActions[0] = StageAction{ID: "act"}
			},
			wantCode: CodeRequired,
			wantPath: "conversationStages[0].entryActions[0].config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			agent := NewDefaultAgent("a")
			agent.WebhookURL = "https://n8n.example.com/hook"
			tt.mutate(&agent)

			result := Validate(agent)
			require.False(t, result.Valid())
			require.Len(t, result.Errors, 1, "%v", result.Errors)
			assert.Equal(t, tt.wantCode, result.Errors[0].Code)
			assert.Equal(t, tt.wantPath, result.Errors[0].Path)

			var validationErr *ValidationError
			require.ErrorAs(t, result.Err(), &validationErr)
			assert.Contains(t, validationErr.Error(), tt.wantPath)
		})
	}
}

func TestValidate_Warnings(t *testing.T) {
	agent := NewDefaultAgent("a")
	agent.WebhookURL = "https://n8n.example.com/hook"
	agent.ConversationStages[1].IsActive = false
	agent.ConversationStages[2].Settings.TimeoutTargetStageID = "stage_closing"
	agent.ConversationStages[3].Transitions[0].ConditionLogic = LogicOr
	agent.ConversationStages[3].Transitions[0].Conditions = nil

	result := Validate(agent)
	assert.True(t, result.Valid(), "%v", result.Errors)
	assert.ElementsMatch(t, []string{CodeInactiveTarget, CodeDeadTimeoutTarget, CodeUnsatisfiableOr}, codes(result.Warnings))
}

func TestValidate_NoActiveStage(t *testing.T) {
	agent := NewDefaultAgent("a")
	agent.WebhookURL = "https://n8n.example.com/hook"
	for i := range agent.ConversationStages {
		agent.ConversationStages[i].IsActive = false
	}

	result := Validate(agent)
	assert.True(t, result.Valid())
	assert.Contains(t, codes(result.Warnings), CodeNoActiveStage)
}

func TestValidate_EmptyStagesAllowed(t *testing.T) {
	agent := NewDefaultAgent("a")
	agent.ConversationStages = nil
	assert.True(t, Validate(agent).Valid())
}

func TestValidate_EmptyConditionLogicMeansAnd(t *testing.T) {
	agent := NewDefaultAgent("a")
	agent.WebhookURL = "https://n8n.example.com/hook"
	agent.ConversationStages[0].ConditionLogic = ""
	agent.ConversationStages[0].Transitions[0].ConditionLogic = ""

	result := Validate(agent)
	assert.True(t, result.Valid(), "%v", result.Errors)
	assert.Empty(t, result.Warnings)
}
