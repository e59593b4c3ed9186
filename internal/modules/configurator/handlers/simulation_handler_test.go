package handlers

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/schema"
)

func TestResolveStage(t *testing.T) {
	app := newTestApp(t)

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantKind   string
		wantReason string
		wantTarget string
	}{
		{
			name:       "entry stage transitions on intent",
			body:       `{"lead":{"intent":"interesse"}}`,
			wantStatus: fiber.StatusOK,
			wantKind:   "transition",
			wantReason: "transition",
			wantTarget: "stage_discovery",
		},
		{
			name:       "message cap keeps lead in stage",
			body:       `{"currentStageId":"stage_welcome","lead":{"messagesInStage":5}}`,
			wantStatus: fiber.StatusOK,
			wantKind:   "stay",
			wantReason: "message_cap",
		},
		{
			name:       "negotiation timeout hands off",
			body:       `{"currentStageId":"stage_negotiation","lead":{"minutesInStage":1440}}`,
			wantStatus: fiber.StatusOK,
			wantKind:   "handoff",
			wantReason: "timeout",
		},
		{
			name:       "nothing fires",
			body:       `{"currentStageId":"stage_discovery","lead":{"lastMessage":"oi"}}`,
			wantStatus: fiber.StatusOK,
			wantKind:   "stay",
			wantReason: "no_match",
		},
		{
			name:       "unknown stage",
			body:       `{"currentStageId":"stage_nope","lead":{}}`,
			wantStatus: fiber.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := do(t, app, http.MethodPost, "/agents/1/stages/resolve", tt.body)
			require.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantStatus != fiber.StatusOK {
				return
			}
			data := body["data"].(map[string]interface{})
			assert.Equal(t, tt.wantKind, data["kind"])
			assert.Equal(t, tt.wantReason, data["reason"])
			if tt.wantTarget != "" {
				assert.Equal(t, tt.wantTarget, data["targetStageId"])
			}
		})
	}
}

func TestNextFollowUp(t *testing.T) {
	app := newTestApp(t)

	resp, body := do(t, app, http.MethodPost, "/agents/3/followups/next",
		`{"stage":"cart_abandoned","history":{"stageEnteredAt":"2026-03-02T15:00:00Z","priorAttempts":0}}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	plan, ok := data["plan"].(map[string]interface{})
	require.True(t, ok)
	template := plan["template"].(map[string]interface{})
	assert.Equal(t, "fu_cart_1", template["id"])

	resp, body = do(t, app, http.MethodPost, "/agents/3/followups/next",
		`{"stage":"cart_abandoned","history":{"priorAttempts":3}}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	data = body["data"].(map[string]interface{})
	assert.Nil(t, data["plan"])
	gate := data["gate"].(map[string]interface{})
	assert.Equal(t, false, gate["allowed"])
	assert.Equal(t, "exhausted", gate["reason"])

	resp, _ = do(t, app, http.MethodPost, "/agents/3/followups/next", `{"stage":"someday"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSchemaEndpoints(t *testing.T) {
	app := newTestApp(t)

	resp, body := do(t, app, http.MethodGet, "/schema/agent", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, schema.AgentSchemaID, body["$id"])
	assert.Equal(t, "object", body["type"])

	resp, body = do(t, app, http.MethodGet, "/schema/actions", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, body, 7)
	assert.Contains(t, body, "send_file")
}

func TestSimulation_InvalidDraftDataIsUnprocessable(t *testing.T) {
	app := newTestApp(t)

	resp, _ := do(t, app, http.MethodPatch, "/agents/3/draft",
		`{"conversationStages":[{"id":"s1","isDefault":true,"isActive":true,"conditionLogic":"and","settings":{"timeoutMinutes":1,"timeoutAction":"escalate"}}]}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, body := do(t, app, http.MethodPost, "/agents/3/stages/resolve", `{"lead":{"minutesInStage":5}}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body["error"], "invalid timeout action")

	resp, _ = do(t, app, http.MethodPatch, "/agents/3/draft",
		`{"followUpStrategy":{"enabled":true,"respectQuietHours":true,"quietHoursStart":"9pm","quietHoursEnd":"08:00","maxDailyMessages":3,"templates":[{"id":"t1","stage":"cart_abandoned","attempt":1,"delayMinutes":15,"message":"Oi","isActive":true}]}}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, body = do(t, app, http.MethodPost, "/agents/3/followups/next", `{"stage":"cart_abandoned","history":{}}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body["error"], "invalid quiet hours")

	resp, _ = do(t, app, http.MethodPatch, "/agents/3/draft", `{"businessHours":{"enabled":true,"timezone":"Nowhere/City"}}`)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	resp, body = do(t, app, http.MethodPost, "/agents/3/followups/next", `{"stage":"cart_abandoned","history":{}}`)
	assert.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)
	assert.Contains(t, body["error"], "invalid timezone")
}
