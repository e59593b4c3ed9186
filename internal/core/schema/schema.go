package schema

import (
	"github.com/invopop/jsonschema"

	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/agentconfig"
)

const (
	AgentSchemaID = "https://sales-agent-configurator.dev/schemas/agent.json"
	draft07       = "http://json-schema.org/draft-07/schema#"
)

// AgentSchema reflects the Agent contract consumed by execution engines.
// Definitions are inlined so form builders can render it without $ref support.
func AgentSchema() *jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}

	s := reflector.Reflect(&agentconfig.Agent{})
	s.ID = AgentSchemaID
	s.Title = "Sales Agent Configuration"
	s.Description = "Configuration contract of an AI sales agent: identity, catalog, follow-ups and conversation stages"
	s.Version = draft07
	return s
}

// ActionConfigSchemas returns the config schema of every stage action type
func ActionConfigSchemas() map[agentconfig.ActionType]*jsonschema.Schema {
	reflector := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		Anonymous:                 true,
	}

	variants := map[agentconfig.ActionType]agentconfig.ActionConfig{
		agentconfig.ActionSendFile:         &agentconfig.SendFileConfig{},
		agentconfig.ActionSendLink:         &agentconfig.SendLinkConfig{},
		agentconfig.ActionCaptureVariable:  &agentconfig.CaptureVariableConfig{},
		agentconfig.ActionTriggerWebhook:   &agentconfig.TriggerWebhookConfig{},
		agentconfig.ActionScheduleFollowup: &agentconfig.ScheduleFollowupConfig{},
		agentconfig.ActionHandoff:          &agentconfig.HandoffConfig{},
		agentconfig.ActionTagLead:          &agentconfig.TagLeadConfig{},
	}

	out := make(map[agentconfig.ActionType]*jsonschema.Schema, len(variants))
	for actionType, cfg := range variants {
		s := reflector.Reflect(cfg)
		s.Version = ""
		out[actionType] = s
	}
	return out
}
