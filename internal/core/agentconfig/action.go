package agentconfig

import (
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/invopop/jsonschema"
	"github.com/mitchellh/mapstructure"
)

// ActionConfig is the typed configuration of one StageAction variant
type ActionConfig interface {
	ActionType() ActionType
}

type SendFileConfig struct {
	File    string `json:"file"`
	Caption string `json:"caption,omitempty"`
}

type SendLinkConfig struct {
	URL   string `json:"url"`
	Label string `json:"label,omitempty"`
}

type CaptureVariableConfig struct {
	Variable string `json:"variable"`
	Question string `json:"question,omitempty"`
}

// TriggerWebhookConfig fires either a configured integration trigger or a raw URL
type TriggerWebhookConfig struct {
	TriggerID string `json:"triggerId,omitempty"`
	URL       string `json:"url,omitempty"`
}

type ScheduleFollowupConfig struct {
	Stage        FunnelStage `json:"stage"`
	DelayMinutes int         `json:"delayMinutes,omitempty"`
}

type HandoffConfig struct {
	Contact string `json:"contact,omitempty"`
	Reason  string `json:"reason,omitempty"`
}

type TagLeadConfig struct {
	Tag string `json:"tag"`
}

func (SendFileConfig) ActionType() ActionType         { return ActionSendFile }
func (SendLinkConfig) ActionType() ActionType         { return ActionSendLink }
func (CaptureVariableConfig) ActionType() ActionType  { return ActionCaptureVariable }
func (TriggerWebhookConfig) ActionType() ActionType   { return ActionTriggerWebhook }
func (ScheduleFollowupConfig) ActionType() ActionType { return ActionScheduleFollowup }
func (HandoffConfig) ActionType() ActionType          { return ActionHandoff }
func (TagLeadConfig) ActionType() ActionType          { return ActionTagLead }

// StageAction runs when a lead enters a stage. The wire shape is
// {"id", "type", "config": {...}} where config depends on type.
type StageAction struct {
	ID     string
	Config ActionConfig
}

// NewStageAction builds an action whose type follows its config
func NewStageAction(id string, cfg ActionConfig) StageAction {
	return StageAction{ID: id, Config: cfg}
}

// Type returns the action type, or "" when no config is set
func (a StageAction) Type() ActionType {
	if a.Config == nil {
		return ""
	}
	return a.Config.ActionType()
}

type stageActionWire struct {
	ID     string         `json:"id"`
	Type   ActionType     `json:"type"`
	Config map[string]any `json:"config"`
}

func (a StageAction) MarshalJSON() ([]byte, error) {
	if a.Config == nil {
		return nil, fmt.Errorf("stage action %q has no config", a.ID)
	}
	return sonic.Marshal(struct {
		ID     string       `json:"id"`
		Type   ActionType   `json:"type"`
		Config ActionConfig `json:"config"`
	}{a.ID, a.Config.ActionType(), a.Config})
}

func (a *StageAction) UnmarshalJSON(data []byte) error {
	var wire stageActionWire
	if err := sonic.Unmarshal(data, &wire); err != nil {
		return err
	}
	cfg, err := DecodeActionConfig(wire.Type, wire.Config)
	if err != nil {
		return fmt.Errorf("stage action %q: %w", wire.ID, err)
	}
	a.ID = wire.ID
	a.Config = cfg
	return nil
}

// JSONSchema describes the tagged wire shape
func (StageAction) JSONSchema() *jsonschema.Schema {
	props := jsonschema.NewProperties()
	props.Set("id", &jsonschema.Schema{Type: "string"})
	props.Set("type", ActionType("").JSONSchema())
	props.Set("config", &jsonschema.Schema{Type: "object"})
	return &jsonschema.Schema{
		Type:       "object",
		Properties: props,
		Required:   []string{"id", "type", "config"},
	}
}

// DecodeActionConfig turns a loosely typed config map into the variant for
// actionType. String numbers such as "30" are accepted.
func DecodeActionConfig(actionType ActionType, raw map[string]any) (ActionConfig, error) {
	var cfg ActionConfig
	switch actionType {
	case ActionSendFile:
		cfg = &SendFileConfig{}
	case ActionSendLink:
		cfg = &SendLinkConfig{}
	case ActionCaptureVariable:
		cfg = &CaptureVariableConfig{}
	case ActionTriggerWebhook:
		cfg = &TriggerWebhookConfig{}
	case ActionScheduleFollowup:
		cfg = &ScheduleFollowupConfig{}
	case ActionHandoff:
		cfg = &HandoffConfig{}
	case ActionTagLead:
		cfg = &TagLeadConfig{}
	default:
		return nil, fmt.Errorf("unknown action type: %q", actionType)
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, fmt.Errorf("invalid %s config: %w", actionType, err)
	}

	return deref(cfg), nil
}

func deref(cfg ActionConfig) ActionConfig {
	switch c := cfg.(type) {
	case *SendFileConfig:
		return *c
	case *SendLinkConfig:
		return *c
	case *CaptureVariableConfig:
		return *c
	case *TriggerWebhookConfig:
		return *c
	case *ScheduleFollowupConfig:
		return *c
	case *HandoffConfig:
		return *c
	case *TagLeadConfig:
		return *c
	}
	return cfg
}
