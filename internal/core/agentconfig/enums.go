package agentconfig

import "github.com/invopop/jsonschema"

// Persona is the sales persona the agent plays
type Persona string

const (
	PersonaConsultor    Persona = "consultor"
	PersonaAgressivo    Persona = "agressivo"
	PersonaSuporte      Persona = "suporte"
	PersonaCloser       Persona = "closer"
	PersonaQualificador Persona = "qualificador"
)

func (Persona) Values() []Persona {
	return []Persona{PersonaConsultor, PersonaAgressivo, PersonaSuporte, PersonaCloser, PersonaQualificador}
}

func (p Persona) IsValid() bool { return contains(p.Values(), p) }

func (p Persona) JSONSchema() *jsonschema.Schema { return enumSchema(p.Values()) }

// VoiceTone is the tone of voice used in every message
type VoiceTone string

const (
	ToneEmpatico     VoiceTone = "empatico"
	ToneDireto       VoiceTone = "direto"
	ToneAmigavel     VoiceTone = "amigavel"
	ToneProfissional VoiceTone = "profissional"
	ToneEntusiasmado VoiceTone = "entusiasmado"
)

func (VoiceTone) Values() []VoiceTone {
	return []VoiceTone{ToneEmpatico, ToneDireto, ToneAmigavel, ToneProfissional, ToneEntusiasmado}
}

func (t VoiceTone) IsValid() bool { return contains(t.Values(), t) }

func (t VoiceTone) JSONSchema() *jsonschema.Schema { return enumSchema(t.Values()) }

type ResponseLength string

const (
	LengthConciso     ResponseLength = "conciso"
	LengthEquilibrado ResponseLength = "equilibrado"
	LengthDetalhado   ResponseLength = "detalhado"
)

func (ResponseLength) Values() []ResponseLength {
	return []ResponseLength{LengthConciso, LengthEquilibrado, LengthDetalhado}
}

func (l ResponseLength) IsValid() bool { return contains(l.Values(), l) }

func (l ResponseLength) JSONSchema() *jsonschema.Schema { return enumSchema(l.Values()) }

type FormalityLevel string

const (
	FormalityInformal FormalityLevel = "informal"
	FormalityNeutro   FormalityLevel = "neutro"
	FormalityFormal   FormalityLevel = "formal"
)

func (FormalityLevel) Values() []FormalityLevel {
	return []FormalityLevel{FormalityInformal, FormalityNeutro, FormalityFormal}
}

func (f FormalityLevel) IsValid() bool { return contains(f.Values(), f) }

func (f FormalityLevel) JSONSchema() *jsonschema.Schema { return enumSchema(f.Values()) }

type ProactivityLevel string

const (
	ProactivityBaixo ProactivityLevel = "baixo"
	ProactivityMedio ProactivityLevel = "medio"
	ProactivityAlto  ProactivityLevel = "alto"
)

func (ProactivityLevel) Values() []ProactivityLevel {
	return []ProactivityLevel{ProactivityBaixo, ProactivityMedio, ProactivityAlto}
}

func (p ProactivityLevel) IsValid() bool { return contains(p.Values(), p) }

func (p ProactivityLevel) JSONSchema() *jsonschema.Schema { return enumSchema(p.Values()) }

// PrimaryGoal is the main commercial objective of the agent.
// The zero value means no goal was configured.
type PrimaryGoal string

const (
	GoalVendaDireta  PrimaryGoal = "venda_direta"
	GoalQualificacao PrimaryGoal = "qualificacao"
	GoalAgendamento  PrimaryGoal = "agendamento"
	GoalCaptacao     PrimaryGoal = "captacao"
	GoalSuporte      PrimaryGoal = "suporte"
	GoalReativacao   PrimaryGoal = "reativacao"
)

func (PrimaryGoal) Values() []PrimaryGoal {
	return []PrimaryGoal{GoalVendaDireta, GoalQualificacao, GoalAgendamento, GoalCaptacao, GoalSuporte, GoalReativacao}
}

func (g PrimaryGoal) IsValid() bool { return contains(g.Values(), g) }

func (g PrimaryGoal) JSONSchema() *jsonschema.Schema { return enumSchema(g.Values()) }

// TriggerEvent is the conversation event that fires an integration trigger
type TriggerEvent string

const (
	EventLeadCaptured       TriggerEvent = "lead_captured"
	EventInterestIdentified TriggerEvent = "interest_identified"
	EventObjectionHandled   TriggerEvent = "objection_handled"
	EventSaleCompleted      TriggerEvent = "sale_completed"
	EventHandoffRequested   TriggerEvent = "handoff_requested"
	EventCustom             TriggerEvent = "custom"
)

func (TriggerEvent) Values() []TriggerEvent {
	return []TriggerEvent{EventLeadCaptured, EventInterestIdentified, EventObjectionHandled, EventSaleCompleted, EventHandoffRequested, EventCustom}
}

func (e TriggerEvent) IsValid() bool { return contains(e.Values(), e) }

func (e TriggerEvent) JSONSchema() *jsonschema.Schema { return enumSchema(e.Values()) }

// FunnelStage classifies where a lead is in the sales funnel for follow-ups.
// Values() order is the canonical display order.
type FunnelStage string

const (
	FunnelInitialContact  FunnelStage = "initial_contact"
	FunnelProductAware    FunnelStage = "product_aware"
	FunnelPriceAware      FunnelStage = "price_aware"
	FunnelObjectionRaised FunnelStage = "objection_raised"
	FunnelCartAbandoned   FunnelStage = "cart_abandoned"
	FunnelNegotiation     FunnelStage = "negotiation"
	FunnelWaitingDecision FunnelStage = "waiting_decision"
)

func (FunnelStage) Values() []FunnelStage {
	return []FunnelStage{
		FunnelInitialContact,
		FunnelProductAware,
		FunnelPriceAware,
		FunnelObjectionRaised,
		FunnelCartAbandoned,
		FunnelNegotiation,
		FunnelWaitingDecision,
	}
}

func (s FunnelStage) IsValid() bool { return contains(s.Values(), s) }

func (s FunnelStage) JSONSchema() *jsonschema.Schema { return enumSchema(s.Values()) }

// Rank returns the position of the stage in the canonical order, or -1
func (s FunnelStage) Rank() int {
	for i, v := range s.Values() {
		if v == s {
			return i
		}
	}
	return -1
}

type ConditionType string

const (
	ConditionKeyword          ConditionType = "keyword"
	ConditionIntent           ConditionType = "intent"
	ConditionVariableSet      ConditionType = "variable_set"
	ConditionTimeElapsed      ConditionType = "time_elapsed"
	ConditionMessageCount     ConditionType = "message_count"
	ConditionProductMentioned ConditionType = "product_mentioned"
	ConditionSentiment        ConditionType = "sentiment"
	ConditionCustom           ConditionType = "custom"
)

func (ConditionType) Values() []ConditionType {
	return []ConditionType{
		ConditionKeyword,
		ConditionIntent,
		ConditionVariableSet,
		ConditionTimeElapsed,
		ConditionMessageCount,
		ConditionProductMentioned,
		ConditionSentiment,
		ConditionCustom,
	}
}

func (c ConditionType) IsValid() bool { return contains(c.Values(), c) }

func (c ConditionType) JSONSchema() *jsonschema.Schema { return enumSchema(c.Values()) }

type ConditionOperator string

const (
	OperatorEquals      ConditionOperator = "equals"
	OperatorContains    ConditionOperator = "contains"
	OperatorNotEquals   ConditionOperator = "not_equals"
	OperatorGreaterThan ConditionOperator = "greater_than"
	OperatorLessThan    ConditionOperator = "less_than"
)

func (ConditionOperator) Values() []ConditionOperator {
	return []ConditionOperator{OperatorEquals, OperatorContains, OperatorNotEquals, OperatorGreaterThan, OperatorLessThan}
}

func (o ConditionOperator) IsValid() bool { return contains(o.Values(), o) }

func (o ConditionOperator) JSONSchema() *jsonschema.Schema { return enumSchema(o.Values()) }

// ConditionLogic combines a list of conditions
type ConditionLogic string

const (
	LogicAnd ConditionLogic = "and"
	LogicOr  ConditionLogic = "or"
)

func (ConditionLogic) Values() []ConditionLogic { return []ConditionLogic{LogicAnd, LogicOr} }

func (l ConditionLogic) IsValid() bool { return contains(l.Values(), l) }

func (l ConditionLogic) JSONSchema() *jsonschema.Schema { return enumSchema(l.Values()) }

type ActionType string

const (
	ActionSendFile         ActionType = "send_file"
	ActionSendLink         ActionType = "send_link"
	ActionCaptureVariable  ActionType = "capture_variable"
	ActionTriggerWebhook   ActionType = "trigger_webhook"
	ActionScheduleFollowup ActionType = "schedule_followup"
	ActionHandoff          ActionType = "handoff"
	ActionTagLead          ActionType = "tag_lead"
)

func (ActionType) Values() []ActionType {
	return []ActionType{
		ActionSendFile,
		ActionSendLink,
		ActionCaptureVariable,
		ActionTriggerWebhook,
		ActionScheduleFollowup,
		ActionHandoff,
		ActionTagLead,
	}
}

func (a ActionType) IsValid() bool { return contains(a.Values(), a) }

func (a ActionType) JSONSchema() *jsonschema.Schema { return enumSchema(a.Values()) }

// TimeoutAction is applied when a stage times out or hits its message cap
type TimeoutAction string

const (
	TimeoutStay       TimeoutAction = "stay"
	TimeoutTransition TimeoutAction = "transition"
	TimeoutHandoff    TimeoutAction = "handoff"
)

func (TimeoutAction) Values() []TimeoutAction {
	return []TimeoutAction{TimeoutStay, TimeoutTransition, TimeoutHandoff}
}

func (t TimeoutAction) IsValid() bool { return contains(t.Values(), t) }

func (t TimeoutAction) JSONSchema() *jsonschema.Schema { return enumSchema(t.Values()) }

// DocumentType is the kind of an internal knowledge-base document
type DocumentType string

const (
	DocumentPDF  DocumentType = "pdf"
	DocumentDoc  DocumentType = "doc"
	DocumentLink DocumentType = "link"
	DocumentText DocumentType = "text"
)

func (DocumentType) Values() []DocumentType {
	return []DocumentType{DocumentPDF, DocumentDoc, DocumentLink, DocumentText}
}

func (d DocumentType) IsValid() bool { return contains(d.Values(), d) }

func (d DocumentType) JSONSchema() *jsonschema.Schema { return enumSchema(d.Values()) }

// MaterialType is the kind of a material that may be sent to the lead
type MaterialType string

const (
	MaterialPDF   MaterialType = "pdf"
	MaterialDoc   MaterialType = "doc"
	MaterialLink  MaterialType = "link"
	MaterialVideo MaterialType = "video"
)

func (MaterialType) Values() []MaterialType {
	return []MaterialType{MaterialPDF, MaterialDoc, MaterialLink, MaterialVideo}
}

func (m MaterialType) IsValid() bool { return contains(m.Values(), m) }

func (m MaterialType) JSONSchema() *jsonschema.Schema { return enumSchema(m.Values()) }

// Weekday is a business-hours schedule key. Values() starts on monday.
type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

func (Weekday) Values() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

func (d Weekday) IsValid() bool { return contains(d.Values(), d) }

func contains[T comparable](values []T, v T) bool {
	for _, candidate := range values {
		if candidate == v {
			return true
		}
	}
	return false
}

func enumSchema[T ~string](values []T) *jsonschema.Schema {
	enum := make([]any, len(values))
	for i, v := range values {
		enum[i] = string(v)
	}
	return &jsonschema.Schema{Type: "string", Enum: enum}
}
