package agentconfig

import (
	"fmt"
	"strings"
)

// Issue codes
const (
	CodeInvalidEnum          = "invalid_enum"
	CodeOutOfRange           = "out_of_range"
	CodeRequired             = "required"
	CodeInvalidFormat        = "invalid_format"
	CodeDuplicateID          = "duplicate_id"
	CodeDefaultStageCount    = "default_stage_count"
	CodeUnknownStage         = "unknown_stage"
	CodeSelfTransition       = "self_transition"
	CodeDuplicateAttempt     = "duplicate_attempt"
	CodeDuplicateDataField   = "duplicate_data_field"
	CodeUnknownTrigger       = "unknown_trigger"
	CodeDeadTimeoutTarget    = "dead_timeout_target"
	CodeInactiveTarget       = "inactive_target"
	CodeUnsatisfiableOr      = "unsatisfiable_or"
	CodeNoActiveStage        = "no_active_stage"
	CodeMissingWebhookTarget = "missing_webhook_target"
)

// Issue is one validation finding, addressed by a JSON-ish path
type Issue struct {
	Code    string `json:"code"`
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (i Issue) String() string {
	return fmt.Sprintf("%s: %s", i.Path, i.Message)
}

// Result separates fatal errors from warnings about dead or inert data
type Result struct {
	Errors   []Issue `json:"errors"`
	Warnings []Issue `json:"warnings"`
}

func (r Result) Valid() bool { return len(r.Errors) == 0 }

// Err returns a *ValidationError when the result holds errors
func (r Result) Err() error {
	if r.Valid() {
		return nil
	}
	return &ValidationError{Issues: r.Errors}
}

// ValidationError rejects a configuration at save time
type ValidationError struct {
	Issues []Issue
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = issue.String()
	}
	return fmt.Sprintf("invalid agent configuration: %s", strings.Join(msgs, "; "))
}

type validator struct {
	result Result
}

func (v *validator) errorf(code, path, format string, args ...any) {
	v.result.Errors = append(v.result.Errors, Issue{Code: code, Path: path, Message: fmt.Sprintf(format, args...)})
}

func (v *validator) warnf(code, path, format string, args ...any) {
	v.result.Warnings = append(v.result.Warnings, Issue{Code: code, Path: path, Message: fmt.Sprintf(format, args...)})
}

type enum interface {
	~string
	IsValid() bool
}

func checkEnum[T enum](v *validator, path string, value T) {
	if !value.IsValid() {
		v.errorf(CodeInvalidEnum, path, "unknown value %q", string(value))
	}
}

func (v *validator) percent(path string, value int) {
	if value < 0 || value > 100 {
		v.errorf(CodeOutOfRange, path, "must be between 0 and 100, got %d", value)
	}
}

func (v *validator) clock(path, value string) {
	if _, err := ParseClock(value); err != nil {
		v.errorf(CodeInvalidFormat, path, "%v", err)
	}
}

// Validate checks every invariant of an agent configuration
func Validate(a Agent) Result {
	v := &validator{}

	checkEnum(v, "persona", a.Persona)
	checkEnum(v, "voiceTone", a.VoiceTone)
	checkEnum(v, "responseLength", a.ResponseLength)
	checkEnum(v, "formalityLevel", a.FormalityLevel)
	checkEnum(v, "proactivityLevel", a.ProactivityLevel)
	if a.PrimaryGoal != "" {
		checkEnum(v, "primaryGoal", a.PrimaryGoal)
	}

	if t := a.PersonalityTraits; t != nil {
		v.percent("personalityTraits.empathy", t.Empathy)
		v.percent("personalityTraits.assertiveness", t.Assertiveness)
		v.percent("personalityTraits.patience", t.Patience)
		v.percent("personalityTraits.enthusiasm", t.Enthusiasm)
		v.percent("personalityTraits.urgency", t.Urgency)
	}

	v.percent("discountLimit", a.DiscountLimit)

	v.products(a.Products)
	v.triggers(a.IntegrationTriggers)
	v.businessHours(a.BusinessHours)
	if a.FollowUpStrategy != nil {
		v.followUp(*a.FollowUpStrategy)
	}
	v.stages(a)

	return v.result
}

func (v *validator) products(products []Product) {
	seen := map[string]bool{}
	for i, p := range products {
		path := fmt.Sprintf("products[%d]", i)
		if p.ID != "" && seen[p.ID] {
			v.errorf(CodeDuplicateID, path+".id", "duplicate product id %q", p.ID)
		}
		seen[p.ID] = true
		if strings.TrimSpace(p.Name) == "" {
			v.errorf(CodeRequired, path+".name", "product name is required")
		}
		if p.Price < 0 {
			v.errorf(CodeOutOfRange, path+".price", "price must not be negative")
		}
		for j, d := range p.KnowledgeBase {
			checkEnum(v, fmt.Sprintf("%s.knowledgeBase[%d].type", path, j), d.Type)
		}
		for j, m := range p.LeadMaterials {
			checkEnum(v, fmt.Sprintf("%s.leadMaterials[%d].type", path, j), m.Type)
		}
	}
}

func (v *validator) triggers(triggers []IntegrationTrigger) {
	for i, t := range triggers {
		path := fmt.Sprintf("integrationTriggers[%d]", i)
		checkEnum(v, path+".event", t.Event)
		if t.Event == EventCustom && strings.TrimSpace(t.CustomEvent) == "" {
			v.errorf(CodeRequired, path+".customEvent", "custom events need a description")
		}
		fields := map[string]bool{}
		for _, f := range t.DataFields {
			if fields[f] {
				v.errorf(CodeDuplicateDataField, path+".dataFields", "data field %q listed twice", f)
			}
			fields[f] = true
		}
	}
}

func (v *validator) businessHours(b BusinessHours) {
	if !b.Enabled {
		return
	}
	if _, err := b.Location(); err != nil {
		v.errorf(CodeInvalidFormat, "businessHours.timezone", "%v", err)
	}
	for _, day := range Weekday("").Values() {
		schedule, ok := b.Schedule[day]
		if !ok || !schedule.Active {
			continue
		}
		path := fmt.Sprintf("businessHours.schedule.%s", day)
		v.clock(path+".start", schedule.Start)
		v.clock(path+".end", schedule.End)
	}
	for day := range b.Schedule {
		if !day.IsValid() {
			v.errorf(CodeInvalidEnum, "businessHours.schedule", "unknown day %q", string(day))
		}
	}
}

func (v *validator) followUp(s FollowUpStrategy) {
	if s.Enabled && s.MaxDailyMessages < 1 {
		v.errorf(CodeOutOfRange, "followUpStrategy.maxDailyMessages", "must be at least 1")
	}
	if s.RespectQuietHours {
		v.clock("followUpStrategy.quietHoursStart", s.QuietHoursStart)
		v.clock("followUpStrategy.quietHoursEnd", s.QuietHoursEnd)
	}

	type slot struct {
		stage   FunnelStage
		attempt int
	}
	seen := map[slot]bool{}
	for i, t := range s.Templates {
		path := fmt.Sprintf("followUpStrategy.templates[%d]", i)
		checkEnum(v, path+".stage", t.Stage)
		if t.Attempt < 1 {
			v.errorf(CodeOutOfRange, path+".attempt", "attempt must be at least 1")
		}
		if t.DelayMinutes < 0 {
			v.errorf(CodeOutOfRange, path+".delayMinutes", "delay must not be negative")
		}
		key := slot{t.Stage, t.Attempt}
		if seen[key] {
			v.errorf(CodeDuplicateAttempt, path, "attempt %d already defined for stage %s", t.Attempt, t.Stage)
		}
		seen[key] = true
	}
}

func (v *validator) stages(a Agent) {
	stages := a.ConversationStages
	if len(stages) == 0 {
		return
	}

	byID := map[string]ConversationStage{}
	defaults := 0
	active := 0
	for i, s := range stages {
		if _, dup := byID[s.ID]; dup {
			v.errorf(CodeDuplicateID, fmt.Sprintf("conversationStages[%d].id", i), "duplicate stage id %q", s.ID)
		}
		byID[s.ID] = s
		if s.IsDefault {
			defaults++
		}
		if s.IsActive {
			active++
		}
	}
	if defaults != 1 {
		v.errorf(CodeDefaultStageCount, "conversationStages", "exactly one default stage is required, found %d", defaults)
	}
	if active == 0 {
		v.warnf(CodeNoActiveStage, "conversationStages", "no stage is active")
	}

	triggerIDs := map[string]bool{}
	for _, t := range a.IntegrationTriggers {
		triggerIDs[t.ID] = true
	}

	for i, s := range stages {
		path := fmt.Sprintf("conversationStages[%d]", i)
		if s.ConditionLogic != "" {
			checkEnum(v, path+".conditionLogic", s.ConditionLogic)
		}
		v.conditions(path+".entryConditions", s.EntryConditions)

		for j, t := range s.Transitions {
			tpath := fmt.Sprintf("%s.transitions[%d]", path, j)
			if t.ConditionLogic != "" {
				checkEnum(v, tpath+".conditionLogic", t.ConditionLogic)
			}
			target, ok := byID[t.TargetStageID]
			switch {
			case t.TargetStageID == s.ID:
				v.errorf(CodeSelfTransition, tpath+".targetStageId", "stage %q cannot transition to itself", s.ID)
			case !ok:
				v.errorf(CodeUnknownStage, tpath+".targetStageId", "unknown target stage %q", t.TargetStageID)
			case !target.IsActive:
				v.warnf(CodeInactiveTarget, tpath+".targetStageId", "target stage %q is inactive and will be skipped", t.TargetStageID)
			}
			if t.ConditionLogic == LogicOr && len(t.Conditions) == 0 {
				v.warnf(CodeUnsatisfiableOr, tpath, "an empty condition list under \"or\" never fires")
			}
			v.conditions(tpath+".conditions", t.Conditions)
		}

		for j, action := range s.EntryActions {
			v.action(fmt.Sprintf("%s.entryActions[%d]", path, j), action, a, triggerIDs)
		}

		settings := s.Settings
		spath := path + ".settings"
		checkEnum(v, spath+".timeoutAction", settings.TimeoutAction)
		if settings.MaxMessagesInStage < 0 {
			v.errorf(CodeOutOfRange, spath+".maxMessagesInStage", "must not be negative")
		}
		if settings.TimeoutMinutes < 0 {
			v.errorf(CodeOutOfRange, spath+".timeoutMinutes", "must not be negative")
		}
		if settings.TimeoutAction == TimeoutTransition {
			switch target := settings.TimeoutTargetStageID; {
			case target == "":
				v.errorf(CodeRequired, spath+".timeoutTargetStageId", "timeout transition needs a target stage")
			case target == s.ID:
				v.errorf(CodeSelfTransition, spath+".timeoutTargetStageId", "stage %q cannot time out into itself", s.ID)
			default:
				if _, ok := byID[target]; !ok {
					v.errorf(CodeUnknownStage, spath+".timeoutTargetStageId", "unknown target stage %q", target)
				}
			}
		} else if settings.TimeoutTargetStageID != "" {
			v.warnf(CodeDeadTimeoutTarget, spath+".timeoutTargetStageId", "ignored because timeoutAction is %q", settings.TimeoutAction)
		}
	}
}

func (v *validator) conditions(path string, conds []StageCondition) {
	for i, c := range conds {
		cpath := fmt.Sprintf("%s[%d]", path, i)
		checkEnum(v, cpath+".type", c.Type)
		checkEnum(v, cpath+".operator", c.Operator)
	}
}

func (v *validator) action(path string, action StageAction, a Agent, triggerIDs map[string]bool) {
	switch cfg := action.Config.(type) {
	case nil:
		v.errorf(CodeRequired, path+".config", "action has no config")
	case SendFileConfig:
		if cfg.File == "" {
			v.errorf(CodeRequired, path+".config.file", "file is required")
		}
	case SendLinkConfig:
		if cfg.URL == "" {
			v.errorf(CodeRequired, path+".config.url", "url is required")
		}
	case CaptureVariableConfig:
		if cfg.Variable == "" {
			v.errorf(CodeRequired, path+".config.variable", "variable is required")
		}
	case TriggerWebhookConfig:
		switch {
		case cfg.TriggerID != "" && !triggerIDs[cfg.TriggerID]:
			v.errorf(CodeUnknownTrigger, path+".config.triggerId", "unknown integration trigger %q", cfg.TriggerID)
		case cfg.TriggerID == "" && cfg.URL == "" && a.WebhookURL == "":
			v.warnf(CodeMissingWebhookTarget, path+".config", "no trigger, url or agent webhook to call")
		}
	case ScheduleFollowupConfig:
		checkEnum(v, path+".config.stage", cfg.Stage)
		if cfg.DelayMinutes < 0 {
			v.errorf(CodeOutOfRange, path+".config.delayMinutes", "delay must not be negative")
		}
	case HandoffConfig:
		// contact falls back to the agent handoff contact
	case TagLeadConfig:
		if cfg.Tag == "" {
			v.errorf(CodeRequired, path+".config.tag", "tag is required")
		}
	default:
		v.errorf(CodeInvalidEnum, path+".type", "unsupported action config %T", cfg)
	}
}
