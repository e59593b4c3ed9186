package stage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/agentconfig"
)

// LeadContext is what the executing engine knows about a lead when it checks conditions
type LeadContext struct {
	LastMessage       string            `json:"lastMessage"`
	Intent            string            `json:"intent"`
	Sentiment         string            `json:"sentiment"`
	Variables         map[string]string `json:"variables"`
	MinutesElapsed    int               `json:"minutesElapsed"`
	MessageCount      int               `json:"messageCount"`
	MentionedProducts []string          `json:"mentionedProducts"`
	// CustomFlags holds custom conditions already evaluated by the engine, keyed by condition value
	CustomFlags map[string]bool `json:"customFlags"`
}

// ConditionEvaluator evaluates stage conditions
type ConditionEvaluator struct{}

// NewConditionEvaluator creates a new condition evaluator
func NewConditionEvaluator() *ConditionEvaluator {
	return &ConditionEvaluator{}
}

// Evaluate combines conditions with logic. An empty list is true under
// "and" and false under "or".
func (e *ConditionEvaluator) Evaluate(conditions []agentconfig.StageCondition, logic agentconfig.ConditionLogic, lead LeadContext) (bool, error) {
	switch logic {
	case agentconfig.LogicOr:
		for _, condition := range conditions {
			result, err := e.evaluateSingle(condition, lead)
			if err != nil {
				return false, err
			}
			if result {
				return true, nil
			}
		}
		return false, nil

	case agentconfig.LogicAnd, "":
		for _, condition := range conditions {
			result, err := e.evaluateSingle(condition, lead)
			if err != nil {
				return false, err
			}
			if !result {
				return false, nil
			}
		}
		return true, nil

	default:
		return false, fmt.Errorf("unknown condition logic: %s", logic)
	}
}

// evaluateSingle evaluates a single condition
func (e *ConditionEvaluator) evaluateSingle(condition agentconfig.StageCondition, lead LeadContext) (bool, error) {
	switch condition.Type {
	case agentconfig.ConditionKeyword:
		return compareText(lead.LastMessage, condition)

	case agentconfig.ConditionIntent:
		return compareText(lead.Intent, condition)

	case agentconfig.ConditionSentiment:
		return compareText(lead.Sentiment, condition)

	case agentconfig.ConditionVariableSet:
		return compareVariable(lead.Variables, condition)

	case agentconfig.ConditionTimeElapsed:
		return compareNumber(float64(lead.MinutesElapsed), condition)

	case agentconfig.ConditionMessageCount:
		return compareNumber(float64(lead.MessageCount), condition)

	case agentconfig.ConditionProductMentioned:
		return compareProducts(lead.MentionedProducts, condition)

	case agentconfig.ConditionCustom:
		return lead.CustomFlags[condition.Value], nil

	default:
		return false, fmt.Errorf("unknown condition type: %s", condition.Type)
	}
}

// alternatives splits a "|" alternation into lowercased, trimmed options
func alternatives(value string) []string {
	var out []string
	for _, part := range strings.Split(value, "|") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// compareText matches free text case-insensitively against a "|" alternation
func compareText(subject string, condition agentconfig.StageCondition) (bool, error) {
	subject = strings.ToLower(strings.TrimSpace(subject))
	options := alternatives(condition.Value)

	switch condition.Operator {
	case agentconfig.OperatorContains:
		for _, opt := range options {
			if strings.Contains(subject, opt) {
				return true, nil
			}
		}
		return false, nil

	case agentconfig.OperatorEquals:
		for _, opt := range options {
			if subject == opt {
				return true, nil
			}
		}
		return false, nil

	case agentconfig.OperatorNotEquals:
		for _, opt := range options {
			if subject == opt {
				return false, nil
			}
		}
		return true, nil

	case agentconfig.OperatorGreaterThan, agentconfig.OperatorLessThan:
		return false, fmt.Errorf("operator %s does not apply to %s conditions", condition.Operator, condition.Type)

	default:
		return false, fmt.Errorf("unknown operator: %s", condition.Operator)
	}
}

// compareNumber compares a measured quantity with the numeric condition value
func compareNumber(measured float64, condition agentconfig.StageCondition) (bool, error) {
	expected, err := strconv.ParseFloat(strings.TrimSpace(condition.Value), 64)
	if err != nil {
		return false, fmt.Errorf("condition value %q is not a number", condition.Value)
	}

	switch condition.Operator {
	case agentconfig.OperatorGreaterThan:
		return measured > expected, nil
	case agentconfig.OperatorLessThan:
		return measured < expected, nil
	case agentconfig.OperatorEquals:
		return measured == expected, nil
	case agentconfig.OperatorNotEquals:
		return measured != expected, nil
	case agentconfig.OperatorContains:
		return false, fmt.Errorf("operator contains does not apply to %s conditions", condition.Type)
	default:
		return false, fmt.Errorf("unknown operator: %s", condition.Operator)
	}
}

// compareVariable handles "name" (is the variable captured?) and "name=expected"
func compareVariable(vars map[string]string, condition agentconfig.StageCondition) (bool, error) {
	name, expected, hasExpected := strings.Cut(condition.Value, "=")
	name = strings.TrimSpace(name)
	actual, exists := vars[name]
	isSet := exists && strings.TrimSpace(actual) != ""

	if !hasExpected {
		if condition.Operator == agentconfig.OperatorNotEquals {
			return !isSet, nil
		}
		return isSet, nil
	}
	if !isSet {
		return condition.Operator == agentconfig.OperatorNotEquals, nil
	}

	rule := agentconfig.StageCondition{Type: condition.Type, Operator: condition.Operator, Value: expected}
	switch condition.Operator {
	case agentconfig.OperatorGreaterThan, agentconfig.OperatorLessThan:
		measured, err := strconv.ParseFloat(strings.TrimSpace(actual), 64)
		if err != nil {
			return false, fmt.Errorf("variable %q is not a number", name)
		}
		return compareNumber(measured, rule)
	default:
		return compareText(actual, rule)
	}
}

// compareProducts matches mentioned product names; an empty value matches any mention
func compareProducts(mentioned []string, condition agentconfig.StageCondition) (bool, error) {
	options := alternatives(condition.Value)
	matched := false
	for _, product := range mentioned {
		name := strings.ToLower(strings.TrimSpace(product))
		if len(options) == 0 {
			matched = true
			break
		}
		for _, opt := range options {
			if (condition.Operator == agentconfig.OperatorContains && strings.Contains(name, opt)) || name == opt {
				matched = true
			}
		}
	}

	switch condition.Operator {
	case agentconfig.OperatorContains, agentconfig.OperatorEquals:
		return matched, nil
	case agentconfig.OperatorNotEquals:
		return !matched, nil
	case agentconfig.OperatorGreaterThan, agentconfig.OperatorLessThan:
		return false, fmt.Errorf("operator %s does not apply to %s conditions", condition.Operator, condition.Type)
	default:
		return false, fmt.Errorf("unknown operator: %s", condition.Operator)
	}
}
