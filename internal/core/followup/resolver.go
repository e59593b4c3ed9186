package followup

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/agentconfig"
)

var ErrInvalidQuietHours = errors.New("invalid quiet hours")

// GateReason explains why a follow-up was suppressed
type GateReason string

const (
	GateAllowed          GateReason = ""
	GateDisabled         GateReason = "disabled"
	GateDailyCap         GateReason = "daily_cap_reached"
	GateQuietHours       GateReason = "quiet_hours"
	GateNegativeResponse GateReason = "negative_response"
	GateExhausted        GateReason = "exhausted"
)

// GateInput is the runtime state the gate needs
type GateInput struct {
	SentToday            int            `json:"sentToday"`
	Now                  time.Time      `json:"now"`
	Location             *time.Location `json:"-"`
	LastResponseNegative bool           `json:"lastResponseNegative"`
}

type GateDecision struct {
	Allowed bool       `json:"allowed"`
	Reason  GateReason `json:"reason,omitempty"`
}

// History is the follow-up history of one lead in one funnel stage
type History struct {
	StageEnteredAt       time.Time `json:"stageEnteredAt"`
	PriorAttempts        int       `json:"priorAttempts"`
	LastAttemptAt        time.Time `json:"lastAttemptAt"`
	SentToday            int       `json:"sentToday"`
	LastResponseNegative bool      `json:"lastResponseNegative"`
}

// Plan is the next follow-up to send and when
type Plan struct {
	Template agentconfig.FollowUpTemplate `json:"template"`
	SendAt   time.Time                    `json:"sendAt"`
	Shifted  bool                         `json:"shifted"`
}

// Select returns the active template for attempt priorAttempts+1 in stage.
// ok is false when the sequence is exhausted.
func Select(strategy agentconfig.FollowUpStrategy, stage agentconfig.FunnelStage, priorAttempts int) (agentconfig.FollowUpTemplate, bool) {
	want := priorAttempts + 1
	for _, t := range strategy.Templates {
		if t.IsActive && t.Stage == stage && t.Attempt == want {
			return t, true
		}
	}
	return agentconfig.FollowUpTemplate{}, false
}

// Gate decides whether any follow-up may be sent right now
func Gate(strategy agentconfig.FollowUpStrategy, in GateInput) (GateDecision, error) {
	if !strategy.Enabled {
		return GateDecision{Reason: GateDisabled}, nil
	}
	if strategy.StopOnNegativeResponse && in.LastResponseNegative {
		return GateDecision{Reason: GateNegativeResponse}, nil
	}
	if in.SentToday >= strategy.MaxDailyMessages {
		return GateDecision{Reason: GateDailyCap}, nil
	}
	if strategy.RespectQuietHours {
		quiet, err := InQuietHours(strategy, in.Now, in.Location)
		if err != nil {
			return GateDecision{}, err
		}
		if quiet {
			return GateDecision{Reason: GateQuietHours}, nil
		}
	}
	return GateDecision{Allowed: true}, nil
}

// InQuietHours reports whether t falls in [quietHoursStart, quietHoursEnd).
// A window whose start is after its end wraps past midnight.
func InQuietHours(strategy agentconfig.FollowUpStrategy, t time.Time, loc *time.Location) (bool, error) {
	start, end, err := quietWindow(strategy)
	if err != nil {
		return false, err
	}
	if loc != nil {
		t = t.In(loc)
	}
	return inWindow(minuteOfDay(t), start, end), nil
}

// Next combines Select and Gate and schedules the follow-up. Attempt 1 is
// delayed from stage entry, later attempts from the previous attempt. A send
// time inside quiet hours moves to the end of the quiet window.
//
// The returned decision reflects the gate at now; Plan is set only when a
// template exists, and is still returned when the gate suppresses sending so
// callers can display what would go out next.
func Next(strategy agentconfig.FollowUpStrategy, stage agentconfig.FunnelStage, h History, now time.Time, loc *time.Location) (*Plan, GateDecision, error) {
	tmpl, ok := Select(strategy, stage, h.PriorAttempts)
	if !ok {
		return nil, GateDecision{Reason: GateExhausted}, nil
	}

	decision, err := Gate(strategy, GateInput{
		SentToday:            h.SentToday,
		Now:                  now,
		Location:             loc,
		LastResponseNegative: h.LastResponseNegative,
	})
	if err != nil {
		return nil, GateDecision{}, err
	}

	base := h.StageEnteredAt
	if h.PriorAttempts > 0 && !h.LastAttemptAt.IsZero() {
		base = h.LastAttemptAt
	}
	plan := &Plan{Template: tmpl, SendAt: base.Add(time.Duration(tmpl.DelayMinutes) * time.Minute)}

	if strategy.RespectQuietHours {
		shifted, moved, err := leaveQuietHours(strategy, plan.SendAt, loc)
		if err != nil {
			return nil, GateDecision{}, err
		}
		plan.SendAt, plan.Shifted = shifted, moved
	}
	return plan, decision, nil
}

// Sorted orders templates by funnel stage, then attempt
func Sorted(templates []agentconfig.FollowUpTemplate) []agentconfig.FollowUpTemplate {
	out := make([]agentconfig.FollowUpTemplate, len(templates))
	copy(out, templates)
	sort.SliceStable(out, func(i, j int) bool {
		ri, rj := out[i].Stage.Rank(), out[j].Stage.Rank()
		if ri != rj {
			return ri < rj
		}
		return out[i].Attempt < out[j].Attempt
	})
	return out
}

// ByStage groups templates by funnel stage, each group sorted by attempt
func ByStage(templates []agentconfig.FollowUpTemplate) map[agentconfig.FunnelStage][]agentconfig.FollowUpTemplate {
	groups := make(map[agentconfig.FunnelStage][]agentconfig.FollowUpTemplate)
	for _, t := range Sorted(templates) {
		groups[t.Stage] = append(groups[t.Stage], t)
	}
	return groups
}

func quietWindow(strategy agentconfig.FollowUpStrategy) (int, int, error) {
	start, err := agentconfig.ParseClock(strategy.QuietHoursStart)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: start: %v", ErrInvalidQuietHours, err)
	}
	end, err := agentconfig.ParseClock(strategy.QuietHoursEnd)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: end: %v", ErrInvalidQuietHours, err)
	}
	return start, end, nil
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

func inWindow(now, start, end int) bool {
	switch {
	case start == end:
		return false
	case start < end:
		return now >= start && now < end
	default:
		return now >= start || now < end
	}
}

func leaveQuietHours(strategy agentconfig.FollowUpStrategy, t time.Time, loc *time.Location) (time.Time, bool, error) {
	start, end, err := quietWindow(strategy)
	if err != nil {
		return t, false, err
	}
	if loc != nil {
		t = t.In(loc)
	}
	now := minuteOfDay(t)
	if !inWindow(now, start, end) {
		return t, false, nil
	}

	midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	resume := midnight.Add(time.Duration(end) * time.Minute)
	if now >= end {
		resume = time.Date(t.Year(), t.Month(), t.Day()+1, 0, 0, 0, 0, t.Location()).Add(time.Duration(end) * time.Minute)
	}
	return resume, true, nil
}
