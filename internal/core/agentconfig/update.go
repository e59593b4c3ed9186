package agentconfig

import "sync"

// AgentUpdate is a partial Agent. Nil fields are left untouched; set fields
// replace the current value wholesale, including nested objects and lists.
// The optional blocks are removed with their Clear flags, which win over a
// value sent in the same update.
type AgentUpdate struct {
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`

	Persona           *Persona           `json:"persona,omitempty"`
	VoiceTone         *VoiceTone         `json:"voiceTone,omitempty"`
	Avatar            *string            `json:"avatar,omitempty"`
	Language          *string            `json:"language,omitempty"`
	PersonalityTraits *PersonalityTraits `json:"personalityTraits,omitempty"`

	CompanyName        *string `json:"companyName,omitempty"`
	Industry           *string `json:"industry,omitempty"`
	CompanyDescription *string `json:"companyDescription,omitempty"`
	TargetAudience     *string `json:"targetAudience,omitempty"`
	Differentiators    *string `json:"differentiators,omitempty"`

	PrimaryGoal   *PrimaryGoal `json:"primaryGoal,omitempty"`
	SecondaryGoal *string      `json:"secondaryGoal,omitempty"`
	SuccessMetric *string      `json:"successMetric,omitempty"`

	ResponseLength *ResponseLength `json:"responseLength,omitempty"`
	FormalityLevel *FormalityLevel `json:"formalityLevel,omitempty"`
	UseEmojis      *bool           `json:"useEmojis,omitempty"`

	GreetingMessage *string `json:"greetingMessage,omitempty"`
	FarewellMessage *string `json:"farewellMessage,omitempty"`
	AwayMessage     *string `json:"awayMessage,omitempty"`

	ProactivityLevel *ProactivityLevel `json:"proactivityLevel,omitempty"`
	FollowUpDelay    *int              `json:"followUpDelay,omitempty"`
	MaxFollowUps     *int              `json:"maxFollowUps,omitempty"`
	TypingSimulation *bool             `json:"typingSimulation,omitempty"`
	FollowUpStrategy *FollowUpStrategy `json:"followUpStrategy,omitempty"`

	BusinessHours *BusinessHours `json:"businessHours,omitempty"`
	SystemPrompt  *string        `json:"systemPrompt,omitempty"`

	ConversationsToday *int  `json:"conversationsToday,omitempty"`
	WhatsappConnected  *bool `json:"whatsappConnected,omitempty"`

	Products            *[]Product            `json:"products,omitempty"`
	ObjectionRules      *[]ObjectionRule      `json:"objectionRules,omitempty"`
	ForbiddenWords      *[]string             `json:"forbiddenWords,omitempty"`
	DiscountLimit       *int                  `json:"discountLimit,omitempty"`
	HandoffContact      *string               `json:"handoffContact,omitempty"`
	WebhookURL          *string               `json:"webhookUrl,omitempty"`
	IntegrationTriggers *[]IntegrationTrigger `json:"integrationTriggers,omitempty"`
	ConversationStages  *[]ConversationStage  `json:"conversationStages,omitempty"`

	ClearPersonalityTraits bool `json:"clearPersonalityTraits,omitempty"`
	ClearFollowUpStrategy  bool `json:"clearFollowUpStrategy,omitempty"`
}

// Apply merges u into a copy of a at the top level. No validation happens here.
func (a Agent) Apply(u AgentUpdate) Agent {
	set(&a.Name, u.Name)
	set(&a.IsActive, u.IsActive)

	set(&a.Persona, u.Persona)
	set(&a.VoiceTone, u.VoiceTone)
	set(&a.Avatar, u.Avatar)
	set(&a.Language, u.Language)
	if u.PersonalityTraits != nil {
		traits := *u.PersonalityTraits
		a.PersonalityTraits = &traits
	}
	if u.ClearPersonalityTraits {
		a.PersonalityTraits = nil
	}

	set(&a.CompanyName, u.CompanyName)
	set(&a.Industry, u.Industry)
	set(&a.CompanyDescription, u.CompanyDescription)
	set(&a.TargetAudience, u.TargetAudience)
	set(&a.Differentiators, u.Differentiators)

	set(&a.PrimaryGoal, u.PrimaryGoal)
	set(&a.SecondaryGoal, u.SecondaryGoal)
	set(&a.SuccessMetric, u.SuccessMetric)

	set(&a.ResponseLength, u.ResponseLength)
	set(&a.FormalityLevel, u.FormalityLevel)
	set(&a.UseEmojis, u.UseEmojis)

	set(&a.GreetingMessage, u.GreetingMessage)
	set(&a.FarewellMessage, u.FarewellMessage)
	set(&a.AwayMessage, u.AwayMessage)

	set(&a.ProactivityLevel, u.ProactivityLevel)
	set(&a.FollowUpDelay, u.FollowUpDelay)
	set(&a.MaxFollowUps, u.MaxFollowUps)
	set(&a.TypingSimulation, u.TypingSimulation)
	if u.FollowUpStrategy != nil {
		strategy := *u.FollowUpStrategy
		a.FollowUpStrategy = &strategy
	}
	if u.ClearFollowUpStrategy {
		a.FollowUpStrategy = nil
	}

	set(&a.BusinessHours, u.BusinessHours)
	set(&a.SystemPrompt, u.SystemPrompt)

	set(&a.ConversationsToday, u.ConversationsToday)
	set(&a.WhatsappConnected, u.WhatsappConnected)

	set(&a.Products, u.Products)
	set(&a.ObjectionRules, u.ObjectionRules)
	set(&a.ForbiddenWords, u.ForbiddenWords)
	set(&a.DiscountLimit, u.DiscountLimit)
	set(&a.HandoffContact, u.HandoffContact)
	set(&a.WebhookURL, u.WebhookURL)
	set(&a.IntegrationTriggers, u.IntegrationTriggers)
	set(&a.ConversationStages, u.ConversationStages)

	return a
}

func set[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}

// Store holds the agent currently being edited
type Store struct {
	mu    sync.RWMutex
	agent Agent
}

func NewStore(agent Agent) *Store {
	return &Store{agent: agent}
}

// Current returns the held agent
func (s *Store) Current() Agent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.agent
}

// Update applies a partial update atomically and returns the merged agent
func (s *Store) Update(u AgentUpdate) Agent {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agent = s.agent.Apply(u)
	return s.agent
}

// Replace swaps the held agent
func (s *Store) Replace(agent Agent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agent = agent
}
