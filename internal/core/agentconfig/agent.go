package agentconfig

// Agent is the root configuration aggregate of one sales agent.
// It owns every nested collection; stage-to-stage references are resolved by id.
type Agent struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive bool   `json:"isActive"`

	// Identity
	Persona           Persona            `json:"persona"`
	VoiceTone         VoiceTone          `json:"voiceTone"`
	Avatar            string             `json:"avatar,omitempty"`
	Language          string             `json:"language"`
	PersonalityTraits *PersonalityTraits `json:"personalityTraits,omitempty"`

	// Company context
	CompanyName        string `json:"companyName"`
	Industry           string `json:"industry"`
	CompanyDescription string `json:"companyDescription"`
	TargetAudience     string `json:"targetAudience"`
	Differentiators    string `json:"differentiators,omitempty"`

	// Goals
	PrimaryGoal   PrimaryGoal `json:"primaryGoal,omitempty"`
	SecondaryGoal string      `json:"secondaryGoal,omitempty"`
	SuccessMetric string      `json:"successMetric,omitempty"`

	// Communication style
	ResponseLength ResponseLength `json:"responseLength"`
	FormalityLevel FormalityLevel `json:"formalityLevel"`
	UseEmojis      bool           `json:"useEmojis"`

	// Standard messages
	GreetingMessage string `json:"greetingMessage"`
	FarewellMessage string `json:"farewellMessage"`
	AwayMessage     string `json:"awayMessage"`

	// Behavior. FollowUpDelay and MaxFollowUps are the legacy single-cadence
	// follow-up settings, superseded by FollowUpStrategy.
	ProactivityLevel ProactivityLevel  `json:"proactivityLevel"`
	FollowUpDelay    int               `json:"followUpDelay"`
	MaxFollowUps     int               `json:"maxFollowUps"`
	TypingSimulation bool              `json:"typingSimulation"`
	FollowUpStrategy *FollowUpStrategy `json:"followUpStrategy,omitempty"`

	BusinessHours BusinessHours `json:"businessHours"`

	// SystemPrompt overrides the compiled prompt when non-empty
	SystemPrompt string `json:"systemPrompt"`

	// Dashboard stats & connections
	ConversationsToday int  `json:"conversationsToday"`
	WhatsappConnected  bool `json:"whatsappConnected"`

	Products            []Product            `json:"products"`
	ObjectionRules      []ObjectionRule      `json:"objectionRules"`
	ForbiddenWords      []string             `json:"forbiddenWords"`
	DiscountLimit       int                  `json:"discountLimit"`
	HandoffContact      string               `json:"handoffContact"`
	WebhookURL          string               `json:"webhookUrl"`
	IntegrationTriggers []IntegrationTrigger `json:"integrationTriggers"`
	ConversationStages  []ConversationStage  `json:"conversationStages,omitempty"`
}

// PersonalityTraits are independent 0-100 scores
type PersonalityTraits struct {
	Empathy       int `json:"empathy"`
	Assertiveness int `json:"assertiveness"`
	Patience      int `json:"patience"`
	Enthusiasm    int `json:"enthusiasm"`
	Urgency       int `json:"urgency"`
}

type FAQItem struct {
	ID       string `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// KnowledgeDocument is consulted by the answering engine and never sent to the lead
type KnowledgeDocument struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        DocumentType `json:"type"`
	URL         string       `json:"url"`
	Description string       `json:"description,omitempty"`
}

// LeadMaterial may be sent directly to the lead
type LeadMaterial struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Type        MaterialType `json:"type"`
	URL         string       `json:"url"`
	Description string       `json:"description,omitempty"`
}

// Attachment is the pre-split product file list.
//
// Deprecated: read-only, use KnowledgeBase and LeadMaterials.
type Attachment struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
	SendToLead  bool   `json:"sendToLead,omitempty"`
}

type Product struct {
	ID            string              `json:"id"`
	Name          string              `json:"name"`
	Price         float64             `json:"price"`
	Description   string              `json:"description"`
	CheckoutLink  string              `json:"checkoutLink"`
	FAQ           []FAQItem           `json:"faq"`
	KnowledgeBase []KnowledgeDocument `json:"knowledgeBase"`
	LeadMaterials []LeadMaterial      `json:"leadMaterials"`

	// Deprecated: kept for backward-compatible reads only.
	Attachments []Attachment `json:"attachments,omitempty"`
}

// SplitAttachments maps deprecated attachments onto the knowledge-base /
// lead-material split. Attachments flagged sendToLead become lead materials;
// the rest become knowledge-base documents. Types that do not exist on the
// target side fall back to link.
func (p Product) SplitAttachments() ([]KnowledgeDocument, []LeadMaterial) {
	var docs []KnowledgeDocument
	var materials []LeadMaterial
	for _, a := range p.Attachments {
		if a.SendToLead {
			t := MaterialType(a.Type)
			if !t.IsValid() {
				t = MaterialLink
			}
			materials = append(materials, LeadMaterial{ID: a.ID, Name: a.Name, Type: t, URL: a.URL, Description: a.Description})
			continue
		}
		t := DocumentType(a.Type)
		if !t.IsValid() {
			t = DocumentLink
		}
		docs = append(docs, KnowledgeDocument{ID: a.ID, Name: a.Name, Type: t, URL: a.URL, Description: a.Description})
	}
	return docs, materials
}

// ObjectionRule is an if-trigger/then-action guideline
type ObjectionRule struct {
	ID      string `json:"id"`
	Trigger string `json:"trigger"`
	Action  string `json:"action"`
}

type IntegrationTrigger struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Event       TriggerEvent `json:"event"`
	CustomEvent string       `json:"customEvent,omitempty"`
	DataFields  []string     `json:"dataFields"`
	WebhookURL  string       `json:"webhookUrl"`
	IsActive    bool         `json:"isActive"`
}

type DaySchedule struct {
	Start  string `json:"start"`
	End    string `json:"end"`
	Active bool   `json:"active"`
}

// BusinessHours restricts availability only when Enabled
type BusinessHours struct {
	Enabled  bool                    `json:"enabled"`
	Timezone string                  `json:"timezone"`
	Schedule map[Weekday]DaySchedule `json:"schedule"`
}

type FollowUpStrategy struct {
	Enabled                bool               `json:"enabled"`
	SmartTiming            bool               `json:"smartTiming"`
	RespectQuietHours      bool               `json:"respectQuietHours"`
	QuietHoursStart        string             `json:"quietHoursStart"`
	QuietHoursEnd          string             `json:"quietHoursEnd"`
	MaxDailyMessages       int                `json:"maxDailyMessages"`
	StopOnNegativeResponse bool               `json:"stopOnNegativeResponse"`
	Templates              []FollowUpTemplate `json:"templates"`
}

// ActiveTemplates returns the active templates in their stored order
func (s FollowUpStrategy) ActiveTemplates() []FollowUpTemplate {
	var active []FollowUpTemplate
	for _, t := range s.Templates {
		if t.IsActive {
			active = append(active, t)
		}
	}
	return active
}

// FollowUpTemplate is a re-engagement message. Message may contain the
// {produto} placeholder; it is stored raw.
type FollowUpTemplate struct {
	ID           string      `json:"id"`
	Stage        FunnelStage `json:"stage"`
	Attempt      int         `json:"attempt"`
	DelayMinutes int         `json:"delayMinutes"`
	Message      string      `json:"message"`
	IsActive     bool        `json:"isActive"`
}

// ProductPlaceholder is substituted with a product name by the execution engine
const ProductPlaceholder = "{produto}"
