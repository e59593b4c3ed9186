package agentconfig

// DefaultBusinessHours is disabled (agent answers 24/7) with a weekday 09:00-18:00 schedule ready to enable
func DefaultBusinessHours() BusinessHours {
	weekday := DaySchedule{Start: "09:00", End: "18:00", Active: true}
	weekend := DaySchedule{Start: "09:00", End: "13:00", Active: false}
	return BusinessHours{
		Enabled:  false,
		Timezone: "America/Sao_Paulo",
		Schedule: map[Weekday]DaySchedule{
			Monday:    weekday,
			Tuesday:   weekday,
			Wednesday: weekday,
			Thursday:  weekday,
			Friday:    weekday,
			Saturday:  weekend,
			Sunday:    weekend,
		},
	}
}

func DefaultPersonalityTraits() PersonalityTraits {
	return PersonalityTraits{
		Empathy:       60,
		Assertiveness: 50,
		Patience:      60,
		Enthusiasm:    50,
		Urgency:       40,
	}
}

func DefaultFollowUpTemplates() []FollowUpTemplate {
	return []FollowUpTemplate{
		{ID: "fu_initial_1", Stage: FunnelInitialContact, Attempt: 1, DelayMinutes: 15, Message: "Oi! Passando para ver se ficou alguma dúvida. Posso te ajudar?", IsActive: true},
		{ID: "fu_initial_2", Stage: FunnelInitialContact, Attempt: 2, DelayMinutes: 60, Message: "Ainda estou por aqui caso queira saber mais. 😊", IsActive: true},
		{ID: "fu_product_1", Stage: FunnelProductAware, Attempt: 1, DelayMinutes: 30, Message: "O que achou do {produto}? Posso te mostrar como ele funciona na prática.", IsActive: true},
		{ID: "fu_product_2", Stage: FunnelProductAware, Attempt: 2, DelayMinutes: 240, Message: "Separei alguns resultados de clientes com o {produto}. Quer ver?", IsActive: true},
		{ID: "fu_price_1", Stage: FunnelPriceAware, Attempt: 1, DelayMinutes: 60, Message: "Sei que investimento é uma decisão importante. Quer que eu explique as condições de pagamento do {produto}?", IsActive: true},
		{ID: "fu_price_2", Stage: FunnelPriceAware, Attempt: 2, DelayMinutes: 1440, Message: "Lembrei de você! As condições especiais do {produto} continuam valendo.", IsActive: true},
		{ID: "fu_objection_1", Stage: FunnelObjectionRaised, Attempt: 1, DelayMinutes: 120, Message: "Fiquei pensando na sua dúvida e trouxe mais informações. Posso compartilhar?", IsActive: true},
		{ID: "fu_cart_1", Stage: FunnelCartAbandoned, Attempt: 1, DelayMinutes: 15, Message: "Vi que você não finalizou a compra do {produto}. Aconteceu algum problema?", IsActive: true},
		{ID: "fu_cart_2", Stage: FunnelCartAbandoned, Attempt: 2, DelayMinutes: 60, Message: "Seu {produto} ainda está reservado. Posso te ajudar a concluir?", IsActive: true},
		{ID: "fu_cart_3", Stage: FunnelCartAbandoned, Attempt: 3, DelayMinutes: 1440, Message: "Última chamada! Seu carrinho com o {produto} expira hoje.", IsActive: true},
		{ID: "fu_negotiation_1", Stage: FunnelNegotiation, Attempt: 1, DelayMinutes: 240, Message: "Conseguiu avaliar a proposta? Estou à disposição para ajustar o que for preciso.", IsActive: true},
		{ID: "fu_decision_1", Stage: FunnelWaitingDecision, Attempt: 1, DelayMinutes: 1440, Message: "Oi! Já tomou uma decisão sobre o {produto}? Fico feliz em esclarecer qualquer ponto.", IsActive: true},
		{ID: "fu_decision_2", Stage: FunnelWaitingDecision, Attempt: 2, DelayMinutes: 4320, Message: "Só passando para lembrar que estou aqui quando quiser seguir com o {produto}.", IsActive: true},
	}
}

func DefaultFollowUpStrategy() FollowUpStrategy {
	return FollowUpStrategy{
		Enabled:                true,
		SmartTiming:            true,
		RespectQuietHours:      true,
		QuietHoursStart:        "21:00",
		QuietHoursEnd:          "08:00",
		MaxDailyMessages:       3,
		StopOnNegativeResponse: true,
		Templates:              DefaultFollowUpTemplates(),
	}
}

// DefaultConversationStages is the starter funnel: welcome -> discovery ->
// presentation -> negotiation -> closing
func DefaultConversationStages() []ConversationStage {
	return []ConversationStage{
		{
			ID:             "stage_welcome",
			Name:           "Boas-vindas",
			Description:    "Primeiro contato com o lead",
			Icon:           "wave",
			Color:          "#4CAF50",
			IsDefault:      true,
			IsActive:       true,
			Order:          1,
			Instructions:   "Cumprimente o lead, apresente-se e descubra o que motivou o contato.",
			ConditionLogic: LogicAnd,
			Transitions: []StageTransition{
				{
					ID:             "trans_welcome_discovery",
					TargetStageID:  "stage_discovery",
					ConditionLogic: LogicOr,
					Priority:       1,
					Conditions: []StageCondition{
						{ID: "cond_welcome_intent", Type: ConditionIntent, Operator: OperatorEquals, Value: "interesse"},
						{ID: "cond_welcome_count", Type: ConditionMessageCount, Operator: OperatorGreaterThan, Value: "2"},
					},
				},
			},
			EntryActions: []StageAction{
				NewStageAction("action_welcome_tag", TagLeadConfig{Tag: "novo_lead"}),
			},
			Settings: StageSettings{MaxMessagesInStage: 5, TimeoutMinutes: 60, TimeoutAction: TimeoutStay},
		},
		{
			ID:             "stage_discovery",
			Name:           "Descoberta",
			Description:    "Entender a necessidade do lead",
			Icon:           "search",
			Color:          "#2196F3",
			IsActive:       true,
			Order:          2,
			Instructions:   "Faça perguntas abertas para entender a dor, o contexto e o orçamento do lead.",
			ConditionLogic: LogicAnd,
			Transitions: []StageTransition{
				{
					ID:             "trans_discovery_presentation",
					TargetStageID:  "stage_presentation",
					ConditionLogic: LogicOr,
					Priority:       1,
					Conditions: []StageCondition{
						{ID: "cond_discovery_product", Type: ConditionProductMentioned, Operator: OperatorContains, Value: ""},
						{ID: "cond_discovery_keyword", Type: ConditionKeyword, Operator: OperatorContains, Value: "preço|valor|quanto custa"},
					},
				},
			},
			EntryActions: []StageAction{
				NewStageAction("action_discovery_capture", CaptureVariableConfig{Variable: "nome", Question: "Como posso te chamar?"}),
			},
			Settings: StageSettings{MaxMessagesInStage: 10, TimeoutMinutes: 120, TimeoutAction: TimeoutStay},
		},
		{
			ID:             "stage_presentation",
			Name:           "Apresentação",
			Description:    "Apresentar a solução ideal",
			Icon:           "presentation",
			Color:          "#9C27B0",
			IsActive:       true,
			Order:          3,
			Instructions:   "Apresente o produto mais adequado, conectando benefícios às necessidades levantadas.",
			ConditionLogic: LogicAnd,
			Transitions: []StageTransition{
				{
					ID:             "trans_presentation_negotiation",
					TargetStageID:  "stage_negotiation",
					ConditionLogic: LogicOr,
					Priority:       1,
					Conditions: []StageCondition{
						{ID: "cond_presentation_discount", Type: ConditionKeyword, Operator: OperatorContains, Value: "desconto|parcel|condição"},
					},
				},
				{
					ID:             "trans_presentation_closing",
					TargetStageID:  "stage_closing",
					ConditionLogic: LogicAnd,
					Priority:       2,
					Conditions: []StageCondition{
						{ID: "cond_presentation_buy", Type: ConditionIntent, Operator: OperatorEquals, Value: "compra"},
					},
				},
			},
			EntryActions: []StageAction{},
			Settings:     StageSettings{AllowHumanHandoff: true, MaxMessagesInStage: 10, TimeoutMinutes: 1440, TimeoutAction: TimeoutStay},
		},
		{
			ID:             "stage_negotiation",
			Name:           "Negociação",
			Description:    "Tratar objeções e condições",
			Icon:           "handshake",
			Color:          "#FF9800",
			IsActive:       true,
			Order:          4,
			Instructions:   "Negocie dentro do limite de desconto permitido e reforce o valor antes de falar de preço.",
			ConditionLogic: LogicAnd,
			Transitions: []StageTransition{
				{
					ID:             "trans_negotiation_closing",
					TargetStageID:  "stage_closing",
					ConditionLogic: LogicAnd,
					Priority:       1,
					Conditions: []StageCondition{
						{ID: "cond_negotiation_buy", Type: ConditionIntent, Operator: OperatorEquals, Value: "compra"},
					},
				},
			},
			EntryActions: []StageAction{},
			Settings:     StageSettings{AllowHumanHandoff: true, MaxMessagesInStage: 15, TimeoutMinutes: 1440, TimeoutAction: TimeoutHandoff},
		},
		{
			ID:             "stage_closing",
			Name:           "Fechamento",
			Description:    "Conduzir ao checkout",
			Icon:           "check-circle",
			Color:          "#F44336",
			IsActive:       true,
			Order:          5,
			Instructions:   "Envie o link de checkout e acompanhe o lead até a confirmação do pagamento.",
			ConditionLogic: LogicAnd,
			Transitions:    []StageTransition{},
			EntryActions: []StageAction{
				NewStageAction("action_closing_webhook", TriggerWebhookConfig{}),
				NewStageAction("action_closing_followup", ScheduleFollowupConfig{Stage: FunnelCartAbandoned, DelayMinutes: 15}),
			},
			Settings: StageSettings{MaxMessagesInStage: 10, TimeoutMinutes: 60, TimeoutAction: TimeoutStay},
		},
	}
}

// NewDefaultAgent returns the configuration a user starts from when creating an agent
func NewDefaultAgent(id string) Agent {
	return Agent{
		ID:       id,
		Name:     "Novo Agente",
		IsActive: false,

		Persona:   PersonaConsultor,
		VoiceTone: ToneProfissional,
		Language:  "pt-BR",

		ResponseLength: LengthEquilibrado,
		FormalityLevel: FormalityNeutro,
		UseEmojis:      true,

		GreetingMessage: "Olá! 👋 Como posso ajudar você hoje?",
		FarewellMessage: "Obrigado pelo contato! Estou à disposição.",
		AwayMessage:     "Estamos fora do horário de atendimento. Retornaremos em breve!",

		ProactivityLevel: ProactivityMedio,
		FollowUpDelay:    30,
		MaxFollowUps:     3,
		TypingSimulation: true,

		BusinessHours: DefaultBusinessHours(),

		Products:            []Product{},
		ObjectionRules:      []ObjectionRule{},
		ForbiddenWords:      []string{},
		DiscountLimit:       10,
		IntegrationTriggers: []IntegrationTrigger{},
		ConversationStages:  DefaultConversationStages(),
	}
}
