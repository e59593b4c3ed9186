package seed

import (
	"fmt"
	"math"

	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/agentconfig"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/modules/configurator/repositories"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/shared/utils"
)

// MockAgents returns the demo agents shown on a fresh dashboard
func MockAgents() []agentconfig.Agent {
	return []agentconfig.Agent{hunter(), clara(), expert()}
}

// Seed stores the demo agents, skipping ids that already exist
func Seed(repo repositories.AgentRepo) (int, error) {
	created := 0
	for _, agent := range MockAgents() {
		if _, err := repo.FindByID(agent.ID); err == nil {
			continue
		}
		if err := repo.Create(agent); err != nil {
			return created, fmt.Errorf("failed to seed agent %s: %w", agent.ID, err)
		}
		created++
	}
	utils.LogInfo("🌱 Mock agents seeded", map[string]interface{}{"created": created})
	return created, nil
}

// scaledStrategy is the default strategy with every delay scaled by factor
func scaledStrategy(maxDaily int, factor float64) *agentconfig.FollowUpStrategy {
	strategy := agentconfig.DefaultFollowUpStrategy()
	strategy.MaxDailyMessages = maxDaily
	for i := range strategy.Templates {
		strategy.Templates[i].DelayMinutes = int(math.Round(float64(strategy.Templates[i].DelayMinutes) * factor))
	}
	return &strategy
}

func openHours() agentconfig.BusinessHours {
	hours := agentconfig.DefaultBusinessHours()
	hours.Enabled = true
	return hours
}

func hunter() agentconfig.Agent {
	return agentconfig.Agent{
		ID:                 "1",
		Name:               "Vendedor Hunter",
		IsActive:           true,
		Persona:            agentconfig.PersonaAgressivo,
		VoiceTone:          agentconfig.ToneDireto,
		Language:           "pt-BR",
		PersonalityTraits:  &agentconfig.PersonalityTraits{Empathy: 40, Assertiveness: 85, Patience: 30, Enthusiasm: 90, Urgency: 80},
		CompanyName:        "Escola de Vendas Premium",
		Industry:           "Educação",
		CompanyDescription: "Somos uma escola especializada em formar os melhores vendedores do mercado.",
		TargetAudience:     "Profissionais de vendas, empreendedores e gestores comerciais",
		PrimaryGoal:        agentconfig.GoalVendaDireta,
		ResponseLength:     agentconfig.LengthConciso,
		FormalityLevel:     agentconfig.FormalityInformal,
		UseEmojis:          true,
		GreetingMessage:    "Fala! 🔥 Vi que você tem interesse em turbinar suas vendas. Posso te ajudar?",
		FarewellMessage:    "Valeu demais! Qualquer dúvida, só chamar. Bora vender! 💪",
		AwayMessage:        "Estou fora agora, mas deixa sua mensagem que respondo assim que voltar!",
		ProactivityLevel:   agentconfig.ProactivityAlto,
		FollowUpDelay:      15,
		MaxFollowUps:       5,
		TypingSimulation:   true,
		FollowUpStrategy:   scaledStrategy(5, 0.7),
		BusinessHours:      openHours(),
		SystemPrompt:       "Você é um vendedor focado em conversão...",
		ConversationsToday: 24,
		WhatsappConnected:  true,
		Products: []agentconfig.Product{
			{
				ID:           "1",
				Name:         "Curso de Vendas",
				Price:        997,
				Description:  "Aprenda a vender mais",
				CheckoutLink: "https://checkout.com/curso-vendas",
				FAQ: []agentconfig.FAQItem{
					{ID: "1", Question: "Quanto tempo tenho acesso?", Answer: "Acesso vitalício ao curso completo."},
					{ID: "2", Question: "Tem garantia?", Answer: "Sim, 7 dias de garantia incondicional."},
				},
				KnowledgeBase: []agentconfig.KnowledgeDocument{
					{ID: "1", Name: "Manual do Curso", Type: agentconfig.DocumentPDF, URL: "https://exemplo.com/manual.pdf", Description: "Documentação técnica para o agente consultar"},
				},
				LeadMaterials: []agentconfig.LeadMaterial{
					{ID: "1", Name: "Ementa do Curso", Type: agentconfig.MaterialPDF, URL: "https://exemplo.com/ementa.pdf", Description: "Grade curricular completa"},
					{ID: "2", Name: "Vídeo do Coordenador", Type: agentconfig.MaterialVideo, URL: "https://youtube.com/watch?v=xxx", Description: "Apresentação do coordenador do curso"},
				},
			},
			{
				ID:            "2",
				Name:          "Mentoria Premium",
				Price:         2497,
				Description:   "Acompanhamento individual",
				CheckoutLink:  "https://checkout.com/mentoria",
				FAQ:           []agentconfig.FAQItem{},
				KnowledgeBase: []agentconfig.KnowledgeDocument{},
				LeadMaterials: []agentconfig.LeadMaterial{},
			},
		},
		ObjectionRules: []agentconfig.ObjectionRule{
			{ID: "1", Trigger: "O cliente disse que está caro", Action: "Oferecer desconto de 5% e destacar o valor"},
			{ID: "2", Trigger: "O cliente quer pensar", Action: "Criar urgência com bônus por tempo limitado"},
		},
		ForbiddenWords: []string{"concorrente", "barato", "grátis"},
		DiscountLimit:  15,
		HandoffContact: "vendas@empresa.com",
		WebhookURL:     "https://n8n.empresa.com/webhook/agent-1",
		IntegrationTriggers: []agentconfig.IntegrationTrigger{
			{
				ID:         "1",
				Name:       "Enviar Curso de Interesse para CRM",
				Event:      agentconfig.EventInterestIdentified,
				DataFields: []string{"nome", "email", "telefone", "curso_interesse"},
				WebhookURL: "https://hooks.zapier.com/exemplo/curso-interesse",
				IsActive:   true,
			},
			{
				ID:         "2",
				Name:       "Lead Qualificado",
				Event:      agentconfig.EventLeadCaptured,
				DataFields: []string{"nome", "email", "telefone", "origem_lead"},
				WebhookURL: "https://n8n.empresa.com/webhook/lead-qualificado",
				IsActive:   false,
			},
		},
		ConversationStages: agentconfig.DefaultConversationStages(),
	}
}

func clara() agentconfig.Agent {
	return agentconfig.Agent{
		ID:                 "2",
		Name:               "Suporte Clara",
		IsActive:           true,
		Persona:            agentconfig.PersonaSuporte,
		VoiceTone:          agentconfig.ToneEmpatico,
		Language:           "pt-BR",
		PersonalityTraits:  &agentconfig.PersonalityTraits{Empathy: 90, Assertiveness: 25, Patience: 85, Enthusiasm: 40, Urgency: 15},
		CompanyName:        "TechSoft Solutions",
		Industry:           "Tecnologia",
		CompanyDescription: "Empresa de software focada em soluções para PMEs.",
		TargetAudience:     "Pequenas e médias empresas",
		PrimaryGoal:        agentconfig.GoalSuporte,
		ResponseLength:     agentconfig.LengthDetalhado,
		FormalityLevel:     agentconfig.FormalityNeutro,
		UseEmojis:          false,
		GreetingMessage:    "Olá! Sou a Clara, sua assistente de suporte. Como posso ajudar?",
		FarewellMessage:    "Fico feliz em ter ajudado! Qualquer dúvida, estarei aqui.",
		AwayMessage:        "Nosso horário de atendimento é das 9h às 18h. Deixe sua mensagem!",
		ProactivityLevel:   agentconfig.ProactivityBaixo,
		FollowUpDelay:      60,
		MaxFollowUps:       2,
		TypingSimulation:   true,
		FollowUpStrategy:   scaledStrategy(2, 1.5),
		BusinessHours:      agentconfig.DefaultBusinessHours(),
		SystemPrompt:       "Você é uma assistente de suporte...",
		ConversationsToday: 42,
		WhatsappConnected:  true,
		Products:           []agentconfig.Product{},
		ObjectionRules: []agentconfig.ObjectionRule{
			{ID: "1", Trigger: "Cliente frustrado", Action: "Pedir desculpas e oferecer solução imediata"},
		},
		ForbiddenWords:      []string{"problema seu", "não sei"},
		DiscountLimit:       0,
		HandoffContact:      "suporte@empresa.com",
		WebhookURL:          "https://n8n.empresa.com/webhook/agent-2",
		IntegrationTriggers: []agentconfig.IntegrationTrigger{},
		ConversationStages:  agentconfig.DefaultConversationStages(),
	}
}

func expert() agentconfig.Agent {
	strategy := agentconfig.DefaultFollowUpStrategy()
	return agentconfig.Agent{
		ID:                 "3",
		Name:               "Consultor Expert",
		IsActive:           false,
		Persona:            agentconfig.PersonaConsultor,
		VoiceTone:          agentconfig.ToneProfissional,
		Language:           "pt-BR",
		PersonalityTraits:  &agentconfig.PersonalityTraits{Empathy: 60, Assertiveness: 55, Patience: 70, Enthusiasm: 50, Urgency: 35},
		CompanyName:        "Consultoria Estratégica BR",
		Industry:           "Consultoria",
		CompanyDescription: "Consultoria especializada em transformação digital e estratégia de negócios.",
		TargetAudience:     "Executivos e C-Level de grandes empresas",
		PrimaryGoal:        agentconfig.GoalAgendamento,
		ResponseLength:     agentconfig.LengthEquilibrado,
		FormalityLevel:     agentconfig.FormalityFormal,
		UseEmojis:          false,
		GreetingMessage:    "Bom dia! Sou o consultor responsável pelo seu atendimento. Em que posso ser útil?",
		FarewellMessage:    "Agradeço pelo seu tempo. Fico à disposição para futuras consultas.",
		AwayMessage:        "No momento estou em atendimento. Entrarei em contato assim que possível.",
		ProactivityLevel:   agentconfig.ProactivityMedio,
		FollowUpDelay:      120,
		MaxFollowUps:       2,
		TypingSimulation:   false,
		FollowUpStrategy:   &strategy,
		BusinessHours:      openHours(),
		SystemPrompt:       "Você é um consultor especializado...",
		ConversationsToday: 0,
		WhatsappConnected:  false,
		Products: []agentconfig.Product{
			{
				ID:            "1",
				Name:          "Consultoria Estratégica",
				Price:         5000,
				Description:   "Análise completa do negócio",
				CheckoutLink:  "https://checkout.com/consultoria",
				FAQ:           []agentconfig.FAQItem{},
				KnowledgeBase: []agentconfig.KnowledgeDocument{},
				LeadMaterials: []agentconfig.LeadMaterial{},
			},
		},
		ObjectionRules:      []agentconfig.ObjectionRule{},
		ForbiddenWords:      []string{},
		DiscountLimit:       10,
		HandoffContact:      "consultoria@empresa.com",
		WebhookURL:          "https://n8n.empresa.com/webhook/agent-3",
		IntegrationTriggers: []agentconfig.IntegrationTrigger{},
		ConversationStages:  agentconfig.DefaultConversationStages(),
	}
}
