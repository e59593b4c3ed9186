package prompt

import "github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/agentconfig"

// The lookup functions below report ok=false for values outside the closed
// sets; the compiler then falls back to the raw value.

func personaPhrase(p agentconfig.Persona) (emoji, description string, ok bool) {
	switch p {
	case agentconfig.PersonaConsultor:
		return "🎓", "consultor, focado em educar e orientar o lead", true
	case agentconfig.PersonaAgressivo:
		return "🔥", "vendedor agressivo, focado em conversão rápida", true
	case agentconfig.PersonaSuporte:
		return "🛟", "especialista de suporte, focado em resolver problemas", true
	case agentconfig.PersonaCloser:
		return "🎯", "closer, especialista em fechar vendas", true
	case agentconfig.PersonaQualificador:
		return "🔍", "qualificador, focado em qualificar leads", true
	}
	return "", "", false
}

func tonePhrase(t agentconfig.VoiceTone) (emoji, description string, ok bool) {
	switch t {
	case agentconfig.ToneEmpatico:
		return "💙", "empático, acolhedor e compreensivo", true
	case agentconfig.ToneDireto:
		return "⚡", "direto, objetivo e sem rodeios", true
	case agentconfig.ToneAmigavel:
		return "😊", "amigável, leve e próximo", true
	case agentconfig.ToneProfissional:
		return "💼", "profissional, claro e confiável", true
	case agentconfig.ToneEntusiasmado:
		return "🚀", "entusiasmado, cheio de energia", true
	}
	return "", "", false
}

func languageLabel(lang string) string {
	switch lang {
	case "pt-BR":
		return "Português (Brasil)"
	case "pt-PT":
		return "Português (Portugal)"
	case "en-US":
		return "English (US)"
	case "es":
		return "Español"
	default:
		return lang
	}
}

func goalPhrase(g agentconfig.PrimaryGoal) (string, bool) {
	switch g {
	case agentconfig.GoalVendaDireta:
		return "Conduzir o lead até a compra durante a própria conversa", true
	case agentconfig.GoalQualificacao:
		return "Qualificar leads identificando necessidade, orçamento e momento de compra", true
	case agentconfig.GoalAgendamento:
		return "Agendar reuniões ou demonstrações com o time comercial", true
	case agentconfig.GoalCaptacao:
		return "Captar os dados de contato de leads interessados", true
	case agentconfig.GoalSuporte:
		return "Resolver dúvidas e problemas de clientes", true
	case agentconfig.GoalReativacao:
		return "Reativar clientes e leads que pararam de responder", true
	}
	return "", false
}

func lengthPhrase(l agentconfig.ResponseLength) (string, bool) {
	switch l {
	case agentconfig.LengthConciso:
		return "Respostas curtas e objetivas, de uma a duas frases.", true
	case agentconfig.LengthEquilibrado:
		return "Respostas de tamanho moderado, com o contexto necessário.", true
	case agentconfig.LengthDetalhado:
		return "Respostas completas e detalhadas, explicando cada ponto.", true
	}
	return "", false
}

func formalityPhrase(f agentconfig.FormalityLevel) (string, bool) {
	switch f {
	case agentconfig.FormalityInformal:
		return "Linguagem informal e descontraída, tratando o lead por você.", true
	case agentconfig.FormalityNeutro:
		return "Linguagem neutra, nem muito formal nem muito casual.", true
	case agentconfig.FormalityFormal:
		return "Linguagem formal e cortês, tratando o lead por senhor(a).", true
	}
	return "", false
}

func emojiDirective(useEmojis bool) string {
	if useEmojis {
		return "Use emojis com moderação para deixar a conversa mais leve."
	}
	return "Não use emojis."
}

func proactivityPhrase(p agentconfig.ProactivityLevel) (string, bool) {
	switch p {
	case agentconfig.ProactivityBaixo:
		return "Responda apenas ao que for perguntado, sem puxar novos assuntos.", true
	case agentconfig.ProactivityMedio:
		return "Sugira próximos passos quando fizer sentido, sem pressionar.", true
	case agentconfig.ProactivityAlto:
		return "Conduza ativamente a conversa, antecipe dúvidas e proponha ofertas.", true
	}
	return "", false
}

type trait int

const (
	traitEmpathy trait = iota
	traitAssertiveness
	traitPatience
	traitEnthusiasm
	traitUrgency
)

var allTraits = []trait{traitEmpathy, traitAssertiveness, traitPatience, traitEnthusiasm, traitUrgency}

// strongTrait is the score from which a trait gets its reinforcing directive
const strongTrait = 70

func (t trait) label() string {
	switch t {
	case traitEmpathy:
		return "Empatia"
	case traitAssertiveness:
		return "Assertividade"
	case traitPatience:
		return "Paciência"
	case traitEnthusiasm:
		return "Entusiasmo"
	case traitUrgency:
		return "Urgência"
	}
	return ""
}

func (t trait) directive() string {
	switch t {
	case traitEmpathy:
		return "Demonstre compreensão genuína antes de apresentar soluções."
	case traitAssertiveness:
		return "Seja firme ao recomendar e conduza o lead para a decisão."
	case traitPatience:
		return "Nunca apresse o lead; responda quantas dúvidas forem necessárias."
	case traitEnthusiasm:
		return "Transmita energia e empolgação ao falar dos produtos."
	case traitUrgency:
		return "Crie senso de urgência destacando prazos e condições limitadas."
	}
	return ""
}

func (t trait) score(p agentconfig.PersonalityTraits) int {
	switch t {
	case traitEmpathy:
		return p.Empathy
	case traitAssertiveness:
		return p.Assertiveness
	case traitPatience:
		return p.Patience
	case traitEnthusiasm:
		return p.Enthusiasm
	case traitUrgency:
		return p.Urgency
	}
	return 0
}

func funnelLabel(s agentconfig.FunnelStage) (string, bool) {
	switch s {
	case agentconfig.FunnelInitialContact:
		return "Primeiro contato", true
	case agentconfig.FunnelProductAware:
		return "Conhece o produto", true
	case agentconfig.FunnelPriceAware:
		return "Conhece o preço", true
	case agentconfig.FunnelObjectionRaised:
		return "Objeção levantada", true
	case agentconfig.FunnelCartAbandoned:
		return "Carrinho abandonado", true
	case agentconfig.FunnelNegotiation:
		return "Em negociação", true
	case agentconfig.FunnelWaitingDecision:
		return "Aguardando decisão", true
	}
	return "", false
}

func dayLabel(d agentconfig.Weekday) (string, bool) {
	switch d {
	case agentconfig.Monday:
		return "Segunda", true
	case agentconfig.Tuesday:
		return "Terça", true
	case agentconfig.Wednesday:
		return "Quarta", true
	case agentconfig.Thursday:
		return "Quinta", true
	case agentconfig.Friday:
		return "Sexta", true
	case agentconfig.Saturday:
		return "Sábado", true
	case agentconfig.Sunday:
		return "Domingo", true
	}
	return "", false
}

// orFallback returns phrase when ok, else the raw enum value
func orFallback[T ~string](phrase string, ok bool, raw T) string {
	if ok {
		return phrase
	}
	return string(raw)
}
