package prompt

import (
	"fmt"
	"strings"

	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/agentconfig"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/followup"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/stage"
)

// Section headers
const (
	HeaderIdentity     = "## Identidade"
	HeaderTraits       = "## Traços de Personalidade"
	HeaderCompany      = "## Contexto da Empresa"
	HeaderGoals        = "## Objetivos"
	HeaderStyle        = "## Estilo de Comunicação"
	HeaderBehavior     = "## Comportamento"
	HeaderMessages     = "## Mensagens Padrão"
	HeaderRules        = "## Regras de Negócio"
	HeaderCatalog      = "## Catálogo de Produtos"
	HeaderObjections   = "## Tratamento de Objeções"
	HeaderFollowUp     = "## Estratégia de Follow-up"
	HeaderHours        = "## Horário de Atendimento"
	HeaderCurrentStage = "## Estágio Atual da Conversa"
)

// Compile builds the system prompt for an agent. A non-empty SystemPrompt
// is returned verbatim and every other field is ignored.
func Compile(agent agentconfig.Agent) string {
	if agent.SystemPrompt != "" {
		return agent.SystemPrompt
	}

	var sb strings.Builder
	writeIdentity(&sb, agent)
	writeTraits(&sb, agent.PersonalityTraits)
	writeCompany(&sb, agent)
	writeGoals(&sb, agent)
	writeStyle(&sb, agent)
	writeBehavior(&sb, agent)
	writeMessages(&sb, agent)
	writeRules(&sb, agent)
	writeCatalog(&sb, agent.Products)
	writeObjections(&sb, agent.ObjectionRules)
	writeFollowUp(&sb, agent.FollowUpStrategy)
	writeHours(&sb, agent)

	return strings.TrimSpace(sb.String())
}

// CompileForStage compiles the prompt and appends the instructions of the
// stage the lead is in. Stage instructions are added even under an override.
func CompileForStage(agent agentconfig.Agent, stageID string) (string, error) {
	current, ok := agentconfig.StageByID(agent.ConversationStages, stageID)
	if !ok {
		return "", fmt.Errorf("%w: %s", stage.ErrStageNotFound, stageID)
	}

	var sb strings.Builder
	sb.WriteString(Compile(agent))
	sb.WriteString("\n\n")
	sb.WriteString(HeaderCurrentStage + "\n")
	sb.WriteString(fmt.Sprintf("Estágio: %s\n", current.Name))
	if current.Description != "" {
		sb.WriteString(fmt.Sprintf("Objetivo do estágio: %s\n", current.Description))
	}
	if current.Instructions != "" {
		sb.WriteString(fmt.Sprintf("Instruções:\n%s\n", current.Instructions))
	}
	if current.Settings.AllowHumanHandoff && agent.HandoffContact != "" {
		sb.WriteString(fmt.Sprintf("Neste estágio você pode transferir para um humano: %s\n", agent.HandoffContact))
	}
	return strings.TrimSpace(sb.String()), nil
}

func section(sb *strings.Builder, header string) {
	if sb.Len() > 0 {
		sb.WriteString("\n")
	}
	sb.WriteString(header + "\n")
}

func writeIdentity(sb *strings.Builder, a agentconfig.Agent) {
	section(sb, HeaderIdentity)

	name := a.Name
	if name == "" {
		name = "Assistente de Vendas"
	}
	sb.WriteString(fmt.Sprintf("Você é %s, um agente de vendas.\n", name))

	emoji, persona, ok := personaPhrase(a.Persona)
	if ok {
		sb.WriteString(fmt.Sprintf("Persona: %s %s\n", emoji, persona))
	} else if a.Persona != "" {
		sb.WriteString(fmt.Sprintf("Persona: %s\n", a.Persona))
	}

	emoji, tone, ok := tonePhrase(a.VoiceTone)
	if ok {
		sb.WriteString(fmt.Sprintf("Tom de voz: %s %s\n", emoji, tone))
	} else if a.VoiceTone != "" {
		sb.WriteString(fmt.Sprintf("Tom de voz: %s\n", a.VoiceTone))
	}

	if a.Language != "" {
		sb.WriteString(fmt.Sprintf("Idioma: %s\n", languageLabel(a.Language)))
	}
}

func writeTraits(sb *strings.Builder, traits *agentconfig.PersonalityTraits) {
	if traits == nil {
		return
	}
	section(sb, HeaderTraits)
	for _, t := range allTraits {
		score := t.score(*traits)
		sb.WriteString(fmt.Sprintf("- %s: %d/100", t.label(), score))
		if score >= strongTrait {
			sb.WriteString(" " + t.directive())
		}
		sb.WriteString("\n")
	}
}

func writeCompany(sb *strings.Builder, a agentconfig.Agent) {
	lines := nonEmpty(
		labeled("Empresa", a.CompanyName),
		labeled("Segmento", a.Industry),
		labeled("Sobre a empresa", a.CompanyDescription),
		labeled("Público-alvo", a.TargetAudience),
		labeled("Diferenciais", a.Differentiators),
	)
	if len(lines) == 0 {
		return
	}
	section(sb, HeaderCompany)
	writeLines(sb, lines)
}

func writeGoals(sb *strings.Builder, a agentconfig.Agent) {
	var primary string
	if a.PrimaryGoal != "" {
		phrase, ok := goalPhrase(a.PrimaryGoal)
		primary = orFallback(phrase, ok, a.PrimaryGoal)
	}
	lines := nonEmpty(
		labeled("Objetivo principal", primary),
		labeled("Objetivo secundário", a.SecondaryGoal),
		labeled("Métrica de sucesso", a.SuccessMetric),
	)
	if len(lines) == 0 {
		return
	}
	section(sb, HeaderGoals)
	writeLines(sb, lines)
}

func writeStyle(sb *strings.Builder, a agentconfig.Agent) {
	section(sb, HeaderStyle)
	if phrase, ok := lengthPhrase(a.ResponseLength); ok {
		sb.WriteString("- " + phrase + "\n")
	}
	if phrase, ok := formalityPhrase(a.FormalityLevel); ok {
		sb.WriteString("- " + phrase + "\n")
	}
	sb.WriteString("- " + emojiDirective(a.UseEmojis) + "\n")
}

func writeBehavior(sb *strings.Builder, a agentconfig.Agent) {
	phrase, ok := proactivityPhrase(a.ProactivityLevel)
	if !ok {
		return
	}
	section(sb, HeaderBehavior)
	sb.WriteString("- " + phrase + "\n")
}

func writeMessages(sb *strings.Builder, a agentconfig.Agent) {
	lines := nonEmpty(
		quoted("Saudação", a.GreetingMessage),
		quoted("Despedida", a.FarewellMessage),
		quoted("Fora do horário", a.AwayMessage),
	)
	if len(lines) == 0 {
		return
	}
	section(sb, HeaderMessages)
	writeLines(sb, lines)
}

func writeRules(sb *strings.Builder, a agentconfig.Agent) {
	var lines []string
	if words := nonEmpty(a.ForbiddenWords...); len(words) > 0 {
		lines = append(lines, "- Nunca use estas palavras: "+strings.Join(words, ", "))
	}
	if a.DiscountLimit > 0 {
		lines = append(lines, fmt.Sprintf("- Desconto máximo permitido: %d%%", a.DiscountLimit))
	}
	if a.HandoffContact != "" {
		lines = append(lines, "- Quando não souber responder ou o lead pedir um humano, transfira para: "+a.HandoffContact)
	}
	if len(lines) == 0 {
		return
	}
	section(sb, HeaderRules)
	writeLines(sb, lines)
}

func writeCatalog(sb *strings.Builder, products []agentconfig.Product) {
	if len(products) == 0 {
		return
	}
	section(sb, HeaderCatalog)
	for _, p := range products {
		sb.WriteString(fmt.Sprintf("### %s (%s)\n", p.Name, FormatPrice(p.Price)))
		if p.Description != "" {
			sb.WriteString(p.Description + "\n")
		}
		if p.CheckoutLink != "" {
			sb.WriteString(fmt.Sprintf("Link de compra: %s\n", p.CheckoutLink))
		}
		if len(p.FAQ) > 0 {
			sb.WriteString("Perguntas frequentes:\n")
			for _, faq := range p.FAQ {
				sb.WriteString(fmt.Sprintf("- P: %s\n  R: %s\n", faq.Question, faq.Answer))
			}
		}

		docs, materials := p.KnowledgeBase, p.LeadMaterials
		if legacyDocs, legacyMaterials := p.SplitAttachments(); len(legacyDocs)+len(legacyMaterials) > 0 {
			docs = append(append([]agentconfig.KnowledgeDocument{}, docs...), legacyDocs...)
			materials = append(append([]agentconfig.LeadMaterial{}, materials...), legacyMaterials...)
		}
		if len(materials) > 0 {
			sb.WriteString("Materiais que podem ser enviados ao lead:\n")
			for _, m := range materials {
				sb.WriteString(fmt.Sprintf("- %s (%s): %s\n", m.Name, m.Type, m.URL))
			}
		}
		if len(docs) > 0 {
			names := make([]string, len(docs))
			for i, d := range docs {
				names[i] = d.Name
			}
			sb.WriteString(fmt.Sprintf("Base de conhecimento interna (consulte, nunca envie ao lead): %s\n", strings.Join(names, ", ")))
		}
	}
}

func writeObjections(sb *strings.Builder, rules []agentconfig.ObjectionRule) {
	if len(rules) == 0 {
		return
	}
	section(sb, HeaderObjections)
	for i, r := range rules {
		sb.WriteString(fmt.Sprintf("%d. Se o lead disser \"%s\": %s\n", i+1, r.Trigger, r.Action))
	}
}

func writeFollowUp(sb *strings.Builder, strategy *agentconfig.FollowUpStrategy) {
	if strategy == nil || !strategy.Enabled {
		return
	}
	active := strategy.ActiveTemplates()
	if len(active) == 0 {
		return
	}

	section(sb, HeaderFollowUp)
	sb.WriteString(fmt.Sprintf("- Máximo de %d mensagens de follow-up por dia.\n", strategy.MaxDailyMessages))
	if strategy.RespectQuietHours {
		sb.WriteString(fmt.Sprintf("- Não envie mensagens entre %s e %s.\n", strategy.QuietHoursStart, strategy.QuietHoursEnd))
	}
	if strategy.StopOnNegativeResponse {
		sb.WriteString("- Pare os follow-ups se o lead responder negativamente.\n")
	}
	if strategy.SmartTiming {
		sb.WriteString("- Ajuste o horário de envio ao momento em que o lead costuma responder.\n")
	}

	groups := followup.ByStage(active)
	for _, funnel := range agentconfig.FunnelStage("").Values() {
		templates := groups[funnel]
		if len(templates) == 0 {
			continue
		}
		label, _ := funnelLabel(funnel)
		sb.WriteString(fmt.Sprintf("%s:\n", label))
		for _, t := range templates {
			sb.WriteString(fmt.Sprintf("  #%d (após %s): \"%s\"\n", t.Attempt, HumanizeDelay(t.DelayMinutes), t.Message))
		}
	}
	for _, t := range active {
		if !t.Stage.IsValid() {
			sb.WriteString(fmt.Sprintf("%s: #%d (após %s): \"%s\"\n", t.Stage, t.Attempt, HumanizeDelay(t.DelayMinutes), t.Message))
		}
	}
}

func writeHours(sb *strings.Builder, a agentconfig.Agent) {
	hours := a.BusinessHours
	if !hours.Enabled {
		return
	}
	section(sb, HeaderHours)
	if hours.Timezone != "" {
		sb.WriteString(fmt.Sprintf("Fuso horário: %s\n", hours.Timezone))
	}
	for _, day := range agentconfig.Weekday("").Values() {
		schedule, ok := hours.Schedule[day]
		if !ok || !schedule.Active {
			continue
		}
		label, _ := dayLabel(day)
		sb.WriteString(fmt.Sprintf("- %s: %s às %s\n", label, schedule.Start, schedule.End))
	}
	sb.WriteString("Fora desse horário, responda com a mensagem de ausência.\n")
}

func labeled(label, value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return fmt.Sprintf("- %s: %s", label, value)
}

func quoted(label, value string) string {
	if strings.TrimSpace(value) == "" {
		return ""
	}
	return fmt.Sprintf("- %s: \"%s\"", label, value)
}

func nonEmpty(values ...string) []string {
	var out []string
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			out = append(out, v)
		}
	}
	return out
}

func writeLines(sb *strings.Builder, lines []string) {
	for _, l := range lines {
		sb.WriteString(l + "\n")
	}
}
