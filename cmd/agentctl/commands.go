package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bytedance/sonic"

	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/agentconfig"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/export"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/prompt"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/core/schema"
	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/shared/utils"
)

// ValidateCmd checks an agent file and lists every error and warning.
type ValidateCmd struct {
	File   string `arg:"" help:"Agent file (.json, .yaml or .yml)." type:"existingfile"`
	Strict bool   `help:"Treat warnings as errors."`
}

func (c *ValidateCmd) Run(cli *CLI) error {
	agent, err := loadAgent(c.File)
	if err != nil {
		return err
	}

	result := agentconfig.Validate(agent)
	for _, issue := range result.Errors {
		fmt.Fprintf(cli.Out, "❌ %s [%s]\n", issue, issue.Code)
	}
	for _, issue := range result.Warnings {
		fmt.Fprintf(cli.Out, "⚠️ %s [%s]\n", issue, issue.Code)
	}

	if !result.Valid() {
		return fmt.Errorf("%s: %d error(s)", c.File, len(result.Errors))
	}
	if c.Strict && len(result.Warnings) > 0 {
		return fmt.Errorf("%s: %d warning(s)", c.File, len(result.Warnings))
	}
	fmt.Fprintf(cli.Out, "✅ %s is valid\n", c.File)
	return nil
}

// PromptCmd prints the compiled system prompt.
type PromptCmd struct {
	File  string `arg:"" help:"Agent file (.json, .yaml or .yml)." type:"existingfile"`
	Stage string `short:"s" help:"Append the instructions of this conversation stage."`
}

func (c *PromptCmd) Run(cli *CLI) error {
	agent, err := loadAgent(c.File)
	if err != nil {
		return err
	}

	out := prompt.Compile(agent)
	if c.Stage != "" {
		out, err = prompt.CompileForStage(agent, c.Stage)
		if err != nil {
			return err
		}
	}
	fmt.Fprintln(cli.Out, out)
	return nil
}

// ExportCmd converts an agent file into another format.
type ExportCmd struct {
	File   string `arg:"" help:"Agent file (.json, .yaml or .yml)." type:"existingfile"`
	Format string `short:"f" help:"Output format (json, yaml, excel, prompt)." default:"json"`
	Output string `short:"o" name:"out" help:"Output file (empty = stdout)." type:"path"`
}

func (c *ExportCmd) Run(cli *CLI) error {
	format, err := export.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	agent, err := loadAgent(c.File)
	if err != nil {
		return err
	}

	data, _, err := export.NewService().Export(agent, format)
	if err != nil {
		return err
	}

	if c.Output == "" {
		if format == export.FormatExcel {
			return fmt.Errorf("excel output needs --out")
		}
		_, err = cli.Out.Write(data)
		return err
	}
	if err := os.WriteFile(c.Output, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", c.Output, err)
	}
	utils.LogInfo("📦 Agent exported", map[string]interface{}{"file": c.Output, "format": format})
	return nil
}

// SchemaCmd prints the JSON Schema of the configuration.
type SchemaCmd struct {
	Actions bool `help:"Print the per-action config schemas instead."`
}

func (c *SchemaCmd) Run(cli *CLI) error {
	var v any = schema.AgentSchema()
	if c.Actions {
		v = schema.ActionConfigSchemas()
	}
	data, err := sonic.ConfigStd.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal schema: %w", err)
	}
	fmt.Fprintln(cli.Out, string(data))
	return nil
}

// DefaultsCmd prints the configuration a new agent starts from.
type DefaultsCmd struct {
	Format string `short:"f" help:"Output format (json, yaml)." default:"yaml"`
}

func (c *DefaultsCmd) Run(cli *CLI) error {
	format, err := export.ParseFormat(c.Format)
	if err != nil {
		return err
	}
	if format != export.FormatJSON && format != export.FormatYAML {
		return fmt.Errorf("defaults can only be printed as json or yaml")
	}

	agent := agentconfig.NewDefaultAgent("")
	strategy := agentconfig.DefaultFollowUpStrategy()
	traits := agentconfig.DefaultPersonalityTraits()
	agent.FollowUpStrategy = &strategy
	agent.PersonalityTraits = &traits

	return export.NewService().ExportToWriter(agent, format, cli.Out)
}

// loadAgent decodes a file, picking the format from its extension
func loadAgent(path string) (agentconfig.Agent, error) {
	format, err := export.ParseFormat(filepath.Ext(path))
	if err != nil {
		return agentconfig.Agent{}, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return agentconfig.Agent{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	agent, err := export.Decode(data, format)
	if err != nil {
		return agentconfig.Agent{}, fmt.Errorf("%s: %w", path, err)
	}
	utils.LogDebug("📄 Agent loaded", map[string]interface{}{"file": path, "agent_id": agent.ID})
	return agent, nil
}
