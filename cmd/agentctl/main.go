// Command agentctl validates, compiles and converts agent configuration files.
//
// Usage:
//
//	agentctl validate agent.yaml
//	agentctl prompt agent.json --stage stage_closing
//	agentctl export agent.yaml --format excel --out agent.xlsx
//	agentctl schema > agent.schema.json
package main

import (
	"io"
	"os"

	"github.com/alecthomas/kong"

	"github.com/MuhamadAgungGumelar/sales-agent-configurator/internal/shared/utils"
)

// CLI defines the command-line interface.
type CLI struct {
	Validate ValidateCmd `cmd:"" help:"Validate an agent configuration file."`
	Prompt   PromptCmd   `cmd:"" help:"Print the compiled system prompt of an agent."`
	Export   ExportCmd   `cmd:"" help:"Convert an agent to json, yaml, excel or prompt."`
	Schema   SchemaCmd   `cmd:"" help:"Print the JSON Schema of the agent configuration."`
	Defaults DefaultsCmd `cmd:"" help:"Print the default agent configuration."`

	LogLevel string `help:"Log level (debug, info, warn, error)." default:"warn"`

	Out io.Writer `kong:"-"`
}

func main() {
	cli := CLI{Out: os.Stdout}
	ctx := kong.Parse(&cli,
		kong.Name("agentctl"),
		kong.Description("Sales agent configuration toolkit"),
		kong.UsageOnError(),
	)

	utils.InitLogger(cli.LogLevel, "development")

	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
