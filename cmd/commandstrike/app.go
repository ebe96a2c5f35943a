package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/strikelab/commandstrike/pkg/history"
	"github.com/strikelab/commandstrike/pkg/ollama"
	"go.uber.org/zap"
)

// app drives the line-oriented interaction loop. The loop itself is a thin
// shell: every decision about prompts, sanitization, and transport lives in
// the client packages.
type app struct {
	client  *ollama.Client
	log     *zap.Logger
	in      *bufio.Scanner
	out     io.Writer
	history []history.Item
}

func newApp(client *ollama.Client, logger *zap.Logger) *app {
	return &app{
		client: client,
		log:    logger,
		in:     bufio.NewScanner(os.Stdin),
		out:    os.Stdout,
	}
}

func (a *app) run(ctx context.Context, modelName string) error {
	fmt.Fprintln(a.out, headerStyle.Render("CommandStrike - CTF Assistant"))
	fmt.Fprintln(a.out, headerStyle.Render("================================"))

	fmt.Fprintln(a.out, "Checking if Ollama is running...")
	if !a.client.Available(ctx) {
		fmt.Fprintln(a.out, errorStyle.Render("Error: Ollama is not running. Please start Ollama first."))
		fmt.Fprintln(a.out, "You can start Ollama with: ollama serve")
		return nil
	}
	fmt.Fprintln(a.out, successStyle.Render("✓ Ollama is running"))

	if modelName == "" {
		var err error
		modelName, err = selectModel()
		if err != nil {
			return err
		}
	}

	if err := a.ensureModel(ctx, modelName); err != nil {
		return err
	}

	a.client.SetModel(modelName)
	fmt.Fprintln(a.out, successStyle.Render("Ready to assist with CTF challenges!"))

	for ctx.Err() == nil {
		fmt.Fprintf(a.out, "\n%s ", promptStyle.Render("CommandStrike>"))

		if !a.in.Scan() {
			break
		}

		input := strings.TrimSpace(a.in.Text())
		if input == "" {
			continue
		}

		switch input {
		case "exit", "quit":
			fmt.Fprintln(a.out, "Thank you for using CommandStrike!")
			return a.in.Err()
		case "help":
			printHelp(a.out)
		case "models":
			a.printModels(ctx)
		case "templates":
			printSecurityTemplates(a.out)
		case "switch", "model":
			a.switchModel(ctx)
		default:
			a.handleRequest(ctx, input)
		}
	}

	return a.in.Err()
}

// ensureModel validates that the model is installed, offering to pull it
// when it is not.
func (a *app) ensureModel(ctx context.Context, model string) error {
	fmt.Fprintf(a.out, "Checking if model '%s' is available...\n", model)

	if !a.client.ValidateModel(ctx, model) {
		fmt.Fprintf(a.out, "Model '%s' is not available locally.\n", model)

		pull, err := confirmPull(model)
		if err != nil {
			return err
		}

		if !pull {
			fmt.Fprintln(a.out, "Please select another model or pull it manually with:")
			fmt.Fprintf(a.out, "ollama pull %s\n", model)
			return fmt.Errorf("model %q not available", model)
		}

		ok, err := a.client.PullModel(ctx, model)
		if err != nil {
			return fmt.Errorf("pulling model %q: %w", model, err)
		}
		if !ok {
			return fmt.Errorf("model %q did not become available after pull", model)
		}

		fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("✓ Model '%s' pulled successfully", model)))
	}

	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("✓ Model '%s' is available", model)))
	return nil
}

// handleRequest synthesizes a command for a natural language request and
// offers to simulate, explain, or skip it.
func (a *app) handleRequest(ctx context.Context, input string) {
	start := time.Now()
	a.log.Debug("handling request", zap.String("input", input))
	fmt.Fprintln(a.out, "Generating command...")

	command, err := a.client.GenerateCommand(ctx, input, a.history)
	if err != nil {
		fmt.Fprintf(a.out, "%s: %v\n", errorStyle.Render("Error generating command"), err)
		return
	}

	fmt.Fprintf(a.out, "\n%s: %s\n", headerStyle.Render("Generated Command"), commandStyle.Render(command))
	fmt.Fprintf(a.out, "Generation time: %.2fs\n", time.Since(start).Seconds())

	action, err := selectAction()
	if err != nil {
		fmt.Fprintf(a.out, "%s: %v\n", errorStyle.Render("Error"), err)
		return
	}

	switch action {
	case actionSimulate:
		a.simulateAndInterpret(ctx, input, command)
	case actionExplain:
		a.explain(ctx, command)
	default:
		fmt.Fprintln(a.out, "Skipping to next request")
	}
}

// simulateAndInterpret runs the built-in execution simulation, records the
// interaction, and asks the model to interpret the simulated output.
// Commands are never actually executed.
func (a *app) simulateAndInterpret(ctx context.Context, input, command string) {
	fmt.Fprintln(a.out, simStyle.Render("Simulating command execution..."))

	output := simulateExecution(command)
	fmt.Fprintln(a.out, output)

	a.history = append(a.history, history.Item{
		Request: input,
		Command: command,
		Result:  output,
	})

	fmt.Fprintln(a.out, "\nInterpreting results...")

	interpretation, err := a.client.InterpretResult(ctx, output, a.history)
	if err != nil {
		fmt.Fprintf(a.out, "%s: %v\n", errorStyle.Render("Error interpreting results"), err)
		return
	}

	fmt.Fprintf(a.out, "\n%s\n%s\n", headerStyle.Render("Interpretation:"), interpretation)
}

// explain streams a long-form explanation of the command, printing fragments
// as they arrive.
func (a *app) explain(ctx context.Context, command string) {
	fmt.Fprintln(a.out, "Explaining command...")
	start := time.Now()

	session, err := a.client.ExplainCommand(ctx, command)
	if err != nil {
		fmt.Fprintf(a.out, "%s: %v\n", errorStyle.Render("Error"), err)
		return
	}

	fmt.Fprintf(a.out, "\n%s\n", headerStyle.Render("Explanation:"))

	for fragment := range session.Fragments {
		fmt.Fprint(a.out, fragment)
	}

	fmt.Fprintf(a.out, "\n\nExplanation time: %.2fs\n", time.Since(start).Seconds())
}

// switchModel re-runs model selection at runtime.
func (a *app) switchModel(ctx context.Context) {
	model, err := selectModel()
	if err != nil {
		fmt.Fprintf(a.out, "%s: %v\n", errorStyle.Render("Error"), err)
		return
	}

	if err := a.ensureModel(ctx, model); err != nil {
		fmt.Fprintf(a.out, "%s: %v\n", errorStyle.Render("Keeping current model"), err)
		return
	}

	a.client.SetModel(model)
	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf("Switched to model '%s'", model)))
}

// printModels lists the recommended catalog and the models installed on the
// service.
func (a *app) printModels(ctx context.Context) {
	fmt.Fprintf(a.out, "\n%s\n", sectionStyle.Render("Recommended Models:"))
	for _, m := range recommendedModels() {
		fmt.Fprintf(a.out, "- %s (%s) - %s\n",
			successStyle.Render(m.Name), subtleStyle.Render(m.Size), m.Description)
	}

	fmt.Fprintf(a.out, "\n%s\n", sectionStyle.Render("Installed Models:"))

	installed, err := a.client.Models(ctx)
	if err != nil {
		fmt.Fprintf(a.out, "%s: %v\n", errorStyle.Render("Error fetching models"), err)
		return
	}

	for _, name := range installed {
		fmt.Fprintf(a.out, "- %s\n", successStyle.Render(name))
	}
}

func printHelp(out io.Writer) {
	fmt.Fprintf(out, "\n%s\n", sectionStyle.Render("CommandStrike Commands:"))
	fmt.Fprintln(out, ruleStyle.Render("----------------------"))
	fmt.Fprintln(out, "- Enter a security request in natural language")
	fmt.Fprintf(out, "- %s - Switch to a different LLM model\n", successStyle.Render("switch"))
	fmt.Fprintf(out, "- %s - View available models\n", successStyle.Render("models"))
	fmt.Fprintf(out, "- %s - Show security command templates\n", successStyle.Render("templates"))
	fmt.Fprintf(out, "- %s - Show this help message\n", successStyle.Render("help"))
	fmt.Fprintf(out, "- %s - Exit CommandStrike\n", successStyle.Render("exit"))

	fmt.Fprintf(out, "\n%s\n", groupStyle.Render("Example Security Requests:"))
	fmt.Fprintln(out, "- Scan for open ports on the local network")
	fmt.Fprintln(out, "- Find files containing passwords in the current directory")
	fmt.Fprintln(out, "- Check for privilege escalation vulnerabilities")
	fmt.Fprintln(out, "- Perform a directory traversal test on a web server")
	fmt.Fprintln(out, "- Analyze network traffic for suspicious activity")
}
