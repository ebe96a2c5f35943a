package main

import "fmt"

// simulateExecution produces the canned result used in place of actually
// running a command. Commands are never executed; the simulation keeps the
// interpret step and the history record exercisable without side effects.
func simulateExecution(command string) string {
	return fmt.Sprintf(
		"Command '%s' executed successfully.\nThis is simulated output - in a real implementation, the command would be executed with proper safeguards.",
		command,
	)
}
