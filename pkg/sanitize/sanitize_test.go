package sanitize_test

import (
	"testing"

	"github.com/strikelab/commandstrike/pkg/sanitize"
	"github.com/stretchr/testify/assert"
)

func TestCommand_FencedBlock(t *testing.T) {
	assert.Equal(t, "ls -la", sanitize.Command("```bash\nls -la\n```"))
	assert.Equal(t, "ls -la", sanitize.Command("```\nls -la\n```"))
	assert.Equal(t, "nmap -sV -p 1-1000 10.0.0.5", sanitize.Command("```sh\nnmap -sV -p 1-1000 10.0.0.5\n```"))
}

func TestCommand_InlineCode(t *testing.T) {
	assert.Equal(t, "ls -la", sanitize.Command("`ls -la`"))
}

func TestCommand_LanguagePrefix(t *testing.T) {
	assert.Equal(t, "echo hello", sanitize.Command("sh echo hello"))
	assert.Equal(t, "echo hello", sanitize.Command("bash echo hello"))
	assert.Equal(t, "echo hello", sanitize.Command("shell echo hello"))
}

func TestCommand_PrefixInsideFence(t *testing.T) {
	// The language tag can only be stripped once the fence is gone.
	assert.Equal(t, "echo hello", sanitize.Command("```\nbash echo hello\n```"))
}

func TestCommand_Whitespace(t *testing.T) {
	assert.Equal(t, "ls -la", sanitize.Command("  ls -la\n"))
	assert.Equal(t, "", sanitize.Command("   "))
}

func TestCommand_CleanInputUntouched(t *testing.T) {
	assert.Equal(t, "nmap -sn 192.168.1.0/24", sanitize.Command("nmap -sn 192.168.1.0/24"))
}

func TestCommand_Idempotent(t *testing.T) {
	inputs := []string{
		"```bash\nls -la\n```",
		"`ls -la`",
		"sh echo hello",
		"  hydra -l root -P rockyou.txt 10.0.0.5 ssh  ",
		"grep -r \"password\" .",
		"",
	}

	for _, in := range inputs {
		once := sanitize.Command(in)
		assert.Equal(t, once, sanitize.Command(once), "input %q", in)
	}
}
