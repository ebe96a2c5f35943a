// Package catalog lists models recommended for security work.
package catalog

// ModelInfo describes one recommended model.
type ModelInfo struct {
	Name        string
	Description string
	Size        string
}

// Recommended returns the models recommended for security tasks, in display
// order.
func Recommended() []ModelInfo {
	return []ModelInfo{
		{
			Name:        "gemma3:12b",
			Description: "Google's Gemma 3 12B model, good general performance for security tasks",
			Size:        "12B",
		},
		{
			Name:        "deepseek-coder:6.7b",
			Description: "Model focused on code analysis and generation, useful for exploit development",
			Size:        "6.7B",
		},
		{
			Name:        "deepseek-r1:8b",
			Description: "Lightweight yet powerful reasoning model for security analysis",
			Size:        "8B",
		},
		{
			Name:        "llama3:8b",
			Description: "Meta's Llama 3 8B model, good balance of performance and resource usage",
			Size:        "8B",
		},
		{
			Name:        "phi3:14b",
			Description: "Microsoft's Phi-3 large model, excellent for complex security reasoning",
			Size:        "14B",
		},
		{
			Name:        "mixtral:8x7b",
			Description: "Mistral AI's mixture of experts model, very strong on complex security tasks",
			Size:        "8x7B",
		},
	}
}
