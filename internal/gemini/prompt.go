package gemini

import (
	"fmt"
	"strings"

	"github.com/ryanfowler/huh/internal/history"
)

// Sampling presets per workflow: analysis wants focused, deterministic
// output; file generation and free queries allow a little more latitude.
var (
	AnalysisConfig = GenerationConfig{Temperature: 0.1, MaxOutputTokens: 512, TopP: 0.8, TopK: 10}
	QueryConfig    = GenerationConfig{Temperature: 0.3, MaxOutputTokens: 1024, TopP: 0.9, TopK: 20}
	WriteConfig    = GenerationConfig{Temperature: 0.2, MaxOutputTokens: 2048, TopP: 0.9, TopK: 20}
)

// AnalysisPrompt builds the prompt for analyzing the most recent shell
// command. Earlier entries provide context; only the immediately preceding
// command is included, and only when there is exactly one.
func AnalysisPrompt(entries []history.Entry) string {
	var sb strings.Builder
	sb.WriteString("Analyze the last shell command only. Be concise and direct.\n\n")

	if len(entries) > 0 {
		last := entries[len(entries)-1]
		if len(entries) == 2 {
			fmt.Fprintf(&sb, "Previous: %s\n", entries[0].Command)
		}
		fmt.Fprintf(&sb, "Command: %s\nOutput: %s\n\n", last.Command, last.Output)
	}

	sb.WriteString("Provide:\n" +
		"1. Brief analysis (1-2 sentences)\n" +
		"2. Next steps (max 3 numbered items)\n" +
		"3. If typo/error, suggest fix as: Did you mean: `correct_command`\n\n" +
		"Be concise.")
	return sb.String()
}

// QueryPrompt builds the prompt for a free-form question. The length
// instruction, if non-empty, steers how detailed the answer should be.
func QueryPrompt(query, lengthInstruction string) string {
	var sb strings.Builder
	sb.WriteString("You are a helpful assistant. ")
	if lengthInstruction != "" {
		sb.WriteString(lengthInstruction)
		sb.WriteString(" ")
	}
	sb.WriteString("Please answer the following query:\n\n")
	sb.WriteString(query)
	return sb.String()
}

// CreateFilePrompt builds the prompt for generating a new file from
// scratch.
func CreateFilePrompt(path, instructions string) string {
	return fmt.Sprintf("You are a helpful file creator. I need you to create a new file based on my instructions.\n\n"+
		"File path: %s\n\n"+
		"Instructions: %s\n\n"+
		"Please provide the complete file content that should be written to this file. "+
		"Only output the file content, no explanations or markdown formatting.",
		path, instructions)
}

// EditFilePrompt builds the prompt for rewriting an existing file.
func EditFilePrompt(path, current, instructions string) string {
	return fmt.Sprintf("You are a helpful file editor. I need you to edit the following file based on my instructions.\n\n"+
		"File path: %s\n\n"+
		"Current file content:\n```\n%s\n```\n\n"+
		"Instructions: %s\n\n"+
		"Please provide the complete updated file content. "+
		"Only output the file content, no explanations or markdown formatting.",
		path, current, instructions)
}
