// Package prompts provides the embedded LLM prompt templates used by the
// generative stages. Each stage keeps its prompts in a JSON file keyed by
// prompt name; placeholders use the {{.Key}} form.
package prompts

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed *.json
var promptFiles embed.FS

var (
	parseOnce sync.Once
	library   map[string]map[string]string
	parseErr  error
)

// parseAll decodes every embedded prompt file on first use. The files are
// compiled into the binary, so a parse failure is a build defect and is
// surfaced on every subsequent Get.
func parseAll() {
	library = make(map[string]map[string]string)

	entries, err := promptFiles.ReadDir(".")
	if err != nil {
		parseErr = fmt.Errorf("failed to list prompt files: %w", err)
		return
	}

	for _, entry := range entries {
		data, err := promptFiles.ReadFile(entry.Name())
		if err != nil {
			parseErr = fmt.Errorf("failed to read prompt file %s: %w", entry.Name(), err)
			return
		}
		var prompts map[string]string
		if err := json.Unmarshal(data, &prompts); err != nil {
			parseErr = fmt.Errorf("failed to parse prompt file %s: %w", entry.Name(), err)
			return
		}
		library[entry.Name()] = prompts
	}
}

// Get retrieves a prompt template by filename (without path, e.g.
// "profiling.json") and key.
func Get(filename, key string) (string, error) {
	parseOnce.Do(parseAll)
	if parseErr != nil {
		return "", parseErr
	}

	prompts, ok := library[filename]
	if !ok {
		return "", fmt.Errorf("prompt file %s not found", filename)
	}
	prompt, ok := prompts[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return prompt, nil
}

// MustGet retrieves a prompt template, panicking when it does not exist.
// The generative stages call this with compile-time constant names.
func MustGet(filename, key string) string {
	prompt, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Format substitutes {{.Key}} placeholders with values from data. Unknown
// placeholders are left intact so a malformed call site is visible in the
// rendered prompt.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		result = strings.ReplaceAll(result, "{{."+key+"}}", value)
	}
	return result
}
