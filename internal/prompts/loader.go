// Package prompts embeds the oracle prompt templates and resolves them by
// file and key. Each file ("scoring.json", "keywords.json") is a flat JSON
// object mapping a prompt key to template text with {{.Name}} placeholders.
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

// Parsed files are cached: the set of prompt files is fixed at compile
// time and every pipeline invocation reads from it.
var (
	filesMu sync.RWMutex
	files   = make(map[string]map[string]string)
)

// Get returns the prompt template stored under key in the named file, e.g.
// Get("scoring.json", "judgment_system").
func Get(filename, key string) (string, error) {
	templates, err := loadFile(filename)
	if err != nil {
		return "", err
	}

	template, ok := templates[key]
	if !ok {
		return "", fmt.Errorf("prompt key %q not found in %s", key, filename)
	}
	return template, nil
}

// MustGet is Get for prompts the pipeline cannot run without; a missing
// file or key panics.
func MustGet(filename, key string) string {
	template, err := Get(filename, key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return template
}

// Format substitutes {{.Name}} placeholders in a prompt template with the
// values in data. Placeholders without a matching entry are left intact.
func Format(template string, data map[string]string) string {
	pairs := make([]string, 0, len(data)*2)
	for key, value := range data {
		pairs = append(pairs, "{{."+key+"}}", value)
	}
	return strings.NewReplacer(pairs...).Replace(template)
}

// ClearCache drops all parsed prompt files. Only tests need it.
func ClearCache() {
	filesMu.Lock()
	files = make(map[string]map[string]string)
	filesMu.Unlock()
}

func loadFile(filename string) (map[string]string, error) {
	filesMu.RLock()
	templates, ok := files[filename]
	filesMu.RUnlock()
	if ok {
		return templates, nil
	}

	data, err := promptFiles.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read prompt file %s: %w", filename, err)
	}
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, fmt.Errorf("failed to parse prompt file %s: %w", filename, err)
	}

	filesMu.Lock()
	files[filename] = templates
	filesMu.Unlock()
	return templates, nil
}
