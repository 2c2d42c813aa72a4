package aipim

import (
	"strings"

	"github.com/aipim/aipim/providers/ai"
	"github.com/aipim/aipim/providers/ai/anthropic"
	"github.com/aipim/aipim/providers/ai/deepseek"
	"github.com/aipim/aipim/providers/ai/gemini"
	"github.com/aipim/aipim/providers/ai/openai"
)

// registration maps a model-identifier prefix to the provider family that
// serves it. Lookup is a pure prefix match over this table; no fuzzy
// matching or normalization is applied.
type registration struct {
	prefix  string
	factory func() ai.Provider
}

// registry is populated once at init and read-only afterwards. Order
// matters: the first matching prefix wins.
var registry = []registration{
	{"gpt-", func() ai.Provider { return openai.New() }},
	{"chatgpt-", func() ai.Provider { return openai.New() }},
	{"o1-", func() ai.Provider { return openai.New() }},
	{"claude-", func() ai.Provider { return anthropic.New() }},
	{"gemini-", func() ai.Provider { return gemini.New() }},
	{"deepseek-", func() ai.Provider { return deepseek.New() }},
}

// resolveProvider returns a fresh provider instance for the given model
// identifier, or an unknown-model error when no registered prefix matches.
func resolveProvider(model string) (ai.Provider, error) {
	for _, reg := range registry {
		if strings.HasPrefix(model, reg.prefix) {
			return reg.factory(), nil
		}
	}
	return nil, ai.Errorf(ai.ErrorKindUnknownModel, "no provider registered for model %q", model)
}
