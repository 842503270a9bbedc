package llm

import (
	"fmt"

	"folio/internal/config"
	"folio/internal/port"
)

// ProviderFactory is a function that creates a ChatModel from a model config.
type ProviderFactory func(cfg *config.ModelConfig) (port.ChatModel, error)

// registry of chat-model provider factories, populated explicitly via
// Register at startup.
var providers = map[string]ProviderFactory{}

// Register registers a chat-model provider factory by name.
func Register(name string, factory ProviderFactory) {
	providers[name] = factory
}

// New creates a ChatModel from the model config using the registered factory.
func New(cfg *config.ModelConfig) (port.ChatModel, error) {
	factory, ok := providers[cfg.Provider]
	if !ok {
		return nil, fmt.Errorf("unknown model provider: %s", cfg.Provider)
	}
	return factory(cfg)
}
