// Package llm wires chat-model provider implementations behind the
// port.ChatModel interface.
package llm

import "fmt"

// ModelCallError wraps a transport or provider failure from a model call.
type ModelCallError struct {
	Provider string
	Err      error
}

func (e *ModelCallError) Error() string {
	return fmt.Sprintf("%s model call failed: %v", e.Provider, e.Err)
}

func (e *ModelCallError) Unwrap() error {
	return e.Err
}
