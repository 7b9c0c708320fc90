package renderer

import (
	"bytes"
	"errors"
	"fmt"
	"text/template"

	"github.com/smartcontractkit/soroban-hostfn-renderer/chain/stellar/hostfn"
)

const (
	DefaultMaxLength = 40
	DefaultOmission  = "..."
)

// Message ids of the summary headlines.
const (
	MessageUploadWasm     = "operation.invoke.host.function.upload-wasm"
	MessageCreateContract = "operation.invoke.host.function.create-contract"
	MessageInvokeContract = "operation.invoke.host.function.invoke-contract"
)

// DefaultMessages are the built-in headline templates. Templates receive a MessageData.
var DefaultMessages = map[string]string{
	MessageUploadWasm:     "Upload contract code ({{.Type}})",
	MessageCreateContract: "Create contract ({{.Type}})",
	MessageInvokeContract: "Invoke contract ({{.Type}})",
}

// MessageData is passed to headline templates.
type MessageData struct {
	Type string
}

// Options configures how summaries are displayed.
type Options struct {
	// MaxLength is the longest a displayed value may be, omission included.
	MaxLength int
	// Omission replaces the cut off part of a long value.
	Omission string
	// Messages overrides headline templates by message id.
	Messages map[string]string
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{
		MaxLength: DefaultMaxLength,
		Omission:  DefaultOmission,
	}
}

func (o Options) validate() error {
	if o.MaxLength <= 0 {
		return fmt.Errorf("max length must be positive, got %d", o.MaxLength)
	}
	if len([]rune(o.Omission)) >= o.MaxLength {
		return errors.New("omission must be shorter than max length")
	}

	return nil
}

// messages compiles the headline templates, applying overrides on top of the defaults.
type messages map[string]*template.Template

func newMessages(overrides map[string]string) (messages, error) {
	m := make(messages, len(DefaultMessages))
	for id, text := range DefaultMessages {
		if o, ok := overrides[id]; ok {
			text = o
		}
		tmpl, err := template.New(id).Option("missingkey=error").Parse(text)
		if err != nil {
			return nil, fmt.Errorf("parse message %s: %w", id, err)
		}
		m[id] = tmpl
	}
	for id := range overrides {
		if _, ok := DefaultMessages[id]; !ok {
			return nil, fmt.Errorf("unknown message id %q", id)
		}
	}

	return m, nil
}

// headline returns the formatted headline of s, which is the bare type for calls without a
// dedicated message.
func (m messages) headline(s hostfn.Summary) (string, error) {
	var id string
	switch s.Branch {
	case hostfn.BranchUploadWasm:
		id = MessageUploadWasm
	case hostfn.BranchCreateContract:
		id = MessageCreateContract
	case hostfn.BranchInvokeContract:
		id = MessageInvokeContract
	case hostfn.BranchOther:
		return s.Type.String(), nil
	}

	var buf bytes.Buffer
	if err := m[id].Execute(&buf, MessageData{Type: s.Type.String()}); err != nil {
		return "", fmt.Errorf("format message %s: %w", id, err)
	}

	return buf.String(), nil
}
