package i18n

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// TextKind tags a Text value.
type TextKind int

const (
	// KindAuto marks external data that could not be tagged.
	KindAuto TextKind = iota
	KindKey
	KindLiteral
)

// Text is either a translation key or literal, already-translated text.
// Fallback is shown when a key does not resolve.
type Text struct {
	Kind     TextKind
	Value    string
	Fallback string
}

// Key tags v as a translation key.
func Key(v string) Text { return Text{Kind: KindKey, Value: v} }

// Literal tags v as literal text.
func Literal(v string) Text { return Text{Kind: KindLiteral, Value: v} }

// Auto wraps untagged input.
func Auto(v string) Text { return Text{Kind: KindAuto, Value: v} }

// Or sets the fallback shown for an unresolved key.
func (t Text) Or(fallback string) Text {
	t.Fallback = fallback
	return t
}

// IsZero reports whether the text is empty.
func (t Text) IsZero() bool { return t.Value == "" && t.Fallback == "" }

// UnmarshalYAML accepts a plain scalar (auto), {key: ..., fallback: ...} or
// {text: ...}.
func (t *Text) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind == yaml.ScalarNode {
		*t = Auto(node.Value)
		return nil
	}
	var raw struct {
		Key      string `yaml:"key"`
		Text     string `yaml:"text"`
		Fallback string `yaml:"fallback"`
	}
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("decode text: %w", err)
	}
	switch {
	case raw.Key != "" && raw.Text != "":
		return fmt.Errorf("text at line %d: key and text are exclusive", node.Line)
	case raw.Key != "":
		*t = Key(raw.Key).Or(raw.Fallback)
	default:
		*t = Literal(raw.Text)
	}
	return nil
}
