package form

import "github.com/formlet/formlet/model"

// ControlKind names the input control a question maps to.
type ControlKind string

const (
	ControlText          ControlKind = "text"
	ControlTextArea      ControlKind = "textarea"
	ControlSelect        ControlKind = "select"
	ControlSelectMulti   ControlKind = "select-multiple"
	ControlCheckboxGroup ControlKind = "checkbox-group"
	ControlRadioGroup    ControlKind = "radio-group"
	ControlRange         ControlKind = "range"
	ControlNone          ControlKind = "none"
)

// Control describes one input control. Key is the submission key: for group
// controls every option shares it, so repeated entries under one key are how
// multiple selections surface in a submission.
type Control struct {
	Kind     ControlKind `json:"kind"`
	Key      string      `json:"key"`
	Options  []string    `json:"options,omitempty"`
	Multiple bool        `json:"multiple,omitempty"`
}

// BuildControl maps a question to its control description. It is total over
// the question-type enumeration: an unrecognized variant yields ControlNone,
// and an options-bearing variant with no options yields a control with zero
// choices, never a failure.
func BuildControl(q model.Question) Control {
	switch q.Type {
	case model.ShortText:
		return Control{Kind: ControlText, Key: q.Title}
	case model.LongText:
		return Control{Kind: ControlTextArea, Key: q.Title}
	case model.ComboBox:
		return Control{Kind: ControlSelect, Key: q.Title, Options: q.Options}
	case model.MultiSelect:
		return Control{Kind: ControlSelectMulti, Key: q.Title, Options: q.Options, Multiple: true}
	case model.MultiChoice:
		return Control{Kind: ControlCheckboxGroup, Key: q.Title, Options: q.Options, Multiple: true}
	case model.RadioGroup:
		return Control{Kind: ControlRadioGroup, Key: q.Title, Options: q.Options}
	case model.Slider:
		return Control{Kind: ControlRange, Key: q.Title}
	default:
		return Control{Kind: ControlNone, Key: q.Title}
	}
}
