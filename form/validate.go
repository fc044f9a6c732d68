// Package form implements the definition pipeline: structural validation of
// stored documents, mapping questions to input controls, composing a
// presentable view, and aggregating submitted entries into response data.
package form

import (
	json "github.com/goccy/go-json"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/formlet/formlet/model"
)

// ErrInvalidDefinition marks a stored document that does not conform to the
// form schema. Nothing downstream of Validate ever sees such a document.
var ErrInvalidDefinition = errors.New("invalid form data")

// fieldRule pairs a top-level document field with its shape check.
// Adding a required field means adding one entry here.
type fieldRule struct {
	name  string
	check func(value any, present bool) error
}

var definitionRules = []fieldRule{
	{"title", requiredString},
	{"description", nullableString},
	{"form_content", questionSequence},
	{"style", styleObject},
}

var styleFields = []string{
	"theme",
	"h_font", "h_txtcolor", "h_cardcolor",
	"q_font", "q_txtcolor", "q_cardcolor",
}

// Validate decides whether an untrusted stored document is safe to treat as
// a FormDefinition. It is all-or-nothing: any failing field or question
// rejects the whole document. It never panics on malformed input, and every
// violation is reported at once.
func Validate(raw any) (def model.FormDefinition, err error) {
	doc, ok := raw.(map[string]any)
	if !ok || doc == nil {
		return def, errors.Wrap(ErrInvalidDefinition, "document is not an object")
	}

	var violations *multierror.Error
	for _, rule := range definitionRules {
		value, present := doc[rule.name]
		if ruleErr := rule.check(value, present); ruleErr != nil {
			violations = multierror.Append(violations, errors.Wrap(ruleErr, rule.name))
		}
	}
	if violations.ErrorOrNil() != nil {
		return def, errors.Wrap(ErrInvalidDefinition, violations.Error())
	}

	// The shape is vetted: a JSON round trip materializes the typed
	// definition. Anything the rules do not cover (say, a non-string
	// option) surfaces here and still rejects the document.
	buf, marshalErr := json.Marshal(doc)
	if marshalErr != nil {
		return def, errors.Wrap(ErrInvalidDefinition, marshalErr.Error())
	}
	if unmarshalErr := json.Unmarshal(buf, &def); unmarshalErr != nil {
		return def, errors.Wrap(ErrInvalidDefinition, unmarshalErr.Error())
	}
	return def, nil
}

func requiredString(value any, present bool) error {
	if !present {
		return errors.New("missing")
	}
	if _, ok := value.(string); !ok {
		return errors.New("must be a string")
	}
	return nil
}

func nullableString(value any, present bool) error {
	if !present {
		return errors.New("missing")
	}
	if value == nil {
		return nil
	}
	if _, ok := value.(string); !ok {
		return errors.New("must be a string or null")
	}
	return nil
}

func questionSequence(value any, present bool) error {
	if !present {
		return errors.New("missing")
	}
	questions, ok := value.([]any)
	if !ok {
		return errors.New("must be a sequence")
	}

	var violations *multierror.Error
	for i, element := range questions {
		question, ok := element.(map[string]any)
		if !ok {
			violations = multierror.Append(violations, errors.Errorf("[%d]: must be an object", i))
			continue
		}
		if _, ok := question["title"].(string); !ok {
			violations = multierror.Append(violations, errors.Errorf("[%d].title: must be a string", i))
		}
		typ, ok := question["type"].(string)
		if !ok || !model.QuestionType(typ).Known() {
			violations = multierror.Append(violations, errors.Errorf("[%d].type: unrecognized question type", i))
		}
	}
	return violations.ErrorOrNil()
}

func styleObject(value any, present bool) error {
	if !present {
		return errors.New("missing")
	}
	style, ok := value.(map[string]any)
	if !ok {
		return errors.New("must be an object")
	}

	var violations *multierror.Error
	for _, field := range styleFields {
		if _, ok := style[field].(string); !ok {
			violations = multierror.Append(violations, errors.Errorf("%s: must be a string", field))
		}
	}
	return violations.ErrorOrNil()
}
