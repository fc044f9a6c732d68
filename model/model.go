package model

import "time"

// QuestionType identifies the kind of input control a question renders to.
// The string values are the wire labels stored inside form documents.
type QuestionType string

const (
	ShortText   QuestionType = "Short Text"
	LongText    QuestionType = "Long Text"
	ComboBox    QuestionType = "Combo Box"
	MultiSelect QuestionType = "Multi Select"
	MultiChoice QuestionType = "Multi Choice"
	RadioGroup  QuestionType = "Radio Group"
	Slider      QuestionType = "Slider"
)

var questionTypes = []QuestionType{
	ShortText,
	LongText,
	ComboBox,
	MultiSelect,
	MultiChoice,
	RadioGroup,
	Slider,
}

// QuestionTypes returns the closed set of recognized variants, in a stable order.
func QuestionTypes() []QuestionType {
	types := make([]QuestionType, len(questionTypes))
	copy(types, questionTypes)
	return types
}

// Known reports whether t is a member of the enumeration.
func (t QuestionType) Known() bool {
	for _, known := range questionTypes {
		if t == known {
			return true
		}
	}
	return false
}

// HasOptions reports whether the variant carries an option list.
func (t QuestionType) HasOptions() bool {
	switch t {
	case ComboBox, MultiSelect, MultiChoice, RadioGroup:
		return true
	}
	return false
}

// Question is one field of a form. Index is informational: the order of the
// form_content sequence governs rendering, end to end.
type Question struct {
	Index       int          `json:"index"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Type        QuestionType `json:"type"`
	Options     []string     `json:"options,omitempty"`
}

// Style carries presentation attributes only. It never affects data
// correctness; the validator just requires all seven fields to be strings.
type Style struct {
	Theme      string `json:"theme"`
	HFont      string `json:"h_font"`
	HTxtColor  string `json:"h_txtcolor"`
	HCardColor string `json:"h_cardcolor"`
	QFont      string `json:"q_font"`
	QTxtColor  string `json:"q_txtcolor"`
	QCardColor string `json:"q_cardcolor"`
}

// FormDefinition is the designer-authored structure of a form, independent of
// any response.
type FormDefinition struct {
	Title           string     `json:"title"`
	Description     *string    `json:"description"`
	Link            *string    `json:"link,omitempty"`
	LinkDescription *string    `json:"link_description,omitempty"`
	FormContent     []Question `json:"form_content"`
	Style           Style      `json:"style"`
}

// FormRecord is a stored form: an opaque identifier, the bcrypt hash of the
// owner's access password, and the definition as an untyped document.
type FormRecord struct {
	ID           string         `json:"id"`
	PasswordHash string         `json:"-"`
	CreatedAt    time.Time      `json:"createdAt"`
	Data         FormDefinition `json:"data"`
}

// ResponseRecord is one respondent's submitted answers. Immutable once
// created; removed only by cascading form deletion.
type ResponseRecord struct {
	ID        string       `json:"id"`
	FormID    string       `json:"formId"`
	CreatedAt time.Time    `json:"createdAt"`
	Data      ResponseData `json:"data"`
}

// ResponseData maps a question key to the submitted value(s).
type ResponseData map[string]Value
