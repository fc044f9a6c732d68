package form

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/formlet/formlet/model"
)

// validDocument builds a well-formed stored document the way it comes out of
// the database: maps and slices, not typed structs.
func validDocument() map[string]any {
	return map[string]any{
		"title":       "Customer Survey",
		"description": "Tell us how we did.",
		"form_content": []any{
			map[string]any{
				"index": float64(0),
				"title": "Your name",
				"type":  "Short Text",
			},
			map[string]any{
				"index":   float64(1),
				"title":   "Satisfaction",
				"type":    "Radio Group",
				"options": []any{"Yes", "No"},
			},
		},
		"style": map[string]any{
			"theme":       "light",
			"h_font":      "serif",
			"h_txtcolor":  "#111111",
			"h_cardcolor": "#ffffff",
			"q_font":      "sans-serif",
			"q_txtcolor":  "#222222",
			"q_cardcolor": "#fafafa",
		},
	}
}

func TestValidate_WellFormedDocument(t *testing.T) {
	def, err := Validate(validDocument())
	require.NoError(t, err)

	assert.Equal(t, "Customer Survey", def.Title)
	require.NotNil(t, def.Description)
	assert.Equal(t, "Tell us how we did.", *def.Description)
	require.Len(t, def.FormContent, 2)
	assert.Equal(t, model.ShortText, def.FormContent[0].Type)
	assert.Equal(t, model.RadioGroup, def.FormContent[1].Type)
	assert.Equal(t, []string{"Yes", "No"}, def.FormContent[1].Options)
	assert.Equal(t, "light", def.Style.Theme)
}

func TestValidate_RoundTripPreservesDefinition(t *testing.T) {
	desc := "A longer description"
	link := "https://example.com"
	def := model.FormDefinition{
		Title:       "Round Trip",
		Description: &desc,
		Link:        &link,
		FormContent: []model.Question{
			{Index: 0, Title: "First", Type: model.LongText},
			{Index: 1, Title: "Second", Type: model.MultiChoice, Options: []string{"A", "B", "C"}},
			{Index: 2, Title: "Third", Type: model.Slider},
		},
		Style: model.Style{
			Theme: "dark",
			HFont: "serif", HTxtColor: "#fff", HCardColor: "#000",
			QFont: "mono", QTxtColor: "#eee", QCardColor: "#111",
		},
	}

	buf, err := json.Marshal(def)
	require.NoError(t, err)
	var raw any
	require.NoError(t, json.Unmarshal(buf, &raw))

	got, err := Validate(raw)
	require.NoError(t, err)
	assert.Equal(t, def, got)
}

func TestValidate_RejectsNonObject(t *testing.T) {
	for _, raw := range []any{nil, "a string", 42.0, []any{"not", "an", "object"}} {
		_, err := Validate(raw)
		assert.ErrorIs(t, err, ErrInvalidDefinition, "raw = %v", raw)
	}
}

func TestValidate_RejectsMissingTitle(t *testing.T) {
	doc := validDocument()
	delete(doc, "title")

	_, err := Validate(doc)
	assert.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestValidate_RejectsNonStringTitle(t *testing.T) {
	doc := validDocument()
	doc["title"] = 7.0

	_, err := Validate(doc)
	assert.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestValidate_AcceptsNullDescription(t *testing.T) {
	doc := validDocument()
	doc["description"] = nil

	def, err := Validate(doc)
	require.NoError(t, err)
	assert.Nil(t, def.Description)
}

func TestValidate_RejectsEachMissingStyleField(t *testing.T) {
	for _, field := range styleFields {
		doc := validDocument()
		delete(doc["style"].(map[string]any), field)

		_, err := Validate(doc)
		assert.ErrorIs(t, err, ErrInvalidDefinition, "missing style.%s", field)
	}
}

func TestValidate_RejectsNonStringStyleField(t *testing.T) {
	doc := validDocument()
	doc["style"].(map[string]any)["q_font"] = 12.0

	_, err := Validate(doc)
	assert.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestValidate_RejectsUnrecognizedQuestionType(t *testing.T) {
	doc := validDocument()
	content := doc["form_content"].([]any)
	content[1].(map[string]any)["type"] = "Date Picker"

	_, err := Validate(doc)
	assert.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestValidate_RejectsQuestionWithoutTitle(t *testing.T) {
	doc := validDocument()
	content := doc["form_content"].([]any)
	delete(content[0].(map[string]any), "title")

	_, err := Validate(doc)
	assert.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestValidate_RejectsNonObjectQuestion(t *testing.T) {
	doc := validDocument()
	doc["form_content"] = []any{"not a question"}

	_, err := Validate(doc)
	assert.ErrorIs(t, err, ErrInvalidDefinition)
}

func TestValidate_ReportsAllViolationsAtOnce(t *testing.T) {
	doc := validDocument()
	doc["title"] = nil
	delete(doc["style"].(map[string]any), "theme")

	_, err := Validate(doc)
	require.ErrorIs(t, err, ErrInvalidDefinition)
	assert.Contains(t, err.Error(), "title")
	assert.Contains(t, err.Error(), "theme")
}

func TestValidate_PreservesQuestionOrder(t *testing.T) {
	doc := validDocument()
	doc["form_content"] = []any{
		map[string]any{"index": float64(2), "title": "c", "type": "Slider"},
		map[string]any{"index": float64(0), "title": "a", "type": "Short Text"},
		map[string]any{"index": float64(1), "title": "b", "type": "Long Text"},
	}

	def, err := Validate(doc)
	require.NoError(t, err)

	titles := make([]string, 0, len(def.FormContent))
	for _, q := range def.FormContent {
		titles = append(titles, q.Title)
	}
	// sequence order governs, not the index values
	assert.Equal(t, []string{"c", "a", "b"}, titles)
}
