package form

import "github.com/formlet/formlet/model"

// DefaultLinkLabel is used when a form carries a link without a description.
const DefaultLinkLabel = "Learn More"

// Appearance is one font/text-color/card-color triple from the form style.
type Appearance struct {
	Font      string `json:"font"`
	TxtColor  string `json:"txtcolor"`
	CardColor string `json:"cardcolor"`
}

// Link is a presentable external link with its label.
type Link struct {
	URL   string `json:"url"`
	Label string `json:"label"`
}

// QuestionView is one question card: title, optional description, the card
// appearance, and the input control to embed.
type QuestionView struct {
	Title       string     `json:"title"`
	Description *string    `json:"description,omitempty"`
	Card        Appearance `json:"card"`
	Control     Control    `json:"control"`
}

// View is a presentable form. It is pure data: the caller owns submission
// handling and anything interactive.
type View struct {
	Title       string         `json:"title"`
	Description *string        `json:"description,omitempty"`
	Link        *Link          `json:"link,omitempty"`
	Theme       string         `json:"theme"`
	Header      Appearance     `json:"header"`
	Questions   []QuestionView `json:"questions"`
}

// Render composes the header and the ordered question cards into one view.
// form_content order is render order; question Index values are not
// consulted.
func Render(def model.FormDefinition) View {
	view := View{
		Title:       def.Title,
		Description: def.Description,
		Theme:       def.Style.Theme,
		Header: Appearance{
			Font:      def.Style.HFont,
			TxtColor:  def.Style.HTxtColor,
			CardColor: def.Style.HCardColor,
		},
		Questions: make([]QuestionView, 0, len(def.FormContent)),
	}

	if def.Link != nil {
		label := DefaultLinkLabel
		if def.LinkDescription != nil && *def.LinkDescription != "" {
			label = *def.LinkDescription
		}
		view.Link = &Link{URL: *def.Link, Label: label}
	}

	card := Appearance{
		Font:      def.Style.QFont,
		TxtColor:  def.Style.QTxtColor,
		CardColor: def.Style.QCardColor,
	}
	for _, q := range def.FormContent {
		view.Questions = append(view.Questions, QuestionView{
			Title:       q.Title,
			Description: q.Description,
			Card:        card,
			Control:     BuildControl(q),
		})
	}
	return view
}
