package session

// View is one of the three top-level tabs.
type View string

const (
	ViewDiagram View = "diagram"
	ViewQuiz    View = "quiz"
	ViewAsk     View = "ask"
)

// AllViews returns the views in tab order.
func AllViews() []View {
	return []View{ViewDiagram, ViewQuiz, ViewAsk}
}

// Label returns the tab title.
func (v View) Label() string {
	switch v {
	case ViewDiagram:
		return "Diagrama"
	case ViewQuiz:
		return "Posa't a Prova"
	case ViewAsk:
		return "Pregunta a l'IA"
	default:
		return string(v)
	}
}

// Valid reports whether v is a known view.
func (v View) Valid() bool {
	switch v {
	case ViewDiagram, ViewQuiz, ViewAsk:
		return true
	}
	return false
}

// Next returns the view after v, wrapping around.
func (v View) Next() View {
	views := AllViews()
	for i, have := range views {
		if have == v {
			return views[(i+1)%len(views)]
		}
	}
	return ViewDiagram
}
