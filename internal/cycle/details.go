package cycle

// Details is the static content shown for a stage.
type Details struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

var details = map[Stage]Details{
	Evaporation: {
		Title:       "Evaporació",
		Description: "El sol escalfa l'aigua de rius, llacs i mars. L'aigua es converteix en un gas anomenat vapor d'aigua i puja cap al cel. És com si l'aigua s'evaporés!",
		Icon:        "☀️",
	},
	Condensation: {
		Title:       "Condensació",
		Description: "A dalt, al cel, fa més fred. El vapor d'aigua es refreda i es torna a convertir en petites gotes d'aigua. Aquestes gotetes s'ajunten i formen els núvols.",
		Icon:        "☁️",
	},
	Precipitation: {
		Title:       "Precipitació",
		Description: "Quan els núvols s'omplen de moltes gotes d'aigua, es tornen pesats. Llavors, l'aigua cau a la terra en forma de pluja, neu o calamarsa. Això és la precipitació!",
		Icon:        "🌧️",
	},
	Collection: {
		Title:       "Recollida",
		Description: "L'aigua que cau a la terra es recull en rius, llacs i oceans. Una part també es filtra a la terra. I des d'aquí, el cicle torna a començar amb l'evaporació.",
		Icon:        "🌊",
	},
}

// DetailsFor returns the content for s. Unknown stages get their name as
// the title.
func DetailsFor(s Stage) Details {
	if d, ok := details[s]; ok {
		return d
	}
	return Details{Title: string(s)}
}
