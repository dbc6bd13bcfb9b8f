package models

// Catalog lists the options offered when logging entries.
// swagger:model Catalog
type Catalog struct {
	MuscleGroups   []string            `json:"muscle_groups"`
	Exercises      map[string][]string `json:"exercises"`
	Vitamins       []string            `json:"vitamins"`
	ProteinSources []string            `json:"protein_sources"`
	Sides          []Side              `json:"sides"`
}

// DefaultCatalog returns the built-in option lists.
func DefaultCatalog() Catalog {
	return Catalog{
		MuscleGroups: []string{"Peito", "Costas", "Braços", "Pernas", "Abdômen", "Panturrilha"},
		Exercises: map[string][]string{
			"Peito": {
				"Supino", "Crossover", "Peck Deck", "Flexão de Braço", "Supino Inclinado",
				"Supino Declinado", "Crucifixo", "Pull Over", "Press Militar", "Mergulho em Barras Paralelas",
			},
			"Costas": {
				"Remada", "Puxada na Polia", "Levantamento Terra", "Remada Invertida", "Pullover",
				"Hyperextensions", "Remada Curvada", "Good Morning", "Puxada Frontal", "Chin Ups",
			},
			"Braços": {
				"Rosca Direta", "Rosca Martelo", "Tríceps na Polia", "Rosca Invertida", "Rosca Scott",
				"Tríceps Testa", "Tríceps Francês", "Tríceps Coice", "Tríceps Mergulho", "Rosca Concentrada",
			},
			"Pernas": {
				"Agachamento", "Leg Press", "Stiff", "Mesa Flexora", "Cadeira Extensora",
				"Cadeira Adutora", "Cadeira Abdutora", "Panturrilha em Pé", "Panturrilha Sentado", "Agachamento Frontal",
			},
			"Abdômen": {
				"Abdominal", "Prancha", "Abdominal Invertido", "Abdominal Lateral", "Abdominal Infra",
				"Abdominal Oblíquo", "Abdominal no Pulley", "Abdominal na Bola", "Abdominal com Peso", "Abdominal Bicicleta",
			},
			"Panturrilha": {"Panturrilha em Pé", "Panturrilha Sentado", "Panturrilha no Leg Press"},
		},
		Vitamins:       []string{"B12", "D", "C", "Multi Vitamínico", "Ginkgo"},
		ProteinSources: []string{"Carne Vermelha", "Frango", "Peixe"},
		Sides:          []Side{SideLeft, SideRight},
	}
}
