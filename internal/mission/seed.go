package mission

// Seed returns the built-in star map: the space medicine curriculum, starting at
// bone loss and branching out through the body systems affected by spaceflight.
func Seed() []*Definition {
	return []*Definition{
		{
			ID:          "bone-loss",
			Name:        "Bone Loss",
			Description: "Why skeletons thin out in microgravity",
			Connections: []ID{"muscle-atrophy", "radiation"},
			Position:    Position{X: 15, Y: 60},
			EntryPoint:  true,
		},
		{
			ID:          "muscle-atrophy",
			Name:        "Muscle Atrophy",
			Description: "Keeping muscles strong without weight",
			Connections: []ID{"cardiovascular"},
			Position:    Position{X: 30, Y: 35},
		},
		{
			ID:          "radiation",
			Name:        "Cosmic Radiation",
			Description: "Shielding the crew from galactic rays",
			Connections: []ID{"vision", "immune-system"},
			Position:    Position{X: 35, Y: 75},
		},
		{
			ID:          "cardiovascular",
			Name:        "Heart in Orbit",
			Description: "How fluid shifts reshape the heart",
			Connections: []ID{"vision"},
			Position:    Position{X: 50, Y: 25},
		},
		{
			ID:          "vision",
			Name:        "Astronaut Eyes",
			Description: "Pressure changes and the optic nerve",
			Connections: []ID{"sleep"},
			Position:    Position{X: 60, Y: 50},
		},
		{
			ID:          "immune-system",
			Name:        "Immune Defenses",
			Description: "Microbes and immunity in a sealed cabin",
			Connections: []ID{"sleep"},
			Position:    Position{X: 58, Y: 80},
		},
		{
			ID:          "sleep",
			Name:        "Sixteen Sunrises",
			Description: "Circadian rhythm when the sun rises every 90 minutes",
			Connections: []ID{"isolation"},
			Position:    Position{X: 75, Y: 60},
		},
		{
			ID:          "isolation",
			Name:        "Mind on Mars",
			Description: "Psychology of long missions far from home",
			Connections: []ID{},
			Position:    Position{X: 88, Y: 35},
		},
	}
}

// SeedCatalog builds the catalog from Seed.
func SeedCatalog() (*Catalog, error) {
	return NewCatalog(Seed())
}
