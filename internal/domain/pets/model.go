package pets

import "time"

// Species define las especies con cálculo nutricional propio.
// Cualquier otro valor se guarda tal cual (p.ej. "rabbit").
// @Enum dog, cat
type Species string

const (
	SpeciesDog Species = "dog"
	SpeciesCat Species = "cat"
)

// Sex define el sexo de la mascota.
// @Enum male, female, unknown
type Sex string

const (
	SexMale    Sex = "male"
	SexFemale  Sex = "female"
	SexUnknown Sex = "unknown"
)

// ReproductiveStatus combina sexo y castración; es lo que usa el cálculo de ración.
// @Enum neutered_male, spayed_female, intact_male, intact_female, unknown
type ReproductiveStatus string

const (
	ReproNeuteredMale ReproductiveStatus = "neutered_male"
	ReproSpayedFemale ReproductiveStatus = "spayed_female"
	ReproIntactMale   ReproductiveStatus = "intact_male"
	ReproIntactFemale ReproductiveStatus = "intact_female"
	ReproUnknown      ReproductiveStatus = "unknown"
)

// Pet representa el perfil básico de una mascota registrada en el sistema.
type Pet struct {
	ID          string
	OwnerUserID string

	Name    string
	Species Species
	Breed   string
	Sex     Sex

	ReproductiveStatus ReproductiveStatus

	BirthDate *time.Time
	Microchip string

	Notes string

	CreatedAt time.Time
	UpdatedAt time.Time
}
