package foods

import "time"

// ServingUnit es la unidad en la que se muestran las porciones.
// @Enum cup, can, pouch, scoop, gram
type ServingUnit string

const (
	ServingCup   ServingUnit = "cup"
	ServingCan   ServingUnit = "can"
	ServingPouch ServingUnit = "pouch"
	ServingScoop ServingUnit = "scoop"
	ServingGram  ServingUnit = "gram"
)

// Food es un producto del catálogo. OwnerUserID vacío = catálogo compartido.
type Food struct {
	ID          string
	OwnerUserID string

	Name    string
	Brand   string
	Species string // dog, cat u otra; vacío = cualquiera

	CaloriesPerKg float64

	ServingUnit  ServingUnit
	ServingGrams float64 // gramos por porción (taza, lata...)

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Shared indica si el producto pertenece al catálogo común.
func (f Food) Shared() bool {
	return f.OwnerUserID == ""
}
