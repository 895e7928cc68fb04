package pricing

import "fmt"

// BandKey identifica una fila de la lista de precios por rango etario.
// Es un conjunto cerrado: solo los valores declarados abajo son válidos.
type BandKey string

// Bandas de hijos.
const (
	BandChild0To1   BandKey = "child:0-1"
	BandChild2To20  BandKey = "child:2-20"
	BandChild21To29 BandKey = "child:21-29"
	BandChild30To39 BandKey = "child:30-39"
	BandChild40To49 BandKey = "child:40-49"
)

// Bandas de titular soltero (y de hijos de 50 años o más).
const (
	Band0To25  BandKey = "0-25"
	Band26To35 BandKey = "26-35"
	Band36To40 BandKey = "36-40"
	Band41To50 BandKey = "41-50"
	Band51To60 BandKey = "51-60"
	Band61To65 BandKey = "61-65"
	Band66Plus BandKey = "66-00"
)

// Bandas de titular casado: incluyen el precio del cónyuge.
const (
	BandMarried0To25  BandKey = "married:0-25"
	BandMarried26To35 BandKey = "married:26-35"
	BandMarried36To40 BandKey = "married:36-40"
	BandMarried41To50 BandKey = "married:41-50"
	BandMarried51To60 BandKey = "married:51-60"
	BandMarried61To65 BandKey = "married:61-65"
	BandMarried66Plus BandKey = "married:66-00"
)

var allBands = []BandKey{
	BandChild0To1, BandChild2To20, BandChild21To29, BandChild30To39, BandChild40To49,
	Band0To25, Band26To35, Band36To40, Band41To50, Band51To60, Band61To65, Band66Plus,
	BandMarried0To25, BandMarried26To35, BandMarried36To40, BandMarried41To50,
	BandMarried51To60, BandMarried61To65, BandMarried66Plus,
}

var marriedBands = map[BandKey]BandKey{
	Band0To25:  BandMarried0To25,
	Band26To35: BandMarried26To35,
	Band36To40: BandMarried36To40,
	Band41To50: BandMarried41To50,
	Band51To60: BandMarried51To60,
	Band61To65: BandMarried61To65,
	Band66Plus: BandMarried66Plus,
}

// AllBandKeys devuelve todas las bandas conocidas.
func AllBandKeys() []BandKey {
	out := make([]BandKey, len(allBands))
	copy(out, allBands)
	return out
}

// Valid informa si la banda pertenece al conjunto cerrado.
func (b BandKey) Valid() bool {
	for _, k := range allBands {
		if b == k {
			return true
		}
	}
	return false
}

// ParseBandKey valida un texto recibido (carga de listas de precios) contra el conjunto cerrado.
func ParseBandKey(s string) (BandKey, error) {
	b := BandKey(s)
	if !b.Valid() {
		return "", &ValidationError{Field: "rango_etario", Reason: fmt.Sprintf("rango etario desconocido: %q", s)}
	}
	return b, nil
}

// TranslateBand traduce edad, parentesco y estado civil a la banda de la lista de precios.
// Devuelve ok=false para el cónyuge: su precio va incluido en la banda "married" del titular
// y no debe consultarse la lista.
func TranslateBand(age int, role Role, isMarried bool) (key BandKey, ok bool) {
	switch role {
	case RoleSpouse:
		return "", false
	case RoleChild:
		switch {
		case age <= 1:
			return BandChild0To1, true
		case age <= 20:
			return BandChild2To20, true
		case age <= 29:
			return BandChild21To29, true
		case age <= 39:
			return BandChild30To39, true
		case age <= 49:
			return BandChild40To49, true
		}
		// Un hijo de 50 o más se cotiza como titular soltero.
	}

	band := adultBand(age)
	if role == RoleHolder && isMarried {
		return marriedBands[band], true
	}
	return band, true
}

func adultBand(age int) BandKey {
	switch {
	case age <= 25:
		return Band0To25
	case age <= 35:
		return Band26To35
	case age <= 40:
		return Band36To40
	case age <= 50:
		return Band41To50
	case age <= 60:
		return Band51To60
	case age <= 65:
		return Band61To65
	default:
		return Band66Plus
	}
}
