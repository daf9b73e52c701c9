package calendar

import (
	"fmt"
	"time"

	"cloud.google.com/go/civil"
)

// HolidayType classifies a holiday by its origin.
type HolidayType int

const (
	CivicHoliday HolidayType = iota
	CatholicReligious
	ChristianReligious
)

// Label returns the Spanish description used in exported calendars.
func (t HolidayType) Label() string {
	switch t {
	case CivicHoliday:
		return "Feriado Cívico"
	case CatholicReligious:
		return "Religioso (Católico)"
	case ChristianReligious:
		return "Religioso (Cristiano)"
	default:
		return "Feriado"
	}
}

// String returns the machine key of the type.
func (t HolidayType) String() string {
	switch t {
	case CivicHoliday:
		return "civic"
	case CatholicReligious:
		return "catholic"
	case ChristianReligious:
		return "christian"
	default:
		return fmt.Sprintf("HolidayType(%d)", int(t))
	}
}

// MarshalText encodes the type as its machine key.
func (t HolidayType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decodes a machine key produced by MarshalText.
func (t *HolidayType) UnmarshalText(data []byte) error {
	switch string(data) {
	case "civic":
		*t = CivicHoliday
	case "catholic":
		*t = CatholicReligious
	case "christian":
		*t = ChristianReligious
	default:
		return fmt.Errorf("unknown holiday type %q", string(data))
	}
	return nil
}

// Holiday names as they appear in the official calendar.
const (
	NewYear               = "Año Nuevo"
	LaborDay              = "Día del Trabajo"
	IndependenceDay       = "Día de la Independencia"
	BattleOfBoyaca        = "Batalla de Boyacá"
	ImmaculateConception  = "Inmaculada Concepción"
	Christmas             = "Navidad"
	HolyThursday          = "Jueves Santo"
	GoodFriday            = "Viernes Santo"
	Epiphany              = "Epifanía"
	SaintJoseph           = "San José"
	Ascension             = "Ascensión de Jesús"
	CorpusChristi         = "Corpus Christi"
	SacredHeart           = "Sagrado Corazón"
	SaintsPeterAndPaul    = "San Pedro y San Pablo"
	Assumption            = "Asunción de la Virgen"
	ColumbusDay           = "Día de la Raza"
	AllSaints             = "Día de Todos los Santos"
	CartagenaIndependence = "Independencia de Cartagena"
)

// Observances that are shown on the calendar but are not public holidays.
const (
	AshWednesdayName = "Miércoles de Ceniza"
	CarnivalName     = "Carnaval de Barranquilla"
)

// CatalogSize is the number of holidays BuildHolidays returns for any year.
const CatalogSize = 18

// Holiday is a single catalog entry for a year.
//
// Fixed means the holiday is exempt from the Ley Emiliani shift, not
// that it falls on the same calendar day every year: Holy Thursday and
// Good Friday depend on Easter and are still fixed.
type Holiday struct {
	Name  string      `json:"name" yaml:"name"`
	Date  civil.Date  `json:"date" yaml:"date"`
	Fixed bool        `json:"fixed" yaml:"fixed"`
	Type  HolidayType `json:"type" yaml:"type"`
}

// BuildHolidays returns the holiday catalog for a year in a stable order:
// fixed civic/religious days, the Easter-dependent fixed days, then the
// holidays eligible for shifting.
func BuildHolidays(year int) []Holiday {
	feasts := DeriveEasterOffsets(year)
	on := func(month time.Month, day int) civil.Date {
		return civil.Date{Year: year, Month: month, Day: day}
	}

	holidays := make([]Holiday, 0, CatalogSize)

	// Never moved
	holidays = append(holidays,
		Holiday{Name: NewYear, Date: on(time.January, 1), Fixed: true, Type: CivicHoliday},
		Holiday{Name: LaborDay, Date: on(time.May, 1), Fixed: true, Type: CivicHoliday},
		Holiday{Name: IndependenceDay, Date: on(time.July, 20), Fixed: true, Type: CivicHoliday},
		Holiday{Name: BattleOfBoyaca, Date: on(time.August, 7), Fixed: true, Type: CivicHoliday},
		Holiday{Name: ImmaculateConception, Date: on(time.December, 8), Fixed: true, Type: CatholicReligious},
		Holiday{Name: Christmas, Date: on(time.December, 25), Fixed: true, Type: ChristianReligious},
		Holiday{Name: HolyThursday, Date: feasts.HolyThursday, Fixed: true, Type: CatholicReligious},
		Holiday{Name: GoodFriday, Date: feasts.GoodFriday, Fixed: true, Type: CatholicReligious},
	)

	// Subject to Ley Emiliani
	holidays = append(holidays,
		Holiday{Name: Epiphany, Date: on(time.January, 6), Type: CatholicReligious},
		Holiday{Name: SaintJoseph, Date: on(time.March, 19), Type: CatholicReligious},
		Holiday{Name: Ascension, Date: feasts.Ascension, Type: CatholicReligious},
		Holiday{Name: CorpusChristi, Date: feasts.CorpusChristi, Type: CatholicReligious},
		Holiday{Name: SacredHeart, Date: feasts.SacredHeart, Type: CatholicReligious},
		Holiday{Name: SaintsPeterAndPaul, Date: on(time.June, 29), Type: CatholicReligious},
		Holiday{Name: Assumption, Date: on(time.August, 15), Type: CatholicReligious},
		Holiday{Name: ColumbusDay, Date: on(time.October, 12), Type: CivicHoliday},
		Holiday{Name: AllSaints, Date: on(time.November, 1), Type: CatholicReligious},
		Holiday{Name: CartagenaIndependence, Date: on(time.November, 11), Type: CivicHoliday},
	)

	return holidays
}
