// Package countries holds the table of European countries served by the random picker.
package countries

import (
	"fmt"
	"math/rand/v2"
)

// Country is a European country with its ISO 3166-1 alpha-2 code.
type Country struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// String renders the country as "Name (CODE)".
func (c Country) String() string {
	return fmt.Sprintf("%s (%s)", c.Name, c.Code)
}

// european is ordered by name. Kosovo uses the user-assigned code XK.
var european = []Country{
	{"Albania", "AL"},
	{"Andorra", "AD"},
	{"Austria", "AT"},
	{"Belarus", "BY"},
	{"Belgium", "BE"},
	{"Bosnia and Herzegovina", "BA"},
	{"Bulgaria", "BG"},
	{"Croatia", "HR"},
	{"Cyprus", "CY"},
	{"Czech Republic", "CZ"},
	{"Denmark", "DK"},
	{"Estonia", "EE"},
	{"Finland", "FI"},
	{"France", "FR"},
	{"Germany", "DE"},
	{"Greece", "GR"},
	{"Hungary", "HU"},
	{"Iceland", "IS"},
	{"Ireland", "IE"},
	{"Italy", "IT"},
	{"Kosovo", "XK"},
	{"Latvia", "LV"},
	{"Liechtenstein", "LI"},
	{"Lithuania", "LT"},
	{"Luxembourg", "LU"},
	{"Malta", "MT"},
	{"Moldova", "MD"},
	{"Monaco", "MC"},
	{"Montenegro", "ME"},
	{"Netherlands", "NL"},
	{"North Macedonia", "MK"},
	{"Norway", "NO"},
	{"Poland", "PL"},
	{"Portugal", "PT"},
	{"Romania", "RO"},
	{"Russia", "RU"},
	{"San Marino", "SM"},
	{"Serbia", "RS"},
	{"Slovakia", "SK"},
	{"Slovenia", "SI"},
	{"Spain", "ES"},
	{"Sweden", "SE"},
	{"Switzerland", "CH"},
	{"Ukraine", "UA"},
	{"United Kingdom", "GB"},
	{"Vatican City", "VA"},
}

// European returns a copy of the country table.
func European() []Country {
	return append([]Country(nil), european...)
}

// Picker selects countries at random.
type Picker struct {
	intN func(n int) int
}

// NewPicker returns a Picker. A nil source uses the global generator.
func NewPicker(src rand.Source) *Picker {
	if src == nil {
		return &Picker{intN: rand.IntN}
	}
	return &Picker{intN: rand.New(src).IntN}
}

// Random returns a uniformly chosen European country.
func (p *Picker) Random() Country {
	return european[p.intN(len(european))]
}
