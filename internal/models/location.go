package models

import (
	"strings"

	"github.com/google/uuid"
)

// IndiaLocation is one row of the deduplicated administrative location
// directory (state > district > sub-district > village + PIN code).
// (state, district, sub_district, village) is unique in the store.
type IndiaLocation struct {
	ID          uuid.UUID `json:"id"`
	State       string    `json:"state"`
	District    string    `json:"district"`
	SubDistrict string    `json:"sub_district"`
	Village     string    `json:"village"`
	PinCode     string    `json:"pin_code"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	CensusCode  string    `json:"census_code"`
}

// DeriveCensusCode builds the short uppercase code from the first three
// characters of each hierarchy level, e.g. "MAHMUMMUMCOL".
func DeriveCensusCode(state, district, subDistrict, village string) string {
	head := func(s string) string {
		// slice runes, not bytes, so script names survive intact
		r := []rune(strings.TrimSpace(s))
		if len(r) > 3 {
			r = r[:3]
		}
		return strings.ToUpper(string(r))
	}
	return head(state) + head(district) + head(subDistrict) + head(village)
}
