package types

import "strings"

// Address is the Brazilian postal address shape used across the
// back office. Entities carry an ordered list of labeled addresses;
// an address is replaced by removing and re-adding it, never edited
// in place.
type Address struct {
	ZipCode    string `json:"zip_code"`
	Street     string `json:"street"`
	Number     string `json:"number,omitempty"`
	Complement string `json:"complement,omitempty"`
	District   string `json:"district"`
	City       string `json:"city"`
	State      string `json:"state,omitempty"`
	Label      string `json:"label,omitempty"`
}

// IsZero reports whether every field of the address is blank.
func (a Address) IsZero() bool {
	return a == Address{}
}

// DigitsOnly strips everything but digits from a document or postal
// code input. Form fields arrive masked ("01310-100", "19.131.243/0001-97").
func DigitsOnly(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
