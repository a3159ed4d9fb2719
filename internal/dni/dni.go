// Package dni validates Spanish national identity numbers (Documento Nacional de Identidad).
//
// A DNI is eight decimal digits followed by one uppercase check letter. The
// check letter is derived from the numeric body modulo 23.
package dni

// Result is the outcome of a validation.
type Result string

const (
	Valid   Result = "valid"
	Invalid Result = "invalid"
)

const (
	// Length is the number of characters in a well-formed DNI.
	Length = 9
	// BodyLength is the number of leading digits.
	BodyLength = 8
)

// checkLetters is indexed by body % 23.
const checkLetters = "TRWAGMYFPDXBNJZSQVHLCKE"

// CheckLetter returns the check letter for a numeric body.
func CheckLetter(body uint32) byte {
	return checkLetters[body%uint32(len(checkLetters))]
}

// Validate reports whether s is a DNI with a correct check letter.
// Input of the wrong length or with a non-digit body is Invalid, never an error.
func Validate(s string) Result {
	if len(s) != Length {
		return Invalid
	}

	body, ok := parseBody(s[:BodyLength])
	if !ok {
		return Invalid
	}

	if s[BodyLength] != CheckLetter(body) {
		return Invalid
	}
	return Valid
}

// parseBody parses exactly BodyLength ASCII digits. Signs, spaces and
// other characters accepted by strconv are rejected.
func parseBody(s string) (uint32, bool) {
	var n uint32
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		n = n*10 + uint32(c-'0')
	}
	return n, true
}
