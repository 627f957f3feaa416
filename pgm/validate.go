package pgm

import "strings"

func intInRange(field string, value, lower, upper int) (int, error) {
	if value < lower || upper < value {
		return 0, &RangeError{Field: field, Lower: lower, Upper: upper, Actual: value}
	}
	return value, nil
}

// The character set the hardware's name editor can produce. Interior
// NULs are legal; trailing NULs are padding.
const nameCharacters = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"1234567890" +
	"!#$%&'()-@_{} \x00"

const nameMaxLen = 16

func validateName(field, value string) (string, error) {
	if nameMaxLen < len(value) {
		return "", &TooLongError{Field: field, Max: nameMaxLen, Actual: len(value)}
	}
	for i := 0; i < len(value); i++ {
		if !strings.ContainsRune(nameCharacters, rune(value[i])) {
			return "", &InvalidCharacterError{Field: field, Char: value[i]}
		}
	}
	return value, nil
}
