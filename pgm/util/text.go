package util

import (
	"fmt"
	"regexp"
	"strings"
)

var indentRe = regexp.MustCompile("(?m)^")

func Indent(text string, indent string) string {
	if text == "" {
		return text
	}
	return indentRe.ReplaceAllString(text, indent)
}

// ZeroPadSliceToString converts a NUL-padded byte slice to a string,
// dropping the trailing NULs.
func ZeroPadSliceToString(s []byte) string {
	i := len(s)
	for 0 < i && s[i-1] == 0 {
		i--
	}
	return string(s[:i])
}

// HexGrid renders a byte table as rows of hex values, perRow values per
// line, each line prefixed with indent.
func HexGrid(bytes []int, indent string, perRow int) string {
	rows := []string{}
	row := []string{}
	for _, b := range bytes {
		row = append(row, fmt.Sprintf("%02X", b))
		if len(row) == perRow {
			rows = append(rows, strings.Join(row, " "))
			row = nil
		}
	}
	if 0 < len(row) {
		rows = append(rows, strings.Join(row, " "))
	}
	return indent + strings.Join(rows, "\n"+indent)
}
