package employee

import (
	"fmt"
	"strings"
)

// NameInitials takes the first two letters of the first and last name,
// uppercased. A single name is padded with "XX".
func NameInitials(fullName string) string {
	parts := strings.Fields(fullName)
	switch len(parts) {
	case 0:
		return "XX"
	case 1:
		return prefix(parts[0]) + "XX"
	default:
		return prefix(parts[0]) + prefix(parts[len(parts)-1])
	}
}

func prefix(word string) string {
	runes := []rune(word)
	if len(runes) > 2 {
		runes = runes[:2]
	}
	return strings.ToUpper(string(runes))
}

// GenerateCode builds an employee code such as "JADO20240007".
func GenerateCode(fullName string, joiningYear, serial int) string {
	return fmt.Sprintf("%s%d%04d", NameInitials(fullName), joiningYear, serial)
}
