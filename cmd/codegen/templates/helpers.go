package templates

import (
	"strconv"
	"strings"
)

var tupleNames = [...]string{2: "Pair", "Triplet", "Quartet", "Quintet", "Sextet", "Septet", "Octet", "Ennead"}

// MaxArity is the largest tuple the templates know a name for.
const MaxArity = len(tupleNames) - 1

func tupleName(n int) string {
	return tupleNames[n]
}

func field(i int) string {
	return string(rune('a' + i))
}

func accessor(i int) string {
	return strings.ToUpper(field(i))
}

func prefixedStrings(prefix string, count int) string {
	var sb strings.Builder
	for i := 0; i < count; i++ {
		sb.WriteString(prefix)
		sb.WriteString(strconv.Itoa(i))
		if i < count-1 {
			sb.WriteString(", ")
		}
	}
	return sb.String()
}

func joinFields(count int, fn func(i int) string) string {
	parts := make([]string, count)
	for i := range parts {
		parts[i] = fn(i)
	}
	return strings.Join(parts, ", ")
}

func ctorParams(n int) string {
	return joinFields(n, func(i int) string { return field(i) + " T" + strconv.Itoa(i) })
}

func fieldInits(n int) string {
	return joinFields(n, func(i int) string { return field(i) + ": " + field(i) })
}

func fieldRefs(n int) string {
	return joinFields(n, func(i int) string { return "t." + field(i) })
}
