package fat

import (
	"strings"
)

const illegalShortNameChars = "\"*+,/:;<=>?[\\]| "

// ShortName converts name to its upper case 8.3 form.
func ShortName(name string) (string, error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	base, ext := name, ""
	if i := strings.LastIndex(name, "."); i >= 0 {
		base, ext = name[:i], name[i+1:]
	}
	if len(base) == 0 || len(base) > 8 {
		return "", Fatalf("invalid short name base: '%s'", name)
	}
	if len(ext) > 3 {
		return "", Fatalf("invalid short name extension: '%s'", name)
	}
	for _, c := range base + ext {
		if c < 0x21 || c > 0x7e || strings.ContainsRune(illegalShortNameChars, c) || c == '.' {
			return "", Fatalf("invalid character in short name: '%s'", name)
		}
	}
	if ext == "" {
		return base, nil
	}
	return base + "." + ext, nil
}

// encodeShortName returns the space padded 11 byte directory field for a
// name already returned by ShortName.
func encodeShortName(shortName string) [11]byte {
	var field [11]byte
	for i := range field {
		field[i] = ' '
	}
	base, ext, _ := strings.Cut(shortName, ".")
	copy(field[:8], base)
	copy(field[8:], ext)
	return field
}

// encodeLabel returns the space padded 11 byte volume label field.
func encodeLabel(label string) ([11]byte, error) {
	var field [11]byte
	label = strings.ToUpper(label)
	if len(label) == 0 || len(label) > len(field) {
		return field, Fatalf("invalid volume label: '%s'", label)
	}
	for i := range field {
		field[i] = ' '
	}
	copy(field[:], label)
	return field, nil
}
