package utils

// ValidPhone reports whether s is exactly ten digits, the shape the backend
// expects for customer lookups.
func ValidPhone(s string) bool {
	if len(s) != 10 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// Last10 trims a stored phone to its trailing ten digits, dropping any
// country prefix the backend may have attached.
func Last10(s string) string {
	if len(s) <= 10 {
		return s
	}
	return s[len(s)-10:]
}
