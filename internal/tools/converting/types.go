package converting

// IsDigits reports whether s is a non-empty run of ASCII digits. Signs and
// surrounding whitespace are rejected.
func IsDigits(s string) bool {
	if s == "" {
		return false
	}

	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
