package stringsx

// OneOf reports whether s is present in the list ss.
func OneOf(s string, ss ...string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}

	return false
}
