package middleware

// Allowed reports whether roleSet holds any of required. An empty required
// list only demands authentication.
func Allowed(roleSet []string, required ...string) bool {
	if len(required) == 0 {
		return true
	}
	for _, have := range roleSet {
		for _, want := range required {
			if have == want {
				return true
			}
		}
	}
	return false
}
