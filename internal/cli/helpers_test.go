package cli

import "strings"

func indexOf(s, sub string) int {
	i := strings.Index(s, sub)
	if i < 0 {
		return len(s) + 1
	}
	return i
}
