package util

import "fmt"

// Count formats n with a noun, adding an "s" when n != 1.
func Count(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
