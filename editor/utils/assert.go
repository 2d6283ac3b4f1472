package utils

import "fmt"

// Assert panics with the formatted message when condition is false. It
// guards programming errors only; bad user input never reaches it.
func Assert(condition bool, format string, args ...any) {
	if condition {
		return
	}
	if len(args) > 0 {
		panic(fmt.Sprintf(format, args...))
	}
	panic(format)
}
