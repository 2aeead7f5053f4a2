package greet

import "fmt"

// Prefix starts every greeting.
var Prefix = "hello"

// OnGreet prints a greeting for every argument.
func OnGreet(this any, args ...any) {
	for _, a := range args {
		fmt.Printf("%s %v\n", Prefix, a)
	}
}

func helper() {}
