// The corkboard CLI manages a board of schema-typed cards projected
// into columns by a chosen grouping property.
package main

func main() {
	Execute()
}
