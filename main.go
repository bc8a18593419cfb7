// Package main is the entry point for the fixtures CLI.
package main

import "github.com/RickarySanchez/RusticFourier/cmd"

func main() {
	cmd.Execute()
}
