package main

import "github.com/jswensen/minefield/cmd"

func main() {
	cmd.Execute()
}
