package main

import "github.com/sudacode/thumburl/cmd"

func main() {
	cmd.Execute()
}
