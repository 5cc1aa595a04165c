package main

import "github.com/HarshitR2004/GenCoder/cmd"

func main() {
	cmd.Execute()
}
