package main

import "config-diff/cmd"

func main() {
	cmd.Execute()
}
