package main

import "srpcheck/cmd"

func main() {
	cmd.Execute()
}
