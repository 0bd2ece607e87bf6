package main

import "results-manager/cmd"

func main() {
	cmd.Execute()
}
