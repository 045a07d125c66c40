package main

import "github.com/rnwolfe/lovetest/cmd"

func main() {
	cmd.Execute()
}
