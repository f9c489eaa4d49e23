package main

import "github.com/tilectl/tilectl/cmd"

func main() {
	cmd.Execute()
}
