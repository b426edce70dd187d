package main

import "github.com/brogergvhs/chanedit/cmd"

func main() {
	cmd.Execute()
}
