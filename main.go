package main

import "github.com/papapumpkin/trappedknight/cmd"

func main() {
	cmd.Execute()
}
