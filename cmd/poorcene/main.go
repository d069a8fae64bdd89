package main

import "poorcene/internal/cli"

func main() {
	cli.Execute()
}
