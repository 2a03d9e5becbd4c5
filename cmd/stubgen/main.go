package main

import "github.com/stubgen/stubgen/internal/cli"

func main() {
	cli.Execute()
}
