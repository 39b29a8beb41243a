package main

import "github.com/aalvaropc/prefixer/internal/cli"

func main() {
	cli.Execute()
}
