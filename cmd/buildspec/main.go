package main

import "buildspec/internal/cli"

func main() {
	cli.Execute()
}
