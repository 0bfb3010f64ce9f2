package main

import "cran-packages/internal/cli"

func main() {
	cli.Execute()
}
