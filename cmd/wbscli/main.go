package main

import "github.com/stfnandersen/go-wbs/internal/cli"

func main() {
	cli.Execute()
}
