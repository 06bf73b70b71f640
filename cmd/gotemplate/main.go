package main

import "github.com/joaobcpatricio/gotemplate/internal/cli"

func main() {
	cli.Execute()
}
