package main

import "grocery-app/internal/cli"

func main() {
	cli.Execute()
}
