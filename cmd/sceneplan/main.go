package main

import "sceneplan/internal/cli"

func main() {
	cli.Execute()
}
