package main

import "github.com/Kedar1021/to-do-app/internal/cli"

func main() {
	cli.Execute()
}
