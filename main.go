package main

import (
	"movie-catalog/cmd"

	_ "go.uber.org/automaxprocs"
)

func main() {
	cmd.Execute()
}
