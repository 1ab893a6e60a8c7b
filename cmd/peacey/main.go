package main

import "peacey/internal/cmd"

func main() {
	cmd.Execute()
}
