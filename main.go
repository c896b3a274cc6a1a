package main

import "github.com/irjudson/codalab-cli/cmd"

func main() {
	cmd.Execute()
}
