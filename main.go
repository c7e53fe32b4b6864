package main

import "github.com/user/tagging-football-cli/cmd"

func main() {
	cmd.Execute()
}
