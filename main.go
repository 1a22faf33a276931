package main

import "github.com/josephlewis42/rshell/cmd"

func main() {
	cmd.Execute()
}
