package main

import "github.com/gdocmd/gdocmd/cmd"

func main() {
	cmd.Execute()
}
