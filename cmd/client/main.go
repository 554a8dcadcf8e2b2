package main

import "gophnotes/cmd/client/cmd"

func main() {
	cmd.Execute()
}
