package main

import "github.com/fobiniyen/fobini-go/cmd/fobini/cmd"

func main() {
	cmd.Execute()
}
