package main

import "github.com/jkorab/camel/cmd"

func main() {
	cmd.Execute()
}
