package main

import "github.com/figgo/figgo/cmd"

func main() {
	cmd.Execute()
}
