package main

import "github.com/mdevan/gosh/cmd"

func main() {
	cmd.Execute()
}
