package main

import "github.com/mabhi256/tjs2dis/cmd"

func main() {
	cmd.Execute()
}
