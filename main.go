package main

import "github.com/mouse-blink/dailyscale/cmd"

func main() {
	cmd.Execute()
}
