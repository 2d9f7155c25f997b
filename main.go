package main

import "niri-select/cmd"

func main() {
	cmd.Execute()
}
