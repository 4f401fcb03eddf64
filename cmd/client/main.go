package main

import "receivecopy/cmd/client/cmd"

func main() {
	cmd.Execute()
}
