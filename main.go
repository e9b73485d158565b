package main

import "github.com/modstash/modstash/cmd"

func main() {
	cmd.Execute()
}
