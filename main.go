package main

import "github.com/occirank/Haloscan-mcp-server/cmd"

func main() {
	cmd.Execute()
}
