package main

import "github.com/aklbites/jamwhopper/cmd"

func main() {
	cmd.Execute()
}
