package main

import "lifememory/cmd/lifememory/cmd"

func main() {
	cmd.Execute()
}
