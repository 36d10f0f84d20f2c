package main

import "github.com/guidopacc/insurapro/cmd"

func main() {
	cmd.Execute()
}
