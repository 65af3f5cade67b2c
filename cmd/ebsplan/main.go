package main

import "github.com/stackmason/ebsplan/pkg/cli"

func main() {
	cli.Main()
}
