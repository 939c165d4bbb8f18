package main

import "github.com/avivilloz/commonutils/internal/cli"

func main() {
	cli.Execute()
}
