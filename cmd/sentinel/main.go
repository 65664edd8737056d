package main

import "github.com/timmyb824/aws-cost-sentinel/internal/cli"

func main() {
	cli.Execute()
}
