package main

import "videocut/internal/cli"

func main() {
	cli.Main()
}
