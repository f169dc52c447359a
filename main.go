package main

import "github.com/DanOgh07/quantumin-solver/cmd"

func main() {
	cmd.Execute()
}
