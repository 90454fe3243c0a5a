package main

import "github.com/routelab/dvsim/cmd"

func main() {
	cmd.Execute()
}
