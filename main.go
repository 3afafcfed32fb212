package main

import "github.com/morrilet/GMTK-2022/cmd"

func main() {
	cmd.Execute()
}
