package main

import (
	"notevault/cmd"
)

func main() {
	cmd.Execute()
}
