package main

import (
	"claimsight/cmd"
)

func main() {
	cmd.Execute()
}
