/*
Copyright © 2026 davdeploy maintainers
*/
package main

import (
	"davdeploy/cmd"
)

func main() {
	cmd.Execute()
}
