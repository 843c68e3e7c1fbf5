// cmd/reefctl/main.go
package main

import "go-reef-survivors/cmd/reefctl/root"

func main() {
	root.Execute()
}
