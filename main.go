/*
Copyright © 2025 docsum authors
*/
package main

import "docsum/cmd"

func main() {
	cmd.Execute()
}
