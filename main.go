// Package main provides the gnedna CLI application.
// gnedna converts eDNA survey data to Darwin Core files for OBIS.
package main

import "github.com/gnames/gnedna/cmd"

func main() {
	cmd.Execute()
}
