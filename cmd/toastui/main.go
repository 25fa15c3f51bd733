// Package main is the entry point for the toastui command.
package main

func main() {
	Execute()
}
