package main

import "github.com/sitepulse/visit-notifier/cmd"

func main() {
	cmd.Execute()
}
