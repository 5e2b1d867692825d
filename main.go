package main

import "github.com/caretide/caretide_backend/cmd"

func main() {
	cmd.Execute()
}
