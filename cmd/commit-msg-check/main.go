package main

import (
	"os"

	app "github.com/codebush/githooks/internal/hooks/jiramsg"
)

func main() {
	os.Exit(app.Run(os.Args, os.Stderr))
}
