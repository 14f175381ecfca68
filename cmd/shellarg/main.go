package main

import (
	"github.com/shellarg/shellarg/app"
)

var version = "devel"

func main() {
	app.Main(app.Config{
		Version: version,
	})
}
