// cmd/pephom/main.go
package main

import (
	"pephom/internal/app"
	"pephom/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
