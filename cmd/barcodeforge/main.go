// cmd/barcodeforge/main.go
package main

import (
	"github.com/andersen-lab/BarcodeForge/internal/app"
	"github.com/andersen-lab/BarcodeForge/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
