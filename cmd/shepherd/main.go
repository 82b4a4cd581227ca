package main

import (
	"os"

	"github.com/aussiebroadwan/shepherd/internal/shepherd/app"
)

func main() {
	os.Exit(app.Execute())
}
