package main

import (
	"os"

	"github.com/cinetix/theater-booking-api/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		os.Exit(1)
	}
}
