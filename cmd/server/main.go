package main

import (
	_ "time/tzdata"

	"hardings-auto/go_backend/internal/app"
)

func main() {
	app.Run()
}
