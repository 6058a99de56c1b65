package main

import "colcal/quotation/internal/app"

func main() {
	app.Run()
}
