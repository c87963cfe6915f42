package main

import (
	"sumstats.dev/explorer/cmd/app"
)

func main() {
	app.Run()
}
