package main

import "exusiai.dev/shufflestat/cmd/app"

func main() {
	app.Run()
}
