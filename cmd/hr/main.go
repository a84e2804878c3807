package main

import "backoffice/internal/app/hrserver"

func main() {
	hrserver.Run()
}
