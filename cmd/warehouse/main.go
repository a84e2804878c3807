package main

import "backoffice/internal/app/warehouseserver"

func main() {
	warehouseserver.Run()
}
