package main

import "github.com/km-arc/slarb/framework/console"

func main() {
	console.Execute()
}
