package main

import "github.com/nutrijourney/nutri/cmd/nutri"

func main() {
	nutri.Execute()
}
