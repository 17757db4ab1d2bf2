package main

import "github.com/mairapenna/nutriplan_backend/cmd"

func main() {
	cmd.Execute()
}
