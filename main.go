package main

import "github.com/tusharpolymers/onboard-portal/cmd"

func main() {
	cmd.Execute()
}
