package main

import "github.com/nithya6875/gitbuddy-sub000/cmd"

func main() {
	cmd.Execute()
}
