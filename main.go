package main

import "account-sync/cmd"

func main() {
	cmd.Execute()
}
