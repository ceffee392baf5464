package main

import "token-recovery-dapp/internal/cli"

func main() {
	cli.Execute()
}
