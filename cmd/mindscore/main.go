package main

import "mindscore-backend/internal/cli"

func main() {
	cli.Execute()
}
