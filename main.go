package main

import "github.com/protheus-compose/protheus-compose/cmd/protheuscompose"

func main() {
	protheuscompose.Execute()
}
