package main

import (
	"os"
)

// @title Recipe Recommender Service API
// @version 1.0
// @description Health probes and welcome endpoints of the recipe recommender service

// @host localhost:8080
// @BasePath /

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
