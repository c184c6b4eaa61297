package main

import (
	"os"

	"github.com/MuhammadZain2005/Flask-Filler/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
