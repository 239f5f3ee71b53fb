package main

import (
	"os"

	"github.com/quizbit/quiz-service/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
