package main

import (
	"embed"
	"os"

	"github.com/alexraskin/linkcraft/cmd"
)

var (
	version = "dev"
)

//go:embed templates/*.html
var templatesFiles embed.FS

//go:embed static/*
var staticFiles embed.FS

func main() {
	if err := cmd.Execute(version, templatesFiles, staticFiles); err != nil {
		os.Exit(1)
	}
}
