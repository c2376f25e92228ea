package main

import (
	"flag"
	"os"

	"Tunelab/internal/cli"
)

func main() {
	configPath := flag.String("config", "setups.yaml", "YAML file with the setups to calculate")
	xlsxPath := flag.String("xlsx", "", "also write the results to this xlsx workbook")
	pdfPath := flag.String("pdf", "", "also write a PDF setup sheet to this file")
	flag.Parse()
	os.Exit(cli.Run(cli.Options{
		ConfigPath: *configPath,
		XLSXPath:   *xlsxPath,
		PDFPath:    *pdfPath,
	}, os.Stdout, os.Stderr))
}
