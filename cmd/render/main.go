// Command render converts a saved project file straight to HTML or PDF
// without starting the server. Useful for checking template output against a
// known record.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"resume-builder/internal/config"
	"resume-builder/internal/model"
	"resume-builder/internal/render"
	"resume-builder/internal/usecase"
	"resume-builder/pkg/infrastructure"
)

func main() {
	var (
		in       = flag.String("in", "", "project JSON file to render")
		tpl      = flag.String("template", "modern", "template: modern, classic or minimal")
		out      = flag.String("out", "", "output file (.html or .pdf, default <name>_CV.pdf)")
		htmlOnly = flag.Bool("html", false, "write the HTML document instead of a PDF")
	)
	flag.Parse()

	if *in == "" {
		fmt.Fprintln(os.Stderr, "usage: render -in project.json [-template modern] [-out file]")
		os.Exit(2)
	}

	kind, err := render.ParseTemplateKind(*tpl)
	if err != nil {
		fail(err)
	}

	data, err := os.ReadFile(*in)
	if err != nil {
		fail(err)
	}
	record, err := model.DecodeProject(data, nil)
	if err != nil {
		fail(err)
	}

	if *htmlOnly || strings.HasSuffix(*out, ".html") {
		html, err := render.Render(record, kind, render.Options{})
		if err != nil {
			fail(err)
		}
		name := *out
		if name == "" {
			name = "resume.html"
		}
		if err := os.WriteFile(name, []byte(html), 0o644); err != nil {
			fail(err)
		}
		fmt.Printf("wrote %s\n", name)
		return
	}

	cfg := config.Load()
	studio := usecase.NewStudio(nil, infrastructure.NewChromeRasterizer(cfg.ChromePath), nil, "")
	studio.ReplaceRecord(record)

	name := *out
	if name == "" {
		name = studio.DefaultFilename()
	}
	path, err := studio.Export(context.Background(), kind, name)
	if err != nil {
		fail(err)
	}
	fmt.Printf("wrote %s\n", path)
}

func fail(err error) {
	fmt.Fprintf(os.Stderr, "render: %v\n", err)
	os.Exit(1)
}
