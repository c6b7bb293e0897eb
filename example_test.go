package md2tex_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/alnah/go-md2tex"
)

// Example demonstrates basic markdown to LaTeX conversion.
func Example() {
	svc := md2tex.New()

	result, err := svc.Convert(context.Background(), md2tex.Input{
		Markdown: "# Hello World\n\nThis is a **test**.",
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.TeX)
	// Output:
	// \section{Hello World}
	//
	// This is a \textbf{test}.
}

// Example_completeDocument demonstrates producing a compilable document
// with the embedded preamble template.
func Example_completeDocument() {
	svc := md2tex.New()

	result, err := svc.Convert(context.Background(), md2tex.Input{
		Markdown:         "---\ntitle: Project Report\nauthor: John Doe\n---\n# Introduction\n\nContent here.",
		CompleteDocument: true,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(result.TeX, `\documentclass`) {
		fmt.Println("complete document generated")
	}
	fmt.Println("title:", result.Metadata.Title)
	// Output:
	// complete document generated
	// title: Project Report
}

// Example_bookClass demonstrates the book document class, where top level
// headers become chapters.
func Example_bookClass() {
	svc := md2tex.New()

	result, err := svc.Convert(context.Background(), md2tex.Input{
		Markdown: "# Opening\n\n## First Section",
		Class:    md2tex.ClassBook,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(result.TeX)
	// Output:
	// \chapter{Opening}
	//
	// \section{First Section}
}
