package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	formbuilder "github.com/goliatone/go-formbuilder"
	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/definition"
	"github.com/goliatone/go-formbuilder/pkg/export"
	"github.com/goliatone/go-formbuilder/pkg/storage"
)

const usage = `usage: formbuilder-cli [flags] <command> [args]

commands:
  forms                     list saved forms
  import <openapi.json>     seed a form from an OpenAPI operation and save it
  load <definition.yaml>    load a form definition file and save it
  fill <form-id>            run an interactive fill/submit flow
  submissions <form-id>     print captured submissions
  export <form-id>          export submissions as csv or html
`

func main() {
	storePath := flag.String("store", "formbuilder.db", "sqlite database path")
	dataDir := flag.String("dir", "", "use a directory blob store instead of sqlite")
	operation := flag.String("operation", "", "operation ID for import (defaults to the first operation)")
	name := flag.String("name", "", "saved-form name for import/load")
	format := flag.String("format", "csv", "export format: csv or html")
	output := flag.String("output", "", "output file (stdout if empty)")
	flag.Parse()

	if flag.NArg() == 0 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	store := openStore(*storePath, *dataDir)
	b := formbuilder.New(
		formbuilder.WithStore(store),
		builder.WithReporter(func(err error) {
			log.Printf("persistence degraded: %v", err)
		}),
	)
	defer b.Close()

	ctx := context.Background()

	switch cmd := flag.Arg(0); cmd {
	case "forms":
		listForms(b)
	case "import":
		importForm(ctx, b, flag.Arg(1), *operation, *name)
	case "load":
		loadForm(b, flag.Arg(1), *name)
	case "fill":
		fillForm(ctx, b, flag.Arg(1))
	case "submissions":
		printSubmissions(b, flag.Arg(1))
	case "export":
		exportSubmissions(b, flag.Arg(1), *format, *output)
	default:
		log.Fatalf("unknown command: %q", cmd)
	}
}

func openStore(storePath, dataDir string) storage.BlobStore {
	if dataDir != "" {
		store, err := storage.NewFileStore(dataDir)
		if err != nil {
			log.Fatalf("open store: %v", err)
		}
		return store
	}
	store, err := storage.OpenSQLiteStore(storePath)
	if err != nil {
		log.Fatalf("open store: %v", err)
	}
	return store
}

func listForms(b *formbuilder.Builder) {
	forms := b.SavedForms()
	if len(forms) == 0 {
		fmt.Println("no saved forms")
		return
	}
	for _, f := range forms {
		fmt.Printf("%s  %-24s  %d submissions  %s\n",
			f.ID, f.Name, b.SubmissionCount(f.ID), formbuilder.PublicLink(f.ID))
	}
}

func importForm(ctx context.Context, b *formbuilder.Builder, path, operationID, name string) {
	if path == "" {
		log.Fatal("import: missing OpenAPI document path")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("import: %v", err)
	}
	doc, err := formbuilder.ImportOpenAPI(ctx, data, operationID)
	if err != nil {
		log.Fatalf("import: %v", err)
	}
	saveDocument(b, doc, name, path)
}

func loadForm(b *formbuilder.Builder, path, name string) {
	if path == "" {
		log.Fatal("load: missing definition path")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("load: %v", err)
	}
	doc, err := definition.Parse(data, path)
	if err != nil {
		log.Fatalf("load: %v", err)
	}
	saveDocument(b, doc, name, path)
}

func saveDocument(b *formbuilder.Builder, doc formbuilder.Document, name, fallback string) {
	b.ReplaceDocument(doc)
	if name == "" {
		name = fallback
	}
	form := b.SaveForm(name)
	fmt.Printf("saved form %s (%s)\n", form.ID, form.Name)
}

func fillForm(ctx context.Context, b *formbuilder.Builder, formID string) {
	if formID == "" {
		log.Fatal("fill: missing form id")
	}
	sub, err := formbuilder.Fill(ctx, b, formID)
	if err != nil {
		log.Fatalf("fill: %v", err)
	}
	fmt.Printf("submission %s recorded (%s)\n", sub.ID, sub.Status)
}

func printSubmissions(b *formbuilder.Builder, formID string) {
	if formID == "" {
		log.Fatal("submissions: missing form id")
	}
	subs := b.Submissions(formID)
	if len(subs) == 0 {
		fmt.Println("no submissions")
		return
	}
	for _, s := range subs {
		fmt.Printf("%s  %s  %s\n", s.ID, s.SubmittedAt.Format("2006-01-02 15:04:05"), s.Status)
		for _, key := range s.FieldOrder {
			fmt.Printf("  %s: %s\n", key, s.Data[key])
		}
	}
}

func exportSubmissions(b *formbuilder.Builder, formID, format, output string) {
	if formID == "" {
		log.Fatal("export: missing form id")
	}
	table := b.SubmissionTable(formID)

	var payload []byte
	switch format {
	case "csv":
		data, err := export.CSV(table)
		if err != nil {
			log.Fatalf("export: %v", err)
		}
		payload = data
	case "html":
		engine := export.NewEngine()
		html, err := engine.HTMLTable(table, b.Document().Style)
		if err != nil {
			log.Fatalf("export: %v", err)
		}
		payload = []byte(html)
	default:
		log.Fatalf("export: unknown format %q", format)
	}

	if output != "" {
		if err := os.WriteFile(output, payload, 0o644); err != nil {
			log.Fatalf("export: %v", err)
		}
		fmt.Printf("written to %s\n", output)
		return
	}
	fmt.Print(string(payload))
}
