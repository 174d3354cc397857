package formbuilder

import (
	"context"

	"github.com/goliatone/go-formbuilder/pkg/builder"
	"github.com/goliatone/go-formbuilder/pkg/document"
	"github.com/goliatone/go-formbuilder/pkg/field"
	"github.com/goliatone/go-formbuilder/pkg/fill"
	"github.com/goliatone/go-formbuilder/pkg/schemaimport"
	"github.com/goliatone/go-formbuilder/pkg/storage"
	"github.com/goliatone/go-formbuilder/pkg/submission"
)

// Builder is the top-level editor handle; alias exported via the root package
// for convenience.
type Builder = builder.Builder

// Document is the multi-step form being edited.
type Document = document.Document

// Field is the tagged-union field entity placed on steps.
type Field = field.Field

// FieldType names one of the closed set of palette entries.
type FieldType = field.Type

// Submission is a captured response with its review state.
type Submission = submission.Submission

// New builds an editor, restoring state from the configured store when a
// usable snapshot exists.
func New(options ...builder.Option) *Builder {
	return builder.New(options...)
}

// WithStore configures the blob store snapshots are written to.
func WithStore(store storage.BlobStore) builder.Option {
	return builder.WithStore(store)
}

// PublicLink derives the shareable path for a saved form id.
func PublicLink(formID string) string {
	return builder.PublicLink(formID)
}

// ImportOpenAPI builds a document from an OpenAPI description, targeting the
// request body of the named operation. It is the simplest entry point for
// callers seeding a form from an existing API contract.
func ImportOpenAPI(ctx context.Context, data []byte, operationID string) (Document, error) {
	return schemaimport.FromData(ctx, data, operationID)
}

// Fill runs an interactive fill/submit flow over a saved form, recording the
// captured submission on success.
func Fill(ctx context.Context, b *Builder, formID string, options ...fill.Option) (Submission, error) {
	session, ok := b.FillSession(formID)
	if !ok {
		return Submission{}, builder.ErrFormNotFound
	}
	runner := fill.NewRunner(options...)
	sub, err := runner.Run(ctx, session, formID)
	if err != nil {
		return Submission{}, err
	}
	b.RecordSubmission(sub)
	return sub, nil
}
