package graphql

import (
	"strings"
	"testing"

	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"
)

func TestDocumentsParse(t *testing.T) {
	for _, op := range Catalog() {
		t.Run(op.Name, func(t *testing.T) {
			doc, err := parser.ParseQuery(&ast.Source{Name: op.Name, Input: op.Document})
			if err != nil {
				t.Fatalf("document does not parse: %v", err)
			}
			if len(doc.Operations) != 1 {
				t.Fatalf("expected exactly one operation, got %d", len(doc.Operations))
			}
			if doc.Operations[0].Name != op.Name {
				t.Errorf("operation name %q does not match catalog name %q", doc.Operations[0].Name, op.Name)
			}
		})
	}
}

func TestCatalogNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, op := range Catalog() {
		if seen[op.Name] {
			t.Errorf("duplicate operation name %q", op.Name)
		}
		seen[op.Name] = true
	}
}

func TestMutationsAreMutations(t *testing.T) {
	for _, op := range Catalog() {
		doc, err := parser.ParseQuery(&ast.Source{Name: op.Name, Input: op.Document})
		if err != nil {
			t.Fatalf("%s: %v", op.Name, err)
		}
		isMutation := doc.Operations[0].Operation == ast.Mutation
		wantsMutation := strings.HasPrefix(op.Name, "Create") ||
			strings.HasPrefix(op.Name, "Update") ||
			strings.HasPrefix(op.Name, "Delete") ||
			strings.HasPrefix(op.Name, "Approve") ||
			strings.HasPrefix(op.Name, "Assign") ||
			strings.HasPrefix(op.Name, "Unassign") ||
			strings.HasPrefix(op.Name, "Add") ||
			strings.HasPrefix(op.Name, "Mark")
		if isMutation != wantsMutation {
			t.Errorf("%s: operation type %s does not match its name", op.Name, doc.Operations[0].Operation)
		}
	}
}
