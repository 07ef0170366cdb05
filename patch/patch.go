// Package patch applies edits to Documents.  Edits are expressed as
// RFC 6902 JSON Patch or RFC 7386 merge patch against the JSON form
// of the document, and always produce a new Document; the input is
// never mutated.
package patch

import (
	"fmt"

	jsonpatch "github.com/evanphx/json-patch"

	"github.com/najmus-sakib-hossain/dx-go/bridge"
	"github.com/najmus-sakib-hossain/dx-go/debug"
	"github.com/najmus-sakib-hossain/dx-go/ir"
)

// Apply runs a JSON Patch over the document and returns the edited
// copy.  The result is validated before it is returned, so a patch
// cannot produce a document that violates the model invariants.
func Apply(doc *ir.Document, patchJSON []byte) (*ir.Document, error) {
	ops, err := jsonpatch.DecodePatch(patchJSON)
	if err != nil {
		return nil, fmt.Errorf("decode patch: %w", err)
	}
	d, err := bridge.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, fmt.Errorf("apply patch: %w", err)
	}
	if debug.Patch() {
		debug.Logf("patch: %s\n  -> %s\n", string(patchJSON), string(out))
	}
	return rebuild(out)
}

// Merge applies an RFC 7386 merge patch and returns the edited copy.
func Merge(doc *ir.Document, mergeJSON []byte) (*ir.Document, error) {
	d, err := bridge.MarshalJSON(doc)
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, mergeJSON)
	if err != nil {
		return nil, fmt.Errorf("merge patch: %w", err)
	}
	return rebuild(out)
}

func rebuild(data []byte) (*ir.Document, error) {
	res, err := bridge.UnmarshalJSON(data)
	if err != nil {
		return nil, err
	}
	if err := res.Validate(); err != nil {
		return nil, err
	}
	return res, nil
}
