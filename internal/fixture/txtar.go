package fixture

import (
	"context"
	"fmt"
	"path"

	"golang.org/x/tools/txtar"

	"github.com/rustvet/rustvet/internal/rules"
)

// VerifyArchive verifies a corpus packed as a txtar archive. Each .rs file
// in the archive is one case; expectations come from the same in-file
// directives as directory corpora.
func VerifyArchive(ctx context.Context, data []byte, cat *rules.Catalog) ([]CaseResult, error) {
	arch := txtar.Parse(data)
	if len(arch.Files) == 0 {
		return nil, fmt.Errorf("txtar corpus holds no files")
	}

	var cases []Case
	for _, f := range arch.Files {
		if path.Ext(f.Name) != ".rs" {
			continue
		}
		cases = append(cases, Case{Name: f.Name, Source: f.Data})
	}

	return VerifyCases(ctx, cases, cat), nil
}
