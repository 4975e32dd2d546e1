package main

import (
	"fmt"
	"os"

	"github.com/scott-cotton/cli"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/hmartens/cpp2capnp/encode"
	"github.com/hmartens/cpp2capnp/schema"
)

// checkSchema compares the regenerated schema against the existing
// output file and prints a diff on drift. Nothing is written.
func checkSchema(cfg *Config, cc *cli.Context, decls []*schema.ClassDecl, opts []encode.EncodeOption) error {
	want := encode.MustString(decls, opts...)
	got, err := os.ReadFile(cfg.Output)
	if err != nil {
		return fmt.Errorf("check: %w", err)
	}
	if string(got) == want {
		theLog.Info("schema up to date", "file", cfg.Output)
		return nil
	}
	dmp := diffpatch.New()
	diffs := dmp.DiffMain(string(got), want, false)
	fmt.Fprint(cc.Out, dmp.DiffPrettyText(diffs))
	return fmt.Errorf("schema %q is out of date", cfg.Output)
}
