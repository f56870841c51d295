package main

import (
	"testing"

	"github.com/rogpeppe/go-internal/testscript"

	"github.com/idlewild/taskline/internal/testsupport"
)

func TestReplScripts(t *testing.T) {
	testscript.Run(t, testscript.Params{
		Dir: "testdata/repl",
		Setup: func(env *testscript.Env) error {
			return testsupport.SetupScriptEnv(t, env)
		},
	})
}
