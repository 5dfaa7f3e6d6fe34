package compiler

import (
	"fmt"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"
)

// CompileSource compiles a single request document. filename is used in
// error positions only.
func CompileSource(src []byte, filename string) (*Request, error) {
	ctx := cuecontext.New()
	v := ctx.CompileBytes(src, cue.Filename(filename))
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	return CompileRequest(v)
}

// LoadFile reads and compiles a request document.
func LoadFile(path string) (*Request, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read request: %w", err)
	}
	return CompileSource(src, path)
}

// LoadDir builds the CUE package in dir and compiles it as one request.
// Files of one package are unified, so an ontology excerpt can live next
// to the searches that use it.
func LoadDir(dir string) (*Request, error) {
	instances := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(instances) == 0 {
		return nil, fmt.Errorf("no CUE instances in %s", dir)
	}

	inst := instances[0]
	if inst.Err != nil {
		return nil, fmt.Errorf("loading CUE files: %w", inst.Err)
	}

	ctx := cuecontext.New()
	v := ctx.BuildInstance(inst)
	if err := v.Err(); err != nil {
		return nil, formatCUEError(err)
	}
	return CompileRequest(v)
}

// Load compiles path as a directory package or a single file.
func Load(path string) (*Request, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("request not found: %w", err)
	}
	if info.IsDir() {
		return LoadDir(path)
	}
	return LoadFile(path)
}
