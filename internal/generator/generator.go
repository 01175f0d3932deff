// Package generator wraps the external protobuf code generator.
//
// The generator is an opaque, versioned dependency invoked as a subprocess.
// The only contract protomod relies on is its output shape: one flat source
// file per declared package, named after the full dotted package name.
package generator

import (
	"context"
	"fmt"
	"os"
	"os/exec"
)

// Request describes one generator invocation.
type Request struct {
	// Files are the patched schema files to compile
	Files []string

	// Includes are the schema import paths
	Includes []string

	// OutDir is the directory receiving the flat generated files
	OutDir string

	// DescriptorSetPath, when set, makes the generator also write an
	// encoded FileDescriptorSet there
	DescriptorSetPath string

	// BuildClient requests RPC client code
	BuildClient bool

	// BuildServer requests RPC server stubs
	BuildServer bool

	// WellKnownTypes requests compilation of the well-known types
	WellKnownTypes bool
}

// Runner runs the external code generator.
type Runner interface {
	Generate(ctx context.Context, req *Request) error
}

// Protoc invokes the protoc binary with a configured output plugin.
type Protoc struct {
	// Binary is the protoc executable (default "protoc")
	Binary string

	// Plugin is the output plugin name (default "prost")
	Plugin string

	// ExtraArgs are appended verbatim to every invocation
	ExtraArgs []string
}

func (p *Protoc) binary() string {
	if p.Binary == "" {
		return "protoc"
	}
	return p.Binary
}

func (p *Protoc) plugin() string {
	if p.Plugin == "" {
		return "prost"
	}
	return p.Plugin
}

// Generate compiles the requested schemas, streaming the generator's own
// output through to the user.
func (p *Protoc) Generate(ctx context.Context, req *Request) error {
	if len(req.Files) == 0 {
		return fmt.Errorf("no schema files to compile")
	}

	cmd := exec.CommandContext(ctx, p.binary(), p.args(req)...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to run %s: %w", p.binary(), err)
	}
	return nil
}

// args assembles the protoc command line for a request.
func (p *Protoc) args(req *Request) []string {
	plugin := p.plugin()

	args := []string{fmt.Sprintf("--%s_out=%s", plugin, req.OutDir)}
	for _, opt := range pluginOpts(req) {
		args = append(args, fmt.Sprintf("--%s_opt=%s", plugin, opt))
	}

	for _, include := range req.Includes {
		args = append(args, "-I", include)
	}

	if req.DescriptorSetPath != "" {
		args = append(args, "--descriptor_set_out="+req.DescriptorSetPath, "--include_imports")
	}

	args = append(args, p.ExtraArgs...)
	args = append(args, req.Files...)
	return args
}

func pluginOpts(req *Request) []string {
	var opts []string
	if req.BuildClient {
		opts = append(opts, "build_client=true")
	}
	if req.BuildServer {
		opts = append(opts, "build_server=true")
	}
	if req.WellKnownTypes {
		opts = append(opts, "compile_well_known_types=true")
	}
	return opts
}
