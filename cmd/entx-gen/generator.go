package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hengadev/entx"
	"github.com/hengadev/entx/internal/codegen"
)

// Generator handles the code generation process
type Generator struct {
	config    *Config
	outputDir string
	verbose   bool
	out       io.Writer
}

// NewGenerator creates a new Generator instance. outputDir, when set, overrides
// every per-package output directory.
func NewGenerator(config *Config, outputDir string, verbose bool, out io.Writer) *Generator {
	if config == nil {
		config = DefaultConfig()
	}
	if out == nil {
		out = os.Stdout
	}
	return &Generator{
		config:    config,
		outputDir: outputDir,
		verbose:   verbose,
		out:       out,
	}
}

// Generate writes one file per source file holding tagged structs, next to
// the source unless an output directory is configured. It returns the paths
// it wrote, or would write in dry-run mode.
func (g *Generator) Generate(packages []string, dryRun bool) ([]string, error) {
	g.logf("Starting code generation for packages: %v\n", packages)
	if dryRun {
		g.logf("Running in dry-run mode\n")
	}

	templateEngine, err := codegen.NewTemplateEngine()
	if err != nil {
		return nil, fmt.Errorf("failed to create template engine: %w", err)
	}

	var written []string
	for _, packagePath := range packages {
		pkgConfig := g.config.Packages[packagePath]
		if pkgConfig.Skip {
			g.logf("Skipping package %s (marked as skip)\n", packagePath)
			continue
		}

		structs, err := codegen.DiscoverStructs(packagePath, &codegen.DiscoveryConfig{})
		if err != nil {
			return written, fmt.Errorf("failed to discover structs in package %s: %w", packagePath, err)
		}

		g.logf("Found %d structs with entx tags in %s\n", len(structs), packagePath)

		bySource := make(map[string][]codegen.StructInfo)
		for _, s := range structs {
			bySource[s.SourceFile] = append(bySource[s.SourceFile], s)
		}
		sources := make([]string, 0, len(bySource))
		for source := range bySource {
			sources = append(sources, source)
		}
		sort.Strings(sources)

		for _, source := range sources {
			data, err := codegen.BuildTemplateData(source, bySource[source], g.config.Generation.ToCodegenConfig(entx.Version))
			if err != nil {
				return written, fmt.Errorf("failed to prepare %s: %w", source, err)
			}

			code, err := templateEngine.GenerateCode(data)
			if err != nil {
				return written, fmt.Errorf("failed to generate code for %s: %w", source, err)
			}

			outputFile := filepath.Join(g.targetDir(packagePath, pkgConfig), g.outputName(source))

			if dryRun {
				fmt.Fprintf(g.out, "Would generate: %s\n", outputFile)
				g.logf("Generated code:\n%s\n", code)
				written = append(written, outputFile)
				continue
			}

			if err := os.MkdirAll(filepath.Dir(outputFile), 0755); err != nil {
				return written, fmt.Errorf("failed to create output directory for %s: %w", outputFile, err)
			}
			if err := os.WriteFile(outputFile, code, 0644); err != nil {
				return written, fmt.Errorf("failed to write generated file %s: %w", outputFile, err)
			}
			g.logf("Generated: %s\n", outputFile)
			written = append(written, outputFile)
		}
	}

	fmt.Fprintln(g.out, "Code generation complete!")
	return written, nil
}

func (g *Generator) targetDir(packagePath string, pkgConfig PackageConfig) string {
	switch {
	case g.outputDir != "":
		return g.outputDir
	case pkgConfig.OutputDir != "":
		return pkgConfig.OutputDir
	default:
		return packagePath
	}
}

// outputName maps "user.go" to "user_entx.go".
func (g *Generator) outputName(source string) string {
	return strings.TrimSuffix(source, ".go") + g.config.Generation.OutputSuffix + ".go"
}

func (g *Generator) logf(format string, args ...any) {
	if g.verbose {
		fmt.Fprintf(g.out, format, args...)
	}
}
