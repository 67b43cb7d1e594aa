package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"

	"github.com/hengadev/entx"
	"github.com/hengadev/entx/internal/codegen"
)

func main() {
	// A missing .env is fine; it only supplies ENTX_GEN_CONFIG.
	_ = godotenv.Load()

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	switch command {
	case "generate":
		generateCommand(os.Args[2:])
	case "validate":
		validateCommand(os.Args[2:])
	case "init":
		initCommand(os.Args[2:])
	case "version":
		versionCommand(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [options]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "\nCommands:\n")
	fmt.Fprintf(os.Stderr, "  generate  Generate Table methods for tagged structs\n")
	fmt.Fprintf(os.Stderr, "  validate  Validate configuration and struct tags\n")
	fmt.Fprintf(os.Stderr, "  init      Initialize configuration file\n")
	fmt.Fprintf(os.Stderr, "  version   Show version information\n")
	fmt.Fprintf(os.Stderr, "\nRun '%s <command> -h' for help on a specific command.\n", os.Args[0])
}

func generateCommand(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	cfgPath := fs.String("config", configPath(), "Path to configuration file (env "+EnvConfigPath+")")
	outputDir := fs.String("output", "", "Override output directory")
	verbose := fs.Bool("v", false, "Verbose output")
	dryRun := fs.Bool("dry-run", false, "Show what would be generated without writing files")

	fs.Parse(args)

	packages := fs.Args()
	if len(packages) == 0 {
		packages = []string{"."}
	}

	config, err := LoadConfigOrDefault(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	generator := NewGenerator(config, *outputDir, *verbose, os.Stdout)
	if _, err := generator.Generate(packages, *dryRun); err != nil {
		fmt.Fprintf(os.Stderr, "Generation failed: %v\n", err)
		os.Exit(1)
	}
}

func validateCommand(args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	cfgPath := fs.String("config", configPath(), "Path to configuration file (env "+EnvConfigPath+")")
	verbose := fs.Bool("v", false, "Verbose output")

	fs.Parse(args)

	packages := fs.Args()
	if len(packages) == 0 {
		packages = []string{"."}
	}

	fmt.Printf("Validating configuration at %s...\n", *cfgPath)

	if _, err := LoadConfigOrDefault(*cfgPath); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration validation failed: %v\n", err)
		os.Exit(1)
	}

	if *verbose {
		fmt.Println("✓ Configuration is valid")
	}

	if !validatePackages(os.Stdout, packages, *verbose) {
		fmt.Fprintf(os.Stderr, "\nValidation failed with errors.\n")
		os.Exit(1)
	}

	fmt.Println("\n✓ All validations passed!")
}

// validatePackages reports tag problems for every package and returns false
// if any were found.
func validatePackages(w io.Writer, packages []string, verbose bool) bool {
	ok := true
	for _, pkg := range packages {
		if verbose {
			fmt.Fprintf(w, "Validating package: %s\n", pkg)
		}

		structs, err := codegen.DiscoverStructs(pkg, &codegen.DiscoveryConfig{})
		if err != nil {
			fmt.Fprintf(w, "Failed to discover structs in %s: %v\n", pkg, err)
			ok = false
			continue
		}

		if len(structs) == 0 {
			if verbose {
				fmt.Fprintf(w, "  No structs with entx tags found in %s\n", pkg)
			}
			continue
		}

		fmt.Fprintf(w, "Found %d structs with entx tags in %s:\n", len(structs), pkg)

		for _, structInfo := range structs {
			fmt.Fprintf(w, "  %s (%s)\n", structInfo.StructName, structInfo.SourceFile)

			if errs := structInfo.Errors(); len(errs) > 0 {
				ok = false
				for _, verr := range errs {
					fmt.Fprintf(w, "    ✗ %s\n", verr.Error())
				}
				continue
			}

			if verbose {
				for _, field := range structInfo.Fields {
					fmt.Fprintf(w, "    ✓ %s.%s: %s %s\n", structInfo.StructName, field.Name, field.Kind, field.EntxName)
				}
			}
			fmt.Fprintf(w, "    ✓ All fields valid\n")
		}
	}
	return ok
}

func initCommand(args []string) {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	force := fs.Bool("force", false, "Overwrite existing configuration file")

	fs.Parse(args)

	path := configPath()
	if !*force {
		if _, err := os.Stat(path); err == nil {
			fmt.Fprintf(os.Stderr, "Configuration file %s already exists. Use -force to overwrite.\n", path)
			os.Exit(1)
		}
	}

	fmt.Printf("Creating configuration file at %s...\n", path)

	if err := SaveConfig(DefaultConfig(), path); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create config file: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Configuration file created!")
}

func versionCommand(w io.Writer) {
	fmt.Fprintf(w, "entx-gen: %s\n", entx.VersionInfo())
	fmt.Fprintln(w, "Code generator for entx entity tables")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Supported tag options: one, many, exclude, hidden (use \"-\" to skip a field)")
}
