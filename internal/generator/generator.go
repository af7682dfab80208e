// Package generator renders Laravel source artifacts (model, controller,
// request, resource, migration) from a doctype's field metadata. Rendering is
// pure string substitution into embedded stubs; writing to disk is a separate
// step so previews never touch the filesystem.
package generator

import (
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/ngodingskuyy/doctypes-go/internal/domain/doctype"
)

//go:embed stubs/*.stub
var stubFS embed.FS

type ArtifactType string

const (
	ArtifactModel      ArtifactType = "model"
	ArtifactController ArtifactType = "controller"
	ArtifactRequest    ArtifactType = "request"
	ArtifactResource   ArtifactType = "resource"
	ArtifactMigration  ArtifactType = "migration"
)

var AllArtifactTypes = []ArtifactType{
	ArtifactModel,
	ArtifactController,
	ArtifactRequest,
	ArtifactResource,
	ArtifactMigration,
}

var (
	ErrUnknownArtifactType = errors.New("unknown artifact type")
	// ErrArtifactExists refuses to overwrite without force.
	ErrArtifactExists = errors.New("artifact already exists")
)

// ParseArtifactType validates a requested type string.
func ParseArtifactType(s string) (ArtifactType, error) {
	t := ArtifactType(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllArtifactTypes {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownArtifactType, s)
}

// Artifact is one rendered output file.
type Artifact struct {
	Type          ArtifactType `json:"type"`
	Path          string       `json:"path"`
	Content       string       `json:"content"`
	ExistedBefore bool         `json:"existed_before"`
}

// Result pairs an artifact with its per-type error; a failing type never
// aborts the rest of the batch.
type Result struct {
	Artifact *Artifact
	Err      error
}

type Generator struct {
	outputDir string
	now       func() time.Time
}

func New(outputDir string) *Generator {
	return &Generator{outputDir: outputDir, now: time.Now}
}

// NewWithClock fixes the migration timestamp source, for tests.
func NewWithClock(outputDir string, now func() time.Time) *Generator {
	return &Generator{outputDir: outputDir, now: now}
}

// TargetPath resolves the per-type directory convention relative to the
// generator's output root.
func (g *Generator) TargetPath(d *doctype.Doctype, t ArtifactType) string {
	ids := DeriveIdentifiers(d.Name)
	switch t {
	case ArtifactModel:
		return filepath.Join(g.outputDir, "app", "Models", ids.ModelName+".php")
	case ArtifactController:
		return filepath.Join(g.outputDir, "app", "Http", "Controllers", ids.ControllerName+".php")
	case ArtifactRequest:
		return filepath.Join(g.outputDir, "app", "Http", "Requests", ids.RequestName+".php")
	case ArtifactResource:
		return filepath.Join(g.outputDir, "app", "Http", "Resources", ids.ResourceName+".php")
	case ArtifactMigration:
		stamp := g.now().Format("2006_01_02_150405")
		return filepath.Join(g.outputDir, "database", "migrations",
			fmt.Sprintf("%s_create_%s_table.php", stamp, ids.TableName))
	default:
		return ""
	}
}

// Render produces the artifact content without touching the filesystem.
func (g *Generator) Render(d *doctype.Doctype, t ArtifactType) (Artifact, error) {
	stub, err := stubFS.ReadFile("stubs/" + string(t) + ".stub")
	if err != nil {
		return Artifact{}, fmt.Errorf("%w: %s", ErrUnknownArtifactType, t)
	}

	content := substitute(string(stub), g.replacements(d, t))
	return Artifact{
		Type:    t,
		Path:    g.TargetPath(d, t),
		Content: content,
	}, nil
}

// Preview renders every requested type without writing anything.
func (g *Generator) Preview(d *doctype.Doctype, types []ArtifactType) map[ArtifactType]Result {
	results := make(map[ArtifactType]Result, len(types))
	for _, t := range types {
		artifact, err := g.Render(d, t)
		if err != nil {
			results[t] = Result{Err: err}
			continue
		}
		if _, statErr := os.Stat(artifact.Path); statErr == nil {
			artifact.ExistedBefore = true
		}
		results[t] = Result{Artifact: &artifact}
	}
	return results
}

// Generate renders and writes every requested type independently. An existing
// target without force fails that type with ErrArtifactExists; other types
// still proceed. Concurrent generates with force are last-write-wins.
func (g *Generator) Generate(d *doctype.Doctype, types []ArtifactType, force bool) map[ArtifactType]Result {
	results := make(map[ArtifactType]Result, len(types))
	for _, t := range types {
		artifact, err := g.Render(d, t)
		if err != nil {
			results[t] = Result{Err: err}
			continue
		}

		if _, statErr := os.Stat(artifact.Path); statErr == nil {
			artifact.ExistedBefore = true
			if !force {
				results[t] = Result{Err: fmt.Errorf("%w: %s", ErrArtifactExists, artifact.Path)}
				continue
			}
		}

		if err := g.write(artifact); err != nil {
			results[t] = Result{Err: err}
			continue
		}
		results[t] = Result{Artifact: &artifact}
	}
	return results
}

func (g *Generator) write(a Artifact) error {
	if err := os.MkdirAll(filepath.Dir(a.Path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(a.Path, []byte(a.Content), 0o644)
}

func (g *Generator) replacements(d *doctype.Doctype, t ArtifactType) map[string]string {
	ids := DeriveIdentifiers(d.Name)
	fields := d.SortedFields()

	repl := map[string]string{
		"{{modelName}}":      ids.ModelName,
		"{{tableName}}":      ids.TableName,
		"{{modelVariable}}":  ids.ModelVariable,
		"{{controllerName}}": ids.ControllerName,
		"{{requestName}}":    ids.RequestName,
		"{{resourceName}}":   ids.ResourceName,
	}

	switch t {
	case ArtifactModel:
		repl["{{fillableFields}}"] = fillableFields(fields)
		repl["{{castFields}}"] = castFields(fields)
		repl["{{scopes}}"] = scopes(fields)
	case ArtifactController:
		repl["{{filterLogic}}"] = filterLogic(fields)
	case ArtifactRequest:
		repl["{{validationRules}}"] = validationRules(d, fields)
		repl["{{validationMessages}}"] = validationMessages(fields)
	case ArtifactResource:
		repl["{{resourceFields}}"] = resourceFields(fields)
	case ArtifactMigration:
		repl["{{fields}}"] = migrationFields(fields)
	}
	return repl
}

func substitute(stub string, repl map[string]string) string {
	for placeholder, value := range repl {
		stub = strings.ReplaceAll(stub, placeholder, value)
	}
	return stub
}
